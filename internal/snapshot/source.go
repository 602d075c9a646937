// internal/snapshot/source.go
package snapshot

import (
	"context"

	"golang.org/x/sync/errgroup"

	"opsdash/internal/domain"
)

// Source supplies the raw record collections the analytics kernel
// consumes. Implementations wrap whatever actually holds the data
// (remote services, exported files); the kernel never fetches anything
// itself.
type Source interface {
	FetchInventory(ctx context.Context) ([]domain.InventoryItem, error)
	FetchPendingOrders(ctx context.Context) ([]domain.OrderEvent, error)
	FetchProcessedOrders(ctx context.Context) ([]domain.OrderEvent, error)
	FetchOutbound(ctx context.Context) ([]domain.ShipmentEvent, error)
}

// Snapshot is one complete fetch cycle's worth of input records.
type Snapshot struct {
	Inventory       []domain.InventoryItem
	PendingOrders   []domain.OrderEvent
	ProcessedOrders []domain.OrderEvent
	Outbound        []domain.ShipmentEvent
}

// FetchAll loads the four collections concurrently and merges them only
// after every fetch settles. Any fetch error fails the whole snapshot:
// the kernel only runs on complete input.
func FetchAll(ctx context.Context, source Source) (*Snapshot, error) {
	var snap Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := source.FetchInventory(ctx)
		snap.Inventory = items
		return err
	})
	g.Go(func() error {
		events, err := source.FetchPendingOrders(ctx)
		snap.PendingOrders = events
		return err
	})
	g.Go(func() error {
		events, err := source.FetchProcessedOrders(ctx)
		snap.ProcessedOrders = events
		return err
	})
	g.Go(func() error {
		events, err := source.FetchOutbound(ctx)
		snap.Outbound = events
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
