// internal/snapshot/file_source.go
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"opsdash/internal/domain"
)

// Snapshot file names expected inside the data directory.
const (
	inventoryFile       = "inventory.json"
	pendingOrdersFile   = "pending_orders.json"
	processedOrdersFile = "processed_orders.json"
	outboundFile        = "outbound.json"
)

// FileSource reads snapshot collections from JSON files in a data
// directory. It stands in for the remote inventory/order/shipment
// services in the CLI and in deployments fed by exported snapshots.
// A missing file is an empty collection, not an error: a service with
// no data still renders an all-zero dashboard.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) FetchInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	if err := s.load(ctx, inventoryFile, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FileSource) FetchPendingOrders(ctx context.Context) ([]domain.OrderEvent, error) {
	var events []domain.OrderEvent
	if err := s.load(ctx, pendingOrdersFile, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *FileSource) FetchProcessedOrders(ctx context.Context) ([]domain.OrderEvent, error) {
	var events []domain.OrderEvent
	if err := s.load(ctx, processedOrdersFile, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *FileSource) FetchOutbound(ctx context.Context) ([]domain.ShipmentEvent, error) {
	var events []domain.ShipmentEvent
	if err := s.load(ctx, outboundFile, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *FileSource) load(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode snapshot file %s: %w", path, err)
	}
	return nil
}
