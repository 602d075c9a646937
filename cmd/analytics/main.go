// cmd/analytics/main.go
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"opsdash/internal/analytics"
	"opsdash/internal/config"
	"opsdash/internal/domain"
	"opsdash/internal/service"
	"opsdash/internal/snapshot"
)

func newDataDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "data-dir",
		Usage:   "Directory containing snapshot JSON files",
		Value:   "./data/snapshots",
		EnvVars: []string{"APP_DATA_DIR"},
	}
}

func newNowFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "now",
		Usage: "Reference time in RFC3339 (defaults to wall clock)",
	}
}

func resolveNow(c *cli.Context) (time.Time, error) {
	value := c.String("now")
	if value == "" {
		return time.Now(), nil
	}

	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now value %q: %w", value, err)
	}
	return now, nil
}

func newService(c *cli.Context) *service.DashboardService {
	cfg := config.Load()
	analyzer := analytics.NewAnalyzer(analytics.Thresholds{
		ABCAShare:         cfg.Analytics.ABCAShare,
		ABCBShare:         cfg.Analytics.ABCBShare,
		WarningMultiplier: cfg.Analytics.WarningMultiplier,
		InactivityDays:    cfg.Analytics.InactivityDays,
		SLAImminentDays:   cfg.Analytics.SLAImminentDays,
		BacklogAlertMin:   cfg.Analytics.BacklogAlertMin,
		BacklogHighMin:    cfg.Analytics.BacklogHighMin,
	})
	source := snapshot.NewFileSource(c.String("data-dir"))
	return service.NewDashboardService(source, analyzer, nil)
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

func runDashboard(c *cli.Context) error {
	now, err := resolveNow(c)
	if err != nil {
		return err
	}

	timeframe := domain.ParseTimeframe(c.String("timeframe"))
	result, err := newService(c).GetDashboard(c.Context, timeframe, now)
	if err != nil {
		return err
	}

	return printJSON(result)
}

func runRisk(c *cli.Context) error {
	assessment, err := newService(c).GetStockRisk(c.Context)
	if err != nil {
		return err
	}

	if limit := c.Int("limit"); limit > 0 && len(assessment.RiskItems) > limit {
		assessment.RiskItems = assessment.RiskItems[:limit]
	}

	return printJSON(assessment)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "analytics",
		Usage: "Compute inventory dashboard metrics from snapshot files",
		Commands: []*cli.Command{
			{
				Name:  "dashboard",
				Usage: "Build the full dashboard payload and print it as JSON",
				Flags: []cli.Flag{
					newDataDirFlag(),
					newNowFlag(),
					&cli.StringFlag{
						Name:  "timeframe",
						Usage: "Trend granularity: week, month or year",
						Value: "week",
					},
				},
				Action: runDashboard,
			},
			{
				Name:  "risk",
				Usage: "Run the safety-stock risk assessment and print it as JSON",
				Flags: []cli.Flag{
					newDataDirFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Truncate the risk list to the top N items (0 = all)",
					},
				},
				Action: runRisk,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
