package cmd

import (
	"log"

	"market-sync/core/config"
	"market-sync/core/database"
	"market-sync/core/logger"
	"market-sync/feature/runlog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one synchronization pass",
	Long: `Downloads the supplier remnants feed, reconciles it against every
enabled marketplace catalog, and submits the stock and price updates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		logg, runID := logger.WithRun(logg)

		// 3. Connect to Database (Optional)
		// Run history is best effort; the sync itself never depends on it.
		var store *runlog.Store
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			store = runlog.NewStore(db)
			if err := store.Migrate(); err != nil {
				logg.Warn("Run history migration failed", zap.Error(err))
				store = nil
			}
		}

		return runPipeline(cmd.Context(), cfg, logg, runID, store)
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
