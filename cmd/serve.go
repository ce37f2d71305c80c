package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	stdsync "sync"
	"syscall"

	"market-sync/core/config"
	"market-sync/core/database"
	"market-sync/core/logger"
	"market-sync/core/middleware/auth"
	"market-sync/feature/runlog"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a long-lived service",
	Long: `Starts the HTTP API and, when a schedule is configured, runs
synchronization passes on a cron schedule. Runs can also be triggered
over the API.`,
	Run: func(cmd *cobra.Command, args []string) {
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

		// 3. Connect to Database (Optional)
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

		// tryRun starts one sync run in the background unless another run is
		// already in flight. Triggers and the schedule share the same lock.
		var inFlight stdsync.Mutex
		tryRun := func() bool {
			if !inFlight.TryLock() {
				return false
			}
			go func() {
				defer inFlight.Unlock()
				l, runID := logger.WithRun(logg)
				if err := runPipeline(context.Background(), cfg, l, runID, store); err != nil {
					l.Error("Sync run failed", zap.Error(err))
				}
			}()
			return true
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Request logging
		app.Use(func(c *fiber.Ctx) error {
			logg.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				logg.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Health check stays public for load balancers.
		app.Get("/healthz", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		app.Post("/api/sync", func(c *fiber.Ctx) error {
			if !tryRun() {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": "a sync run is already in flight",
				})
			}
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "started"})
		})

		app.Get("/api/runs", func(c *fiber.Ctx) error {
			if store == nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"error": "run history is not available",
				})
			}
			limit := c.QueryInt("limit", 50)
			runs, err := store.Recent(c.Context(), limit)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			return c.JSON(runs)
		})

		// 5. Scheduled Runs
		scheduler := cron.New()
		if cfg.Sync.Schedule != "" {
			_, err := scheduler.AddFunc(cfg.Sync.Schedule, func() {
				if !tryRun() {
					logg.Warn("Scheduled sync skipped, previous run still in flight")
				}
			})
			if err != nil {
				logg.Fatal("Invalid sync schedule", zap.String("schedule", cfg.Sync.Schedule), zap.Error(err))
			}
			scheduler.Start()
			logg.Info("Scheduled sync enabled", zap.String("schedule", cfg.Sync.Schedule))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if cfg.Sync.Schedule != "" {
			<-scheduler.Stop().Done()
		}
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
