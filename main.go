package main

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"avestimator/collections"
	"avestimator/config"
	"avestimator/estimate"
	"avestimator/logging"
	"avestimator/services"
)

// runtime is what the server needs once flags are parsed.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *estimate.Store
}

func newRuntime(configPath string) (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	tables, err := services.LoadReferenceTables(cfg.Reference.File)
	if err != nil {
		return nil, fmt.Errorf("reference tables: %w", err)
	}
	return &runtime{cfg: cfg, logger: logger, store: estimate.NewStore(tables)}, nil
}

func main() {
	app := pocketbase.New()

	var configPath string
	app.RootCmd.PersistentFlags().StringVar(&configPath, "estimator-config", "",
		"estimator YAML config file (defaults and ESTIMATOR_* env vars apply when empty)")
	app.RootCmd.AddCommand(newRefTablesCmd(&configPath))

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		rt, err := newRuntime(configPath)
		if err != nil {
			return fmt.Errorf("estimator startup: %w", err)
		}
		zap.ReplaceGlobals(rt.logger)

		// Create collections and seed data on startup
		collections.Setup(app)
		if rt.cfg.Projects.Seed {
			if err := collections.Seed(app); err != nil {
				zap.L().Warn("seed data failed", zap.Error(err))
			}
		}
		if err := collections.MigrateMissingProjectIDs(app); err != nil {
			zap.L().Warn("project id migration failed", zap.Error(err))
		}

		registerRoutes(se, app, rt)
		zap.L().Info("estimator ready",
			zap.String("reference", referenceSource(rt.cfg.Reference.File)),
			zap.Int("page_size", rt.cfg.Projects.PageSize))
		return se.Next()
	})

	app.OnTerminate().BindFunc(func(e *core.TerminateEvent) error {
		_ = zap.L().Sync()
		return e.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func referenceSource(file string) string {
	if file == "" {
		return "built-in"
	}
	return file
}
