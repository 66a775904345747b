package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/gridhome/springboard/internal/home"
	"github.com/gridhome/springboard/internal/infrastructure/config"
	"github.com/gridhome/springboard/internal/infrastructure/logging"
	"github.com/gridhome/springboard/internal/infrastructure/monitoring"
)

func main() {
	dev := flag.Bool("dev", false, "Development logging")
	empty := flag.Bool("empty", false, "Start without the default apps")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	manager := home.New(home.Options{
		Columns:        cfg.Home.Columns,
		Rows:           cfg.Home.Rows,
		MaxPages:       cfg.Home.MaxPages,
		DockCapacity:   cfg.Home.DockCapacity,
		FolderColumns:  cfg.Folder.Columns,
		FolderRows:     cfg.Folder.Rows,
		FolderMaxPages: cfg.Folder.MaxPages,
	}).WithLogger(logger).WithMetrics(monitoring.NewMetrics())

	if !*empty {
		manager.Seed(cfg.Home.DefaultApps, cfg.Home.ProtectedApps)
	}

	stats := manager.Stats()
	logger.Info("home screen ready",
		zap.Int("apps", stats.Apps),
		zap.Int("pages", stats.Pages),
		zap.Int("dock_items", stats.DockItems),
	)

	out, err := manager.SnapshotJSON()
	if err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		os.Exit(1)
	}
	fmt.Println(string(out))
}
