package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/acadtools/timetable-viewer/internal/config"
	"github.com/acadtools/timetable-viewer/internal/schedule"
	"github.com/acadtools/timetable-viewer/internal/server"
	"github.com/acadtools/timetable-viewer/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logCfg := zap.NewProductionConfig()
	if cfg.Verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := logCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	st := store.New(store.Options{
		RosterDir:     cfg.Data.RosterDir,
		MasterFile:    cfg.Data.MasterFile,
		TimetableFile: cfg.Data.TimetableFile,
		RollHeader:    cfg.Data.RollHeader,
		Delimiter:     cfg.DelimiterRune(),
	}, logger)

	// Fail at startup when the reference files are absent.
	if _, _, _, err := st.Datasets(); err != nil {
		logger.Fatal("loading reference datasets", zap.Error(err))
	}

	if cfg.Server.Watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := st.Watch(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("dataset watcher stopped", zap.Error(err))
			}
		}()
	}

	srv := server.New(schedule.NewService(st, logger), logger)
	if err := srv.Run(cfg.Server.Listen); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
