package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/acadtools/timetable-viewer/internal/config"
	"github.com/acadtools/timetable-viewer/internal/schedule"
	"github.com/acadtools/timetable-viewer/internal/store"
)

// runtime bundles the dependencies built from the persistent flags.
type runtime struct {
	svc    *schedule.Service
	store  *store.Store
	cfg    *config.Config
	logger *zap.Logger
}

func newRuntime(cmd *cobra.Command) (*runtime, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := logCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	st := store.New(store.Options{
		RosterDir:     cfg.Data.RosterDir,
		MasterFile:    cfg.Data.MasterFile,
		TimetableFile: cfg.Data.TimetableFile,
		RollHeader:    cfg.Data.RollHeader,
		Delimiter:     cfg.DelimiterRune(),
	}, logger)

	return &runtime{
		svc:    schedule.NewService(st, logger),
		store:  st,
		cfg:    cfg,
		logger: logger,
	}, nil
}
