package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/acadtools/timetable-viewer/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve schedule lookups over HTTP",
		Long: `Start the HTTP API: GET /schedule/<roll-number> returns the personal
schedule as JSON, GET /schedule/<roll-number>/export downloads it as a
spreadsheet. Reference files are reloaded when they change on disk.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("listen", "", "listen address (defaults to server.listen from config)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}

	// Fail at startup when the reference files are absent.
	if _, _, _, err := rt.store.Datasets(); err != nil {
		return err
	}

	if rt.cfg.Server.Watch {
		go func() {
			ctx := cmd.Context()
			if err := rt.store.Watch(ctx); err != nil && ctx.Err() == nil {
				rt.logger.Warn("dataset watcher stopped", zap.Error(err))
			}
		}()
	}

	addr, _ := cmd.Flags().GetString("listen")
	if addr == "" {
		addr = rt.cfg.Server.Listen
	}
	return server.New(rt.svc, rt.logger).Run(addr)
}
