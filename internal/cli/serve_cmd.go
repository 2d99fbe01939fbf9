package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(app *App) *cobra.Command {
	var withSchedule bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the /workout slash command and a health check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			schedErr := make(chan error, 1)
			if withSchedule {
				if err := app.Delivery.Validate(ctx); err != nil {
					return err
				}
				go func() {
					schedErr <- app.Scheduler.Run(ctx)
				}()
			} else {
				close(schedErr)
			}

			server := &http.Server{
				Addr:              ":" + app.Port,
				Handler:           newMux(app.Handler),
				ReadHeaderTimeout: 10 * time.Second,
			}

			serveErr := make(chan error, 1)
			go func() {
				app.Log.Info("Server starting", zap.String("port", app.Port))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- fmt.Errorf("failed to start server: %w", err)
				}
				close(serveErr)
			}()

			var runErr error
			select {
			case <-ctx.Done():
			case runErr = <-serveErr:
			}

			shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
			defer stop()
			if err := server.Shutdown(shutdownCtx); err != nil {
				app.Log.Error("Server shutdown failed", zap.Error(err))
			}

			cancel()
			if err := <-schedErr; err != nil && runErr == nil {
				runErr = err
			}

			app.Log.Info("Server stopped")
			return runErr
		},
	}

	cmd.Flags().BoolVar(&withSchedule, "schedule", false, "Also run the daily scheduler in the same process")

	return cmd
}

func newMux(h SlashHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /slack/commands", h.HandleSlashCommand)
	mux.HandleFunc("GET /health", h.HandleHealth)
	return mux
}
