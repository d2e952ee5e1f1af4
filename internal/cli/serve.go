package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/roz0n/Veximoji/internal/httpapi"
	"github.com/roz0n/Veximoji/internal/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the flag lookup API over HTTP",
	Long: `Serve the flag lookup API over HTTP.

Endpoints live under /v1 (flags, countries, subdivisions, international,
cultural, decode), plus /healthz and Prometheus /metrics. Configure the
listen address via server.addr or VEXIMOJI_SERVER_ADDR.`,
	Example: `  veximoji serve
  VEXIMOJI_SERVER_ADDR=:9090 veximoji serve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		provider, err := tracing.NewProvider(tracing.Config{
			Enabled:     cfg.Tracing.Enabled,
			ServiceName: cfg.Tracing.ServiceName,
		})
		if err != nil {
			return fmt.Errorf("initializing tracing: %w", err)
		}

		reg := httpapi.NewRegistry()
		handler := httpapi.NewHandler(newComposer(), logger, httpapi.NewMetrics(reg))

		var tracer trace.Tracer
		if provider.Enabled() {
			tracer = provider.Tracer()
		}

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           httpapi.NewRouter(handler, reg, tracer),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("serving", "addr", cfg.Server.Addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
				return
			}
			errCh <- nil
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server: %w", err)
			}
		case <-ctx.Done():
			logger.Info("shutting down")
			grace := time.Duration(cfg.Server.ShutdownGraceSeconds) * time.Second
			shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			if err := provider.Shutdown(shutdownCtx); err != nil {
				logger.Warn("trace provider shutdown", "error", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
