package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"eventd/internal/app"
	"eventd/internal/httpapi"
)

type serveOptions struct {
	Addr         string
	CORSEnabled  bool
	CORSOrigins  string
	CORSMethods  string
	CORSHeaders  string
	MaxBodyBytes int64
	Shutdown     time.Duration
}

func newServeCmd(cfg *cliConfig, stderr io.Writer) *cobra.Command {
	opts := serveOptions{Addr: envStr("EVENTD_ADDR", ":8080")}
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the HTTP dispatch API",
		Example: "  eventd serve --config events.yaml --addr :9090\n  eventd serve --cors --cors-origins https://app.example",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, log, err := setup(cfg, stderr, stderr)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a, log, cfg.ConfigPath, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.Addr, "addr", opts.Addr, "HTTP listen address, e.g. :8080 (defaults EVENTD_ADDR)")
	f.BoolVar(&opts.CORSEnabled, "cors", false, "Enable CORS")
	f.StringVar(&opts.CORSOrigins, "cors-origins", "*", "Comma-separated allowed origins")
	f.StringVar(&opts.CORSMethods, "cors-methods", "GET,POST,OPTIONS", "Comma-separated allowed methods")
	f.StringVar(&opts.CORSHeaders, "cors-headers", "Content-Type,X-Log-Level", "Comma-separated allowed headers")
	f.Int64Var(&opts.MaxBodyBytes, "max-body-bytes", 1<<20, "Maximum dispatch request body size")
	f.DurationVar(&opts.Shutdown, "shutdown-timeout", 5*time.Second, "Graceful shutdown timeout")
	return cmd
}

// serve runs the HTTP API until ctx is done. SIGHUP reloads the event
// document from path; a failed reload keeps the current table.
func serve(ctx context.Context, a *app.App, log zerolog.Logger, path string, opts serveOptions) error {
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn().Err(err).Msg("closing observers")
		}
	}()

	httpapi.SetLogger(log)
	httpapi.SetBaseContext(ctx)
	httpapi.SetMaxBodyBytes(opts.MaxBodyBytes)
	httpapi.SetCORSOptions(opts.CORSEnabled, splitCSV(opts.CORSOrigins), splitCSV(opts.CORSMethods), splitCSV(opts.CORSHeaders))

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           httpapi.NewMux(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				log.Info().Str("path", path).Msg("reloading event table")
				_ = a.Init(path)
			}
		}
	}()

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", opts.Addr).Str("config", path).Msg("eventd listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), opts.Shutdown)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
