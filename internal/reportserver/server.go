package reportserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"learnstyle/internal/soal"
)

// LoadFunc returns the stored result, or false when none exists yet.
type LoadFunc func(ctx context.Context) (soal.Result, bool)

// Config captures the settings for serving the stored result.
type Config struct {
	Addr   string
	Load   LoadFunc
	Logger *slog.Logger
}

// Serve starts an HTTP server that hosts the result pages until ctx ends.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("reportserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("reportserver: addr is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
