package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnstyle/internal/logging"
	"learnstyle/internal/soal"
	"learnstyle/internal/stubserver"
)

// main launches soalstub.
func main() {
	os.Exit(run())
}

// run executes soalstub and returns an exit code.
func run() int {
	configPath := flag.String("config", "", "path to soalstub config")
	addr := flag.String("addr", "", "listen address (overrides config)")
	token := flag.String("token", "", "required bearer token (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}
	if *addr != "" {
		cfg.Server.ListenAddr = *addr
	}
	if *token != "" {
		cfg.Server.Token = *token
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		Fallback: os.Stderr,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "log error: %v\n", err)
		return 1
	}
	defer closeLog.Close()

	var questions []soal.Question
	if cfg.Bank.Path != "" {
		questions, err = stubserver.LoadBankFile(cfg.Bank.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bank error: %v\n", err)
			return 1
		}
	}
	stub, err := stubserver.New(stubserver.Config{
		Questions: questions,
		Token:     cfg.Server.Token,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "stub error: %v\n", err)
		return 1
	}
	dims, _ := omittedDimensions(cfg)
	stub.OmitRecommendations(dims...)
	stub.SetSubmitLatency(submitLatency(cfg))

	server := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           stub.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("listening", "addr", cfg.Server.ListenAddr, "auth", cfg.Server.Token != "")

	code := 0
	select {
	case <-ctx.Done():
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		code = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	return code
}
