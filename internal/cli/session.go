package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"learnstyle/internal/config"
	"learnstyle/internal/logging"
	"learnstyle/internal/progress"
	"learnstyle/internal/questionnaire"
	"learnstyle/internal/soal"
)

// session holds everything a command needs after config resolution.
type session struct {
	cfg     config.Config
	cfgPath string
	logger  *slog.Logger
	store   progress.Store
	cache   *progress.Cache
	closers []io.Closer
}

type sessionOptions struct {
	ConfigPath string
	// LogFallback receives logs when no log file is configured.
	LogFallback io.Writer
}

// openSession resolves config, builds the logger and opens the progress store.
func openSession(ctx context.Context, opts sessionOptions) (*session, error) {
	resolved, err := configResolve(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg := resolved.Config

	logFile := cfg.Log.File
	if logFile != "" {
		if logFile, err = config.ExpandHome(logFile); err != nil {
			return nil, err
		}
	}
	logger, logCloser, err := logging.New(logging.Options{
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		File:     logFile,
		Fallback: opts.LogFallback,
	})
	if err != nil {
		return nil, err
	}
	s := &session{
		cfg:     cfg,
		cfgPath: resolved.Path,
		logger:  logger,
		closers: []io.Closer{logCloser},
	}

	store, err := s.openStore(ctx)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.store = store
	s.cache = progress.NewCache(store, logger)
	logger.Debug("session opened", "config", resolved.Path, "storage", cfg.Storage.Backend)
	return s, nil
}

func (s *session) openStore(ctx context.Context) (progress.Store, error) {
	storage := s.cfg.Storage
	switch storage.Backend {
	case config.StorageMemory:
		return progress.NewMemoryStore(), nil
	case config.StorageRedis:
		store, err := progress.NewRedisStore(ctx, progress.RedisOptions{
			URL:    storage.RedisURL,
			Prefix: storage.KeyPrefix,
			TTL:    storage.TTL,
		})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, store)
		return store, nil
	case config.StorageFile, "":
		path, err := config.ExpandHome(storage.Path)
		if err != nil {
			return nil, err
		}
		return progress.NewFileStore(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", storage.Backend)
	}
}

// Close releases the store and log file in reverse order.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i].Close()
	}
	s.closers = nil
}

// client builds a backend client for a fresh session id. token overrides
// the configured one when set.
func (s *session) client(token string) *soal.Client {
	if token == "" {
		token = s.cfg.API.Token
	}
	return soal.New(s.cfg.API.BaseURL, soal.Options{
		Token:     token,
		Timeout:   s.cfg.API.Timeout,
		SessionID: uuid.NewString(),
		Logger:    s.logger,
	})
}

// controller wires a questionnaire controller to client and nav.
func (s *session) controller(client *soal.Client, nav questionnaire.Navigator, afterFunc func(d time.Duration, f func())) *questionnaire.Controller {
	return questionnaire.New(questionnaire.Config{
		Questions: client,
		Submitter: client,
		Cache:     s.cache,
		Navigator: nav,
		PageSize:  s.cfg.Questionnaire.PageSize,
		Locale:    s.cfg.Questionnaire.Locale,
		SessionID: client.SessionID(),
		Logger:    s.logger,
		AfterFunc: afterFunc,
	})
}

// savedResult loads the last stored result.
func (s *session) savedResult(ctx context.Context) (soal.Result, bool) {
	var result soal.Result
	ok := s.cache.Load(ctx, progress.KeyResult, &result)
	return result, ok
}

func configResolve(path string) (config.Resolved, error) {
	return config.Resolve(config.ResolveOptions{Path: path})
}
