package reportserver

import (
	"errors"
	"log/slog"
	"net/http"

	"learnstyle/internal/report"
	"learnstyle/internal/soal"
)

const noResult = "Belum ada hasil. Jalankan `learnstyle take` terlebih dahulu."

// NewHandler builds the HTTP handler for the result page and downloads.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Load == nil {
		return nil, errors.New("reportserver: load func is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &handler{load: cfg.Load, logger: logger.With("component", "reportserver")}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.withResult(h.servePage))
	mux.HandleFunc("GET /result.json", h.withResult(h.serveJSON))
	mux.HandleFunc("GET /result.xlsx", h.withResult(h.serveXLSX))
	return mux, nil
}

type handler struct {
	load   LoadFunc
	logger *slog.Logger
}

type resultHandler func(w http.ResponseWriter, r *http.Request, result soal.Result) error

// withResult loads the result per request so a new submission shows up
// without a restart.
func (h *handler) withResult(next resultHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, ok := h.load(r.Context())
		if !ok {
			http.Error(w, noResult, http.StatusNotFound)
			return
		}
		if err := next(w, r, result); err != nil {
			h.logger.ErrorContext(r.Context(), "render result", "path", r.URL.Path, "error", err)
		}
	}
}

func (h *handler) servePage(w http.ResponseWriter, r *http.Request, result soal.Result) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return report.ResultPage(result).Render(r.Context(), w)
}

func (h *handler) serveJSON(w http.ResponseWriter, _ *http.Request, result soal.Result) error {
	w.Header().Set("Content-Type", "application/json")
	return report.WriteJSON(w, result)
}

func (h *handler) serveXLSX(w http.ResponseWriter, _ *http.Request, result soal.Result) error {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.DefaultFileName(report.FormatXLSX)+`"`)
	return report.WriteXLSX(w, result)
}
