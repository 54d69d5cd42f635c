// Package report renders a questionnaire result for the terminal and for export.
package report

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"learnstyle/internal/soal"
)

// Format names an export format.
type Format string

// Export formats.
const (
	FormatHTML Format = "html"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatHTML, FormatXLSX, FormatJSON, FormatText:
		return f, nil
	case "txt":
		return FormatText, nil
	case "xls", "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown format %q (want html, xlsx, json or text)", value)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", false
	}
	f, err := ParseFormat(ext)
	return f, err == nil
}

// DefaultFileName is the export file name used when no output is given.
func DefaultFileName(format Format) string {
	if format == FormatText {
		return "hasil-gaya-belajar.txt"
	}
	return "hasil-gaya-belajar." + string(format)
}

// Export writes result to w in format.
func Export(ctx context.Context, w io.Writer, format Format, result soal.Result) error {
	switch format {
	case FormatHTML:
		return RenderHTML(ctx, w, result)
	case FormatXLSX:
		return WriteXLSX(w, result)
	case FormatJSON:
		return WriteJSON(w, result)
	case FormatText:
		_, err := io.WriteString(w, RenderText(result, TextOptions{NoColor: true}))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// formatScore renders a score without a trailing .0 for whole numbers.
func formatScore(score float64) string {
	if score == float64(int64(score)) {
		return fmt.Sprintf("%+d", int64(score))
	}
	return fmt.Sprintf("%+.1f", score)
}

// rows flattens result into display order.
func rows(result soal.Result) []row {
	recs := make(map[soal.Dimension]soal.Recommendation, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		recs[rec.Dimension] = rec
	}
	out := make([]row, 0, len(soal.Dimensions))
	for _, dim := range soal.Dimensions {
		score := result.Scores[dim]
		rec, ok := recs[dim]
		if !ok {
			rec = soal.Recommendation{
				Dimension:   dim,
				Explanation: soal.PlaceholderExplanation,
				Advice:      soal.PlaceholderAdvice,
			}
		}
		out = append(out, row{
			Dimension:   dim,
			Label:       dim.Label(),
			Category:    score.Category,
			Score:       score.Score,
			Explanation: rec.Explanation,
			Advice:      rec.Advice,
		})
	}
	return out
}

type row struct {
	Dimension   soal.Dimension
	Label       string
	Category    string
	Score       float64
	Explanation string
	Advice      string
}
