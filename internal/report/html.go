package report

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"learnstyle/internal/soal"
)

const pageStyle = `body{font-family:system-ui,sans-serif;max-width:52rem;margin:2rem auto;padding:0 1rem;color:#1f2933}
h1{font-size:1.6rem}table{border-collapse:collapse;width:100%;margin:1rem 0}
th,td{border:1px solid #d2d6dc;padding:.5rem;text-align:left;vertical-align:top}
th{background:#f4f5f7}.score{font-variant-numeric:tabular-nums;white-space:nowrap}
section{margin:1.5rem 0}section h2{font-size:1.15rem;margin-bottom:.25rem}.muted{color:#6b7280}`

// ResultPage renders result as a standalone HTML document.
func ResultPage(result soal.Result) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html lang="id"><head><meta charset="utf-8"><title>Hasil Gaya Belajar</title><style>`+pageStyle+`</style></head><body>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<h1>Hasil Gaya Belajar</h1>"); err != nil {
			return err
		}
		if !result.SubmittedAt.IsZero() {
			if _, err := fmt.Fprintf(w, `<p class="muted">Dikirim %s</p>`, templ.EscapeString(result.SubmittedAt.UTC().Format("02 Jan 2006 15:04 MST"))); err != nil {
				return err
			}
		}
		if err := scoreTable(result).Render(ctx, w); err != nil {
			return err
		}
		for _, r := range rows(result) {
			if err := recommendationSection(r).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func scoreTable(result soal.Result) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<table><thead><tr><th>Dimensi</th><th>Kategori</th><th>Skor</th></tr></thead><tbody>"); err != nil {
			return err
		}
		for _, r := range rows(result) {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td class="score">%s</td></tr>`,
				templ.EscapeString(r.Label),
				templ.EscapeString(r.Category),
				templ.EscapeString(formatScore(r.Score)),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody></table>")
		return err
	})
}

func recommendationSection(r row) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section id="%s"><h2>%s</h2><p>%s</p><p><strong>Saran:</strong> %s</p></section>`,
			templ.EscapeString(r.Dimension.String()),
			templ.EscapeString(r.Label),
			templ.EscapeString(r.Explanation),
			templ.EscapeString(r.Advice),
		)
		return err
	})
}

// RenderHTML writes the HTML report.
func RenderHTML(ctx context.Context, w io.Writer, result soal.Result) error {
	return ResultPage(result).Render(ctx, w)
}
