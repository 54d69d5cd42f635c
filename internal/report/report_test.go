package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"learnstyle/internal/soal"
)

func sampleResult() soal.Result {
	result := soal.Merge(soal.ScoreResponse{
		ProcessingCategory:    "Aktif Sedang",
		ProcessingScore:       5,
		PerceptionCategory:    "Seimbang",
		PerceptionScore:       -1,
		InputCategory:         "Visual Kuat",
		InputScore:            9,
		UnderstandingCategory: "Global Sedang",
		UnderstandingScore:    -7,
	}, []soal.RecommendationEntry{
		{Dimension: "Pemrosesan", Explanation: "Belajar sambil <mencoba>.", Advice: "Diskusi & praktik."},
		{Dimension: "Input", Explanation: "Suka diagram.", Advice: "Buat peta konsep."},
	})
	result.SessionID = "sess-1"
	result.SubmittedAt = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	return result
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"HTML": FormatHTML, "xlsx": FormatXLSX, "excel": FormatXLSX, " json ": FormatJSON, "txt": FormatText}
	for input, want := range cases {
		got, err := ParseFormat(input)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", input, got, err)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Fatalf("expected error for pdf")
	}
	if f, ok := FormatFromPath("out/hasil.XLSX"); !ok || f != FormatXLSX {
		t.Fatalf("unexpected format from path: %q %v", f, ok)
	}
	if _, ok := FormatFromPath("hasil"); ok {
		t.Fatalf("expected no format without extension")
	}
}

func TestScoreBar(t *testing.T) {
	if got := ScoreBar(0); got != "[-----------*-----------]" {
		t.Fatalf("unexpected zero bar %q", got)
	}
	if got := ScoreBar(11); !strings.HasSuffix(got, "|----------*]") {
		t.Fatalf("unexpected max bar %q", got)
	}
	if got := ScoreBar(-40); !strings.HasPrefix(got, "[*") {
		t.Fatalf("expected clamped bar, got %q", got)
	}
}

func TestRenderTextListsEveryDimension(t *testing.T) {
	out := RenderText(sampleResult(), TextOptions{NoColor: true})
	for _, want := range []string{"Pemrosesan", "Persepsi", "Input", "Pemahaman", "Aktif Sedang (+5)", "Global Sedang (-7)", soal.PlaceholderAdvice} {
		if !strings.Contains(out, want) {
			t.Fatalf("text output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("no-color output contains escape codes")
	}
}

func TestRenderHTMLEscapesText(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHTML(context.Background(), &buf, sampleResult()); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "Belajar sambil &lt;mencoba&gt;.") {
		t.Fatalf("explanation not escaped: %s", html)
	}
	if !strings.Contains(html, "Diskusi &amp; praktik.") {
		t.Fatalf("advice not escaped: %s", html)
	}
	if strings.Count(html, "<section") != 4 {
		t.Fatalf("expected four sections")
	}
	if !strings.HasSuffix(html, "</html>") {
		t.Fatalf("document not closed")
	}
}

func TestWriteXLSXOneRowPerDimension(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleResult()); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(SheetResult)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected header plus four rows, got %d", len(rows))
	}
	if rows[0][0] != "Dimensi" || rows[3][0] != "Input" || rows[3][1] != "Visual Kuat" {
		t.Fatalf("unexpected rows %v", rows)
	}
	session, err := f.GetCellValue(SheetInfo, "B1")
	if err != nil || session != "sess-1" {
		t.Fatalf("unexpected session cell %q %v", session, err)
	}
}

func TestJSONRoundTripKeepsDimensions(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleResult()); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), `"understanding"`) {
		t.Fatalf("expected dimension names as keys: %s", buf.String())
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Scores[soal.DimensionInput].Score != 9 || len(got.Recommendations) != 4 {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestExportText(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(context.Background(), &buf, FormatText, sampleResult()); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Hasil Gaya Belajar") {
		t.Fatalf("unexpected text export %q", buf.String())
	}
}
