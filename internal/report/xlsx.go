package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"learnstyle/internal/soal"
)

// Sheet names in the exported workbook.
const (
	SheetResult = "Hasil"
	SheetInfo   = "Info"
)

var xlsxHeaders = []string{"Dimensi", "Kategori", "Skor", "Penjelasan", "Rekomendasi"}

// WriteXLSX writes a workbook with one row per dimension.
func WriteXLSX(w io.Writer, result soal.Result) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetResult); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	for i, h := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetResult, cell, h)
	}
	_ = f.SetCellStyle(SheetResult, "A1", "E1", header)

	for i, r := range rows(result) {
		values := []any{r.Label, r.Category, r.Score, r.Explanation, r.Advice}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(SheetResult, cell, v)
		}
	}
	_ = f.SetColWidth(SheetResult, "A", "C", 16)
	_ = f.SetColWidth(SheetResult, "D", "E", 60)

	if _, err := f.NewSheet(SheetInfo); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	info := [][2]any{{"Sesi", result.SessionID}}
	if !result.SubmittedAt.IsZero() {
		info = append(info, [2]any{"Dikirim", result.SubmittedAt.UTC().Format("2006-01-02 15:04:05 MST")})
	}
	for i, kv := range info {
		_ = f.SetCellValue(SheetInfo, fmt.Sprintf("A%d", i+1), kv[0])
		_ = f.SetCellValue(SheetInfo, fmt.Sprintf("B%d", i+1), kv[1])
	}
	_ = f.SetColWidth(SheetInfo, "A", "B", 24)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write excel: %w", err)
	}
	return nil
}
