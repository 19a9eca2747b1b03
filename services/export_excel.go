package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet   = "Summary"
	materialsSheet = "Materials"
	maxSheetName   = 31
)

type excelStyles struct {
	title, subtitle, header, category, line, label, value int
}

// GenerateExcel writes the estimate as a workbook: a summary sheet, one
// sheet per room and a materials sheet. It returns the file contents.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	used := map[string]bool{strings.ToLower(summarySheet): true, strings.ToLower(materialsSheet): true}
	roomSheets := make([]string, len(data.Rooms))
	for i, room := range data.Rooms {
		roomSheets[i] = uniqueSheetName(room.Name, used)
	}

	if err := writeSummarySheet(f, styles, data, roomSheets); err != nil {
		return nil, err
	}
	for i, room := range data.Rooms {
		if _, err := f.NewSheet(roomSheets[i]); err != nil {
			return nil, fmt.Errorf("create room sheet %q: %w", roomSheets[i], err)
		}
		if err := writeRoomSheet(f, styles, roomSheets[i], room); err != nil {
			return nil, err
		}
	}
	if _, err := f.NewSheet(materialsSheet); err != nil {
		return nil, fmt.Errorf("create materials sheet: %w", err)
	}
	if err := writeMaterialsSheet(f, styles, data); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	var s excelStyles
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	}); err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}

	if s.subtitle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	}); err != nil {
		return s, fmt.Errorf("create subtitle style: %w", err)
	}

	// Column header: bold white on charcoal, centered.
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}

	if s.category, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create category style: %w", err)
	}

	if s.line, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create line style: %w", err)
	}

	if s.label, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, fmt.Errorf("create summary label style: %w", err)
	}

	if s.value, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	}); err != nil {
		return s, fmt.Errorf("create summary value style: %w", err)
	}
	return s, nil
}

func setColumnWidths(f *excelize.File, sheet string, widths []float64) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, row int, headers []string, style int) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, h)
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	f.SetCellStyle(sheet, first, last, style)
}

func writeSummarySheet(f *excelize.File, s excelStyles, data ExportData, roomSheets []string) error {
	sheet := summarySheet
	if err := setColumnWidths(f, sheet, []float64{32, 16, 16, 16}); err != nil {
		return err
	}

	title := data.Project.Project
	if title == "" {
		title = "Estimate"
	}
	if err := f.MergeCell(sheet, "A1", "D1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheet, "A1", "D1", s.title)

	f.SetCellValue(sheet, "A2", sanitizeExcelCell("Client: "+data.Project.Client))
	f.SetCellValue(sheet, "A3", sanitizeExcelCell("Created by: "+data.Project.CreatedBy))
	f.SetCellValue(sheet, "A4", "Date: "+data.GeneratedDate)
	f.SetCellStyle(sheet, "A2", "A4", s.subtitle)

	writeHeaderRow(f, sheet, 6, []string{"Room", "Difficulty", "Ceiling", "Hours"}, s.header)

	row := 7
	for i, room := range data.Rooms {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "A"+r, sanitizeExcelCell(roomSheets[i]))
		f.SetCellValue(sheet, "B"+r, string(room.Difficulty.Label))
		f.SetCellValue(sheet, "C"+r, fmt.Sprintf("%d' %d\"", room.CeilingHeight.Feet, room.CeilingHeight.Inches))
		f.SetCellValue(sheet, "D"+r, room.TotalHours)
		f.SetCellStyle(sheet, "A"+r, "D"+r, s.line)
		row++
	}

	row++
	r := fmt.Sprintf("%d", row)
	f.SetCellValue(sheet, "C"+r, "Total Hours:")
	f.SetCellStyle(sheet, "C"+r, "C"+r, s.label)
	f.SetCellValue(sheet, "D"+r, data.TotalHours())
	f.SetCellStyle(sheet, "D"+r, "D"+r, s.value)
	row++

	r = fmt.Sprintf("%d", row)
	f.SetCellValue(sheet, "C"+r, "Materials:")
	f.SetCellStyle(sheet, "C"+r, "C"+r, s.label)
	f.SetCellValue(sheet, "D"+r, FormatUSD(data.Materials.Total))
	f.SetCellStyle(sheet, "D"+r, "D"+r, s.value)
	return nil
}

func writeRoomSheet(f *excelize.File, s excelStyles, sheet string, room ExportRoom) error {
	if err := setColumnWidths(f, sheet, []float64{22, 44, 12, 10, 12}); err != nil {
		return err
	}

	if err := f.MergeCell(sheet, "A1", "E1"); err != nil {
		return fmt.Errorf("merge room title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(room.Name))
	f.SetCellStyle(sheet, "A1", "E1", s.title)
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Ceiling: %d' %d\"  Difficulty: %s",
		room.CeilingHeight.Feet, room.CeilingHeight.Inches, room.Difficulty.Label))
	f.SetCellStyle(sheet, "A2", "A2", s.subtitle)

	writeHeaderRow(f, sheet, 4, []string{"Subcategory", "Task", "Hours/Task", "Qty", "Subtotal"}, s.header)

	row := 5
	for _, cat := range room.Categories {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "A"+r, cat.Total.Category)
		f.SetCellValue(sheet, "B"+r, cat.Total.Explanation)
		f.SetCellValue(sheet, "E"+r, cat.Total.Hours)
		f.SetCellStyle(sheet, "A"+r, "E"+r, s.category)
		row++

		for _, line := range cat.Lines {
			r = fmt.Sprintf("%d", row)
			f.SetCellValue(sheet, "A"+r, "  "+sanitizeExcelCell(line.Subcategory))
			f.SetCellValue(sheet, "B"+r, sanitizeExcelCell(line.Task))
			f.SetCellValue(sheet, "C"+r, line.HoursPerTask)
			f.SetCellValue(sheet, "D"+r, line.Qty)
			f.SetCellValue(sheet, "E"+r, line.Subtotal)
			f.SetCellStyle(sheet, "A"+r, "E"+r, s.line)
			row++
		}
	}

	row++
	r := fmt.Sprintf("%d", row)
	f.SetCellValue(sheet, "D"+r, "Total:")
	f.SetCellStyle(sheet, "D"+r, "D"+r, s.label)
	f.SetCellValue(sheet, "E"+r, room.TotalHours)
	f.SetCellStyle(sheet, "E"+r, "E"+r, s.value)
	return nil
}

func writeMaterialsSheet(f *excelize.File, s excelStyles, data ExportData) error {
	sheet := materialsSheet
	if err := setColumnWidths(f, sheet, []float64{28, 14, 10, 14}); err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "Cable Pulls")
	f.SetCellStyle(sheet, "A1", "A1", s.title)
	writeHeaderRow(f, sheet, 2, []string{"Wire Type", "Length (ft)", "Qty", "Cost"}, s.header)

	row := 3
	for _, w := range data.Wires {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "A"+r, sanitizeExcelCell(w.Type))
		f.SetCellValue(sheet, "B"+r, w.LengthFeet())
		f.SetCellValue(sheet, "C"+r, w.Quantity)
		f.SetCellValue(sheet, "D"+r, FormatUSD(w.Cost))
		f.SetCellStyle(sheet, "A"+r, "D"+r, s.line)
		row++
	}

	row++
	r := fmt.Sprintf("%d", row)
	f.SetCellValue(sheet, "A"+r, "Rack Materials")
	f.SetCellStyle(sheet, "A"+r, "A"+r, s.title)
	row++
	writeHeaderRow(f, sheet, row, []string{"Material Type", "Qty", "", "Cost"}, s.header)
	row++

	for _, m := range data.RackMaterials {
		r = fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "A"+r, sanitizeExcelCell(m.Type))
		f.SetCellValue(sheet, "B"+r, m.Quantity)
		f.SetCellValue(sheet, "D"+r, FormatUSD(m.Cost))
		f.SetCellStyle(sheet, "A"+r, "D"+r, s.line)
		row++
	}

	row++
	for _, total := range []struct {
		label string
		value float64
	}{
		{"Wire Total:", data.Materials.Wires},
		{"Rack Materials Total:", data.Materials.RackMaterials},
		{"Materials Total:", data.Materials.Total},
	} {
		r = fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "C"+r, total.label)
		f.SetCellStyle(sheet, "C"+r, "C"+r, s.label)
		f.SetCellValue(sheet, "D"+r, FormatUSD(total.value))
		f.SetCellStyle(sheet, "D"+r, "D"+r, s.value)
		row++
	}
	return nil
}

// uniqueSheetName turns a room name into a valid sheet name. Characters
// Excel rejects become dashes, the name is cut to 31 characters and a
// numeric suffix is added when it is already taken. used is keyed by
// lower-cased name since Excel compares sheet names case-insensitively.
func uniqueSheetName(name string, used map[string]bool) string {
	base := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, strings.TrimSpace(name))
	base = strings.Trim(base, "'")
	if base == "" {
		base = "Room"
	}
	base = truncateRunes(base, maxSheetName)

	candidate := base
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
