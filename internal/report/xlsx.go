package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSX exports the flat table as a right-to-left spreadsheet.
type XLSX struct{}

// Ext implements Exporter.
func (XLSX) Ext() string { return ".xlsx" }

// Export implements Exporter.
func (XLSX) Export(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	rtl := true
	if err := f.SetSheetView(SheetName, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return fmt.Errorf("setting sheet view: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "B", 28); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := setRow(f, 1, header, bold); err != nil {
		return err
	}

	// Cells hold float64; amounts beyond float precision are rounded here.
	for i, row := range r.Rows {
		n := i + 2
		switch row.Kind {
		case SpacerRow:
			continue
		case ItemRow:
			err = setRow(f, n, []interface{}{
				row.Section,
				row.Item,
				row.Quantity.InexactFloat64(),
				row.Price.InexactFloat64(),
				row.Total.InexactFloat64(),
			}, 0)
		default:
			err = setRow(f, n, []interface{}{row.Section, "", "", "", row.Total.InexactFloat64()}, bold)
		}
		if err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing spreadsheet: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, n int, values []interface{}, style int) error {
	start, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, start, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", n, err)
	}
	if style == 0 {
		return nil
	}
	end, err := excelize.CoordinatesToCellName(len(values), n)
	if err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, start, end, style)
}
