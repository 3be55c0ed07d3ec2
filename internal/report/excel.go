package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/TirtaBytes/nikcheck/internal/utils"
	"github.com/TirtaBytes/nikcheck/internal/validate"
)

const (
	sheetSummary = "Summary"
	sheetMessy   = "Messy Data"
	sheetClean   = "Clean Data"
)

// summaryHeaders is the fixed column set of the summary sheet, blank
// separator included.
var summaryHeaders = []any{
	"Category", "Total Data", "Messy Data", "Clean Data", "",
	"Invalid Parameter", "Clean Parameter", "Messy Parameter",
	"Invalid KK", "Invalid NIK", "Invalid Name", "Invalid Gender", "Invalid Places", "Invalid Date",
}

// dataHeaders is the column order of both record sheets.
var dataHeaders = []any{"KK_NO", "NIK", "CUSTNAME", "JENIS_KELAMIN", "TANGGAL_LAHIR", "TEMPAT_LAHIR"}

// WriteWorkbook renders the three-sheet report: the summary table (counts
// and percentages), the messy records with their Check_Desc column, and
// the clean records without it.
func WriteWorkbook(path string, s Summary, messy, clean []validate.Classified) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeSummarySheet(f, s); err != nil {
		return err
	}
	if err := writeRecordSheet(f, sheetMessy, messy, true); err != nil {
		return err
	}
	if err := writeRecordSheet(f, sheetClean, clean, false); err != nil {
		return err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("encode workbook: %w", err)
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, s Summary) error {
	counts := []any{"Data", s.Total, s.Messy, s.Clean, "",
		s.TotalInvalid, s.CleanInvalid, s.MessyInvalid}
	pcts := []any{"Data (%)", s.TotalPct, s.MessyPct, s.CleanPct, "",
		s.TotalInvalidPct, s.CleanInvalidPct, s.MessyInvalidPct}
	for _, fs := range s.Fields {
		counts = append(counts, fs.Count)
		pcts = append(pcts, fs.Pct)
	}

	for i, row := range [][]any{summaryHeaders, counts, pcts} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("summary sheet: %w", err)
		}
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return fmt.Errorf("summary sheet: %w", err)
		}
	}
	return nil
}

func writeRecordSheet(f *excelize.File, name string, records []validate.Classified, withDesc bool) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("sheet %s: %w", name, err)
	}
	header := append([]any{}, dataHeaders...)
	if withDesc {
		header = append(header, "Check_Desc")
	}
	rows := make([][]any, 0, len(records)+1)
	rows = append(rows, header)
	for _, c := range records {
		row := []any{c.KKNo, c.NIK, c.CustName, c.JenisKelamin, c.TanggalLahir.Raw, c.TempatLahir}
		if withDesc {
			row = append(row, c.CheckDesc)
		}
		rows = append(rows, row)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
	}
	return nil
}
