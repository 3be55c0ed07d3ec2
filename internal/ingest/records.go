package ingest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/TirtaBytes/nikcheck/internal/validate"
)

// ErrMissingColumns is returned when the workbook lacks required columns.
// The wrapped message names every missing column.
var ErrMissingColumns = errors.New("missing required columns")

// RequiredColumns are the six columns a workbook must provide, in report
// output order.
var RequiredColumns = []string{"KK_NO", "NIK", "CUSTNAME", "JENIS_KELAMIN", "TANGGAL_LAHIR", "TEMPAT_LAHIR"}

// Require verifies the table has every named column. A missing column is a
// fatal precondition for the whole run, not a per-row failure.
func (t *Table) Require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if _, ok := t.Column(c); !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}

// ToRecords projects the required columns of the table into validation
// records, normalizing birth-date cells on the way. Call Require first;
// missing columns project as empty strings here.
func ToRecords(t *Table) []validate.Record {
	idx := make([]int, len(RequiredColumns))
	for i, c := range RequiredColumns {
		if j, ok := t.Column(c); ok {
			idx[i] = j
		} else {
			idx[i] = -1
		}
	}
	cell := func(row []string, i int) string {
		if idx[i] < 0 || idx[i] >= len(row) {
			return ""
		}
		return row[idx[i]]
	}

	out := make([]validate.Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, validate.Record{
			KKNo:         cell(row, 0),
			NIK:          cell(row, 1),
			CustName:     cell(row, 2),
			JenisKelamin: cell(row, 3),
			TanggalLahir: ParseBirthDate(cell(row, 4)),
			TempatLahir:  cell(row, 5),
		})
	}
	return out
}

// excelEpoch is day zero of the OOXML 1900 date system. Using Dec 30
// rather than 31 absorbs the historical lotus leap-year bug for serials
// past February 1900.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// structuredLayouts are the cell-text forms a spreadsheet writes for
// genuinely typed date cells. Plain "2006-01-02" strings are deliberately
// absent: a bare ISO date string is an invalid entry, not a structured one.
var structuredLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseBirthDate normalizes one birth-date cell. Accepted forms are the
// DD/MM/YYYY display format, an Excel serial number, and the structured
// datetime layouts above. Anything else keeps only its raw text, and the
// birth-date rule fails it later.
func ParseBirthDate(raw string) validate.BirthDate {
	d := validate.BirthDate{Raw: raw}
	v := strings.TrimSpace(raw)
	if v == "" {
		return d
	}
	if t, err := time.Parse("02/01/2006", v); err == nil {
		d.Time, d.Parsed = t, true
		return d
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil && serial > 0 {
		d.Time = excelEpoch.Add(time.Duration(serial * float64(24*time.Hour)))
		d.Parsed = true
		return d
	}
	for _, layout := range structuredLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			d.Time, d.Parsed = t, true
			return d
		}
	}
	return d
}
