// Package report derives aggregate quality statistics from a classified
// batch and renders them as a plain-text block, an xlsx workbook, and a
// terminal dashboard.
package report

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/TirtaBytes/nikcheck/internal/validate"
)

// FieldStat is one field's invalid count with its report label.
type FieldStat struct {
	Field validate.Field
	Label string
	Count int
	Pct   float64
}

// Summary is the immutable statistics snapshot computed once per run.
type Summary struct {
	RunID       string
	GeneratedAt time.Time

	Total int
	Messy int
	Clean int

	TotalPct float64
	MessyPct float64
	CleanPct float64

	// TotalInvalid counts parameters over messy rows only: messy-row
	// count times the number of validated fields. Clean rows contribute
	// nothing to the denominator; do not "fix" this to total×fields.
	TotalInvalid int
	MessyInvalid int
	CleanInvalid int

	TotalInvalidPct float64
	MessyInvalidPct float64
	CleanInvalidPct float64

	// Fields holds the six per-field stats in rule order.
	Fields []FieldStat
}

// fieldLabels maps rule fields to their summary-report labels.
var fieldLabels = map[validate.Field]string{
	validate.FieldKKNo:         "Invalid KK",
	validate.FieldNIK:          "Invalid NIK",
	validate.FieldCustName:     "Invalid Name",
	validate.FieldJenisKelamin: "Invalid Gender",
	validate.FieldTempatLahir:  "Invalid Places",
	validate.FieldTanggalLahir: "Invalid Date",
}

// Summarize computes the report statistics for one classified batch.
// Zero-row and zero-messy batches yield zeroed percentages rather than a
// division fault.
func Summarize(messy, clean []validate.Classified, total int) Summary {
	s := Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		Total:       total,
		Messy:       len(messy),
		Clean:       len(clean),
	}

	for _, ru := range validate.Rules() {
		n := 0
		for _, c := range messy {
			if c.HasViolation(ru.Field) {
				n++
			}
		}
		s.Fields = append(s.Fields, FieldStat{Field: ru.Field, Label: fieldLabels[ru.Field], Count: n})
		s.MessyInvalid += n
	}
	s.TotalInvalid = s.Messy * validate.FieldCount()
	s.CleanInvalid = s.TotalInvalid - s.MessyInvalid

	if s.Total > 0 {
		s.TotalPct = 100.0
		s.MessyPct = pct(s.Messy, s.Total)
		s.CleanPct = pct(s.Clean, s.Total)
	}
	if s.TotalInvalid > 0 {
		s.TotalInvalidPct = 100.0
		s.MessyInvalidPct = pct(s.MessyInvalid, s.TotalInvalid)
		s.CleanInvalidPct = pct(s.CleanInvalid, s.TotalInvalid)
		for i := range s.Fields {
			s.Fields[i].Pct = pct(s.Fields[i].Count, s.TotalInvalid)
		}
	}
	return s
}

// pct is count/denominator as a percentage rounded to two decimals.
func pct(count, total int) float64 {
	return round2(float64(count) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
