package report

import (
	"strings"
	"testing"

	"github.com/TirtaBytes/nikcheck/internal/validate"
)

// messyWith builds n messy records, each carrying the given violations.
func messyWith(n int, fields ...validate.Field) []validate.Classified {
	out := make([]validate.Classified, n)
	for i := range out {
		out[i] = validate.Classified{Violations: fields}
	}
	return out
}

func cleanRows(n int) []validate.Classified {
	return make([]validate.Classified, n)
}

func TestSummarizeIdentity(t *testing.T) {
	// total=100, messy=10, 6 fields => total_invalid=60; per-field counts
	// sum to 15 => clean_invalid=45.
	messy := append(
		messyWith(5, validate.FieldKKNo, validate.FieldNIK),
		messyWith(5, validate.FieldTanggalLahir)...,
	)
	s := Summarize(messy, cleanRows(90), 100)

	if s.Total != 100 || s.Messy != 10 || s.Clean != 90 {
		t.Fatalf("counts: %d/%d/%d", s.Total, s.Messy, s.Clean)
	}
	if s.TotalInvalid != 60 {
		t.Fatalf("TotalInvalid = %d, want 60", s.TotalInvalid)
	}
	if s.MessyInvalid != 15 {
		t.Fatalf("MessyInvalid = %d, want 15", s.MessyInvalid)
	}
	if s.CleanInvalid != 45 {
		t.Fatalf("CleanInvalid = %d, want 45", s.CleanInvalid)
	}
	if s.TotalPct != 100.0 || s.MessyPct != 10.0 || s.CleanPct != 90.0 {
		t.Fatalf("data pcts: %v/%v/%v", s.TotalPct, s.MessyPct, s.CleanPct)
	}
	if s.MessyInvalidPct != 25.0 || s.CleanInvalidPct != 75.0 {
		t.Fatalf("param pcts: %v/%v", s.MessyInvalidPct, s.CleanInvalidPct)
	}
	if s.RunID == "" {
		t.Fatal("missing run ID")
	}
}

func TestSummarizeFieldCountsAndOrder(t *testing.T) {
	messy := append(
		messyWith(2, validate.FieldKKNo),
		messyWith(1, validate.FieldTempatLahir, validate.FieldTanggalLahir)...,
	)
	s := Summarize(messy, nil, 3)

	wantLabels := []string{"Invalid KK", "Invalid NIK", "Invalid Name", "Invalid Gender", "Invalid Places", "Invalid Date"}
	wantCounts := []int{2, 0, 0, 0, 1, 1}
	if len(s.Fields) != len(wantLabels) {
		t.Fatalf("expected %d field stats, got %d", len(wantLabels), len(s.Fields))
	}
	for i := range wantLabels {
		if s.Fields[i].Label != wantLabels[i] {
			t.Fatalf("field %d: label %q, want %q", i, s.Fields[i].Label, wantLabels[i])
		}
		if s.Fields[i].Count != wantCounts[i] {
			t.Fatalf("field %d: count %d, want %d", i, s.Fields[i].Count, wantCounts[i])
		}
	}
}

func TestSummarizeZeroRows(t *testing.T) {
	s := Summarize(nil, nil, 0)
	if s.Total != 0 || s.TotalInvalid != 0 {
		t.Fatalf("expected zero counts, got total=%d invalid=%d", s.Total, s.TotalInvalid)
	}
	if s.TotalPct != 0 || s.MessyPct != 0 || s.CleanPct != 0 ||
		s.TotalInvalidPct != 0 || s.MessyInvalidPct != 0 || s.CleanInvalidPct != 0 {
		t.Fatal("expected all percentages zero, not an arithmetic fault")
	}
}

func TestSummarizeZeroMessy(t *testing.T) {
	s := Summarize(nil, cleanRows(50), 50)
	if s.TotalInvalid != 0 {
		t.Fatalf("TotalInvalid = %d, want 0", s.TotalInvalid)
	}
	if s.TotalInvalidPct != 0 || s.MessyInvalidPct != 0 || s.CleanInvalidPct != 0 {
		t.Fatal("parameter percentages must be 0 when no messy rows")
	}
	for _, f := range s.Fields {
		if f.Pct != 0 {
			t.Fatalf("%s: pct %v, want 0", f.Label, f.Pct)
		}
	}
	if s.CleanPct != 100.0 {
		t.Fatalf("CleanPct = %v, want 100", s.CleanPct)
	}
}

func TestPercentageRounding(t *testing.T) {
	// 1/3 of rows messy: repeating decimal rounds to two places.
	s := Summarize(messyWith(1, validate.FieldKKNo), cleanRows(2), 3)
	if s.MessyPct != 33.33 {
		t.Fatalf("MessyPct = %v, want 33.33", s.MessyPct)
	}
	if s.CleanPct != 66.67 {
		t.Fatalf("CleanPct = %v, want 66.67", s.CleanPct)
	}
}

func TestTextLayout(t *testing.T) {
	messy := append(
		messyWith(5, validate.FieldKKNo, validate.FieldNIK),
		messyWith(5, validate.FieldTanggalLahir)...,
	)
	s := Summarize(messy, cleanRows(90), 100)
	got := s.Text()

	want := strings.Join([]string{
		"------------------------------",
		"       SUMMARY INFO",
		"------------------------------",
		"Total Data: 100",
		"Total Data %: 100.0",
		"Messy Data: 10",
		"Messy Data %: 10.0",
		"Clean Data: 90",
		"Clean Data %: 90.0",
		"------------------------------",
		"       INVALID INFO",
		"------------------------------",
		"Invalid Parameter: 60",
		"Invalid Parameter %: 100.0",
		"Clean Parameter: 45",
		"Clean Parameter %: 75.0",
		"Messy Parameter: 15",
		"Messy Parameter %: 25.0",
		"Invalid KK: 5",
		"Invalid KK %: 8.33",
		"Invalid NIK: 5",
		"Invalid NIK %: 8.33",
		"Invalid Name: 0",
		"Invalid Name %: 0.0",
		"Invalid Gender: 0",
		"Invalid Gender %: 0.0",
		"Invalid Places: 0",
		"Invalid Places %: 0.0",
		"Invalid Date: 5",
		"Invalid Date %: 8.33",
		"------------------------------",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("text block mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatPct(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{100, "100.0"},
		{0, "0.0"},
		{33.33, "33.33"},
		{10, "10.0"},
		{8.5, "8.5"},
	}
	for _, c := range cases {
		if got := formatPct(c.in); got != c.want {
			t.Fatalf("formatPct(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDashboard(t *testing.T) {
	messy := messyWith(3, validate.FieldTempatLahir)
	s := Summarize(messy, cleanRows(7), 10)
	out := s.Dashboard()
	for _, want := range []string{"Total Records", "Clean Records", "Messy Records", "Invalid Data Breakdown", "Invalid Places", "Key Findings", s.RunID} {
		if !strings.Contains(out, want) {
			t.Fatalf("dashboard missing %q:\n%s", want, out)
		}
	}
}

func TestDashboardNoMessyRows(t *testing.T) {
	s := Summarize(nil, cleanRows(4), 4)
	out := s.Dashboard()
	if strings.Contains(out, "Key Findings") {
		t.Fatal("no key findings expected when nothing is invalid")
	}
}
