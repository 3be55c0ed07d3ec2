package validate

import (
	"testing"
	"time"

	"github.com/TirtaBytes/nikcheck/internal/refdata"
)

func TestValidIDNumber(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"1234567890123456", true},
		{"123456789012345", false},   // 15 digits
		{"12345678901234567", false}, // 17 digits
		{"1234567890120000", false},  // ends 0000
		{"123456789012345X", false},  // non-digit
		{"", false},
	}
	for _, c := range cases {
		if got := validIDNumber(c.value); got != c.want {
			t.Fatalf("validIDNumber(%q) = %t, want %t", c.value, got, c.want)
		}
	}
}

func TestValidName(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"Budi Santoso", true},
		{"Budi123", false},
		{"O'Brien", true}, // punctuation passes: the rule excludes digits only
		{"Ke-2 Anak", false},
		{"", true},
	}
	for _, c := range cases {
		if got := validName(c.value); got != c.want {
			t.Fatalf("validName(%q) = %t, want %t", c.value, got, c.want)
		}
	}
}

func TestValidGender(t *testing.T) {
	for _, v := range ValidGenders {
		if !validGender(v) {
			t.Fatalf("expected %q valid", v)
		}
	}
	for _, v := range []string{"Laki-laki", "laki-laki", "MALE", "PEREMPUAN ", ""} {
		if validGender(v) {
			t.Fatalf("expected %q invalid", v)
		}
	}
}

func TestValidBirthDate(t *testing.T) {
	today := time.Date(2026, time.August, 31, 15, 4, 5, 0, time.UTC)
	cases := []struct {
		name string
		d    BirthDate
		want bool
	}{
		{"past", BirthDate{Raw: "01/01/2000", Time: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), Parsed: true}, true},
		{"today", BirthDate{Raw: "31/08/2026", Time: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), Parsed: true}, true},
		{"tomorrow", BirthDate{Raw: "01/09/2026", Time: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), Parsed: true}, false},
		{"unparsed", BirthDate{Raw: "2000-01-01"}, false},
		{"empty", BirthDate{}, false},
	}
	for _, c := range cases {
		if got := validBirthDate(c.d, today); got != c.want {
			t.Fatalf("%s: validBirthDate = %t, want %t", c.name, got, c.want)
		}
	}
}

func TestBirthPlaceRule(t *testing.T) {
	cities := refdata.BuildCitySet([]string{"Kota Jakarta", "Kabupaten Bandung"})
	env := ruleEnv{cities: cities, today: time.Now()}
	var placeRule Rule
	for _, ru := range rules {
		if ru.Field == FieldTempatLahir {
			placeRule = ru
		}
	}
	for _, v := range []string{"JAKARTA", "Jakarta", "bandung"} {
		if !placeRule.valid(&Record{TempatLahir: v}, env) {
			t.Fatalf("expected birth place %q valid", v)
		}
	}
	if placeRule.valid(&Record{TempatLahir: "Surabaya"}, env) {
		t.Fatal("Surabaya is not in the reference set")
	}
}

func TestIDClauseReportsDerivedFacts(t *testing.T) {
	got := idClause("Invalid KK_NO", "12AB")
	want := "Invalid KK_NO (length: 4, digits only: false, last_digits: 12AB); "
	if got != want {
		t.Fatalf("clause mismatch:\n got %q\nwant %q", got, want)
	}

	got = idClause("Invalid NIK", "1234567890120000")
	want = "Invalid NIK (length: 16, digits only: true, last_digits: 0000); "
	if got != want {
		t.Fatalf("clause mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestRulesOrderFixed(t *testing.T) {
	want := []Field{FieldKKNo, FieldNIK, FieldCustName, FieldJenisKelamin, FieldTempatLahir, FieldTanggalLahir}
	got := Rules()
	if len(got) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(got))
	}
	for i, f := range want {
		if got[i].Field != f {
			t.Fatalf("rule %d: expected %s, got %s", i, f, got[i].Field)
		}
	}
}
