package validate

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/TirtaBytes/nikcheck/internal/refdata"
)

// ValidGenders is the accepted gender vocabulary. Matching is exact: no
// case folding, no whitespace normalization.
var ValidGenders = []string{"LAKI-LAKI", "LAKI - LAKI", "LAKI LAKI", "PEREMPUAN"}

// ruleEnv carries the per-run context predicates may consult.
type ruleEnv struct {
	cities refdata.CitySet
	today  time.Time
}

// Rule couples a field with its predicate and the diagnostic clause
// rendered when the predicate fails. Marker is the leading text of the
// clause; report aggregation groups violations under these markers, so
// they must not change.
type Rule struct {
	Field  Field
	Marker string
	valid  func(r *Record, env ruleEnv) bool
	clause func(r *Record) string
}

// Clause renders the full diagnostic clause for a failing record,
// terminated with "; ".
func (ru Rule) Clause(r *Record) string { return ru.clause(r) }

// rules is the fixed rule table, in evaluation and diagnostic order.
// Adding a field means adding an entry here; the engine and the
// aggregator never enumerate fields themselves.
var rules = []Rule{
	{
		Field:  FieldKKNo,
		Marker: "Invalid KK_NO",
		valid:  func(r *Record, _ ruleEnv) bool { return validIDNumber(r.KKNo) },
		clause: func(r *Record) string { return idClause("Invalid KK_NO", r.KKNo) },
	},
	{
		Field:  FieldNIK,
		Marker: "Invalid NIK",
		valid:  func(r *Record, _ ruleEnv) bool { return validIDNumber(r.NIK) },
		clause: func(r *Record) string { return idClause("Invalid NIK", r.NIK) },
	},
	{
		Field:  FieldCustName,
		Marker: "Invalid CUSTNAME",
		valid:  func(r *Record, _ ruleEnv) bool { return validName(r.CustName) },
		clause: func(r *Record) string {
			return fmt.Sprintf("Invalid CUSTNAME (contains special characters or digits: %s); ", r.CustName)
		},
	},
	{
		Field:  FieldJenisKelamin,
		Marker: "Invalid JENIS_KELAMIN",
		valid:  func(r *Record, _ ruleEnv) bool { return validGender(r.JenisKelamin) },
		clause: func(r *Record) string {
			return fmt.Sprintf("Invalid JENIS_KELAMIN (value: %s); ", r.JenisKelamin)
		},
	},
	{
		Field:  FieldTempatLahir,
		Marker: "Invalid TEMPAT_LAHIR",
		valid:  func(r *Record, env ruleEnv) bool { return env.cities.Contains(r.TempatLahir) },
		clause: func(r *Record) string {
			return fmt.Sprintf("Invalid TEMPAT_LAHIR (value: %s); ", r.TempatLahir)
		},
	},
	{
		Field:  FieldTanggalLahir,
		Marker: "Invalid TANGGAL_LAHIR",
		valid:  func(r *Record, env ruleEnv) bool { return validBirthDate(r.TanggalLahir, env.today) },
		clause: func(r *Record) string {
			return fmt.Sprintf("Invalid TANGGAL_LAHIR (value: %s, expected format DD/MM/YYYY); ", r.TanggalLahir.Raw)
		},
	},
}

// Rules returns the rule table in evaluation order.
func Rules() []Rule { return rules }

// FieldCount is the number of validated fields per record.
func FieldCount() int { return len(rules) }

// validIDNumber accepts 16-digit numeric strings whose trailing four
// characters are not "0000". Shared by the KK number and NIK rules.
func validIDNumber(v string) bool {
	return allDigits(v) && utf8.RuneCountInString(v) == 16 && !strings.HasSuffix(v, "0000")
}

// validName rejects names containing any digit rune. Punctuation and
// non-Latin letters pass: despite what the clause text suggests, the rule
// has always been digits-only, not alphabetic-only, and consumers depend
// on names like O'Brien being accepted.
func validName(v string) bool {
	for _, c := range v {
		if unicode.IsDigit(c) {
			return false
		}
	}
	return true
}

func validGender(v string) bool {
	for _, g := range ValidGenders {
		if v == g {
			return true
		}
	}
	return false
}

// validBirthDate accepts any normalized date not after today. Unparseable
// cells fail here rather than at ingestion.
func validBirthDate(d BirthDate, today time.Time) bool {
	if !d.Parsed {
		return false
	}
	y, m, day := d.Time.Date()
	ty, tm, td := today.Date()
	cell := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	limit := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return !cell.After(limit)
}

func allDigits(v string) bool {
	if v == "" {
		return false
	}
	for _, c := range v {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}

// idClause reports the three derived facts for a failing identifier, even
// when the value is short or non-numeric.
func idClause(marker, v string) string {
	return fmt.Sprintf("%s (length: %d, digits only: %t, last_digits: %s); ",
		marker, utf8.RuneCountInString(v), allDigits(v), lastDigits(v))
}

// lastDigits returns the trailing four characters, or the whole value when
// shorter.
func lastDigits(v string) string {
	r := []rune(v)
	if len(r) <= 4 {
		return v
	}
	return string(r[len(r)-4:])
}
