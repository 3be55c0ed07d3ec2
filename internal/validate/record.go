// Package validate classifies civil-registry records against the fixed
// field-level rule set and partitions them into clean and messy subsets.
package validate

import "time"

// Field identifies one validated input column.
type Field string

const (
	FieldKKNo         Field = "KK_NO"
	FieldNIK          Field = "NIK"
	FieldCustName     Field = "CUSTNAME"
	FieldJenisKelamin Field = "JENIS_KELAMIN"
	FieldTempatLahir  Field = "TEMPAT_LAHIR"
	FieldTanggalLahir Field = "TANGGAL_LAHIR"
)

// BirthDate is a birth-date cell normalized at ingestion to one internal
// representation. Parsed is false for cells that held neither a DD/MM/YYYY
// string nor a structured date value; Raw always keeps the original cell
// text for diagnostics and report output.
type BirthDate struct {
	Raw    string
	Time   time.Time
	Parsed bool
}

// Record is one input row. All fields arrive as cell text; only the birth
// date gets a structured form, assigned during ingestion.
type Record struct {
	KKNo         string
	NIK          string
	CustName     string
	JenisKelamin string
	TempatLahir  string
	TanggalLahir BirthDate
}

// Classified is a Record plus its classification outcome. Violations holds
// the failing fields in rule order; CheckDesc is the human-readable
// diagnostic rendered from them. An empty Violations slice means the record
// is clean and CheckDesc is empty.
type Classified struct {
	Record
	Violations []Field
	CheckDesc  string
}

// Clean reports whether the record passed every rule.
func (c Classified) Clean() bool { return len(c.Violations) == 0 }

// HasViolation reports whether the given field failed its rule.
func (c Classified) HasViolation(f Field) bool {
	for _, v := range c.Violations {
		if v == f {
			return true
		}
	}
	return false
}
