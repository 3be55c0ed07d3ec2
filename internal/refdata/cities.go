// Package refdata builds the city reference set consulted by the
// birth-place validation rule. The set is built once per run from an
// externally supplied list and is read-only afterwards.
package refdata

import "strings"

// CitySet is a set of normalized (uppercase, prefix-stripped) city names.
type CitySet map[string]struct{}

// adminPrefixes are administrative prefixes stripped from raw entries.
// Matching is case-sensitive and removes the first occurrence only.
var adminPrefixes = []string{"Kota ", "Kabupaten ", "Kab "}

// Normalize turns one raw city entry into its canonical lookup form.
func Normalize(name string) string {
	for _, p := range adminPrefixes {
		name = strings.Replace(name, p, "", 1)
	}
	return strings.ToUpper(strings.TrimSpace(name))
}

// BuildCitySet normalizes raw entries and collapses duplicates.
// An empty input yields an empty set; downstream birth-place checks then
// fail every row, which is the intended degradation rather than an error.
func BuildCitySet(raw []string) CitySet {
	s := make(CitySet, len(raw))
	for _, name := range raw {
		n := Normalize(name)
		if n == "" {
			continue
		}
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name (any case) is in the set. The probe is
// upper-cased but not prefix-stripped: input birth places are expected to
// carry the bare city name already.
func (s CitySet) Contains(name string) bool {
	_, ok := s[strings.ToUpper(name)]
	return ok
}

// WithDefaults returns a copy of the set unioned with the built-in
// supplementary list.
func (s CitySet) WithDefaults() CitySet {
	out := make(CitySet, len(s)+len(DefaultCities))
	for k := range s {
		out[k] = struct{}{}
	}
	for _, name := range DefaultCities {
		out[Normalize(name)] = struct{}{}
	}
	return out
}

// Names returns the set entries in unspecified order.
func (s CitySet) Names() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}

// DefaultCities is the fixed supplementary list callers may union in when
// the uploaded reference list is known to be incomplete.
var DefaultCities = []string{
	"ACEH BARAT", "ACEH BESAR", "ACEH TAMIANG", "ACEH TIMUR", "ACEH",
	"JAKARTA", "BANDUNG", "SURABAYA", "MEDAN", "MAKASSAR",
	"SEMARANG", "PALEMBANG", "YOGYAKARTA", "DENPASAR", "BALIKPAPAN",
	"PONTIANAK", "BANJARMASIN", "MANADO", "PADANG", "PEKANBARU",
}
