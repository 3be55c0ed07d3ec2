package refdata

import "testing"

func TestBuildCitySetStripsPrefixes(t *testing.T) {
	set := BuildCitySet([]string{"Kota Jakarta", "Kabupaten Bandung", "Kab Bekasi", "  Surabaya  "})
	for _, want := range []string{"JAKARTA", "BANDUNG", "BEKASI", "SURABAYA"} {
		if !set.Contains(want) {
			t.Fatalf("expected %s in set", want)
		}
	}
	if set.Contains("KOTA JAKARTA") {
		t.Fatal("prefix should have been stripped before storing")
	}
}

func TestBuildCitySetCollapsesDuplicates(t *testing.T) {
	set := BuildCitySet([]string{"Kota Jakarta", "JAKARTA", "jakarta"})
	// "jakarta" upper-cases to the same entry; "Kota Jakarta" strips to it.
	if len(set) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(set))
	}
}

func TestContainsIsCaseInsensitive(t *testing.T) {
	set := BuildCitySet([]string{"Kota Jakarta"})
	for _, probe := range []string{"JAKARTA", "Jakarta", "jakarta"} {
		if !set.Contains(probe) {
			t.Fatalf("expected %q to match", probe)
		}
	}
	if set.Contains("Surabaya") {
		t.Fatal("Surabaya should not match")
	}
}

func TestPrefixMatchIsCaseSensitive(t *testing.T) {
	// "KOTA " is not one of the literal prefixes, so it stays.
	set := BuildCitySet([]string{"KOTA Malang"})
	if set.Contains("MALANG") {
		t.Fatal("upper-case prefix should not be stripped")
	}
	if !set.Contains("KOTA MALANG") {
		t.Fatal("entry should be stored with the unstripped prefix")
	}
}

func TestWithDefaults(t *testing.T) {
	set := BuildCitySet([]string{"Kota Depok"}).WithDefaults()
	if !set.Contains("DEPOK") {
		t.Fatal("original entry lost")
	}
	if !set.Contains("JAKARTA") || !set.Contains("ACEH BARAT") {
		t.Fatal("default cities missing")
	}
}

func TestEmptyInput(t *testing.T) {
	set := BuildCitySet(nil)
	if len(set) != 0 {
		t.Fatalf("expected empty set, got %d entries", len(set))
	}
	if set.Contains("JAKARTA") {
		t.Fatal("empty set should match nothing")
	}
}
