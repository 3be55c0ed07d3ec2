package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cities.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestReadCityListWithHeader(t *testing.T) {
	path := writeCSV(t, "CITY_ID,CITY_DESC\n1,Kota Jakarta\n2,Kabupaten Bandung\n")
	got, err := ReadCityList(path)
	if err != nil {
		t.Fatalf("ReadCityList: %v", err)
	}
	if len(got) != 2 || got[0] != "Kota Jakarta" || got[1] != "Kabupaten Bandung" {
		t.Fatalf("unexpected entries: %v", got)
	}
}

func TestReadCityListHeaderless(t *testing.T) {
	path := writeCSV(t, "Kota Jakarta\nKabupaten Bandung\nSurabaya\n")
	got, err := ReadCityList(path)
	if err != nil {
		t.Fatalf("ReadCityList: %v", err)
	}
	// no CITY_DESC header, so every row including the first is data
	if len(got) != 3 || got[0] != "Kota Jakarta" || got[2] != "Surabaya" {
		t.Fatalf("unexpected entries: %v", got)
	}
}

func TestReadCityListSkipsBlankEntries(t *testing.T) {
	path := writeCSV(t, "CITY_DESC\nJakarta\n\n  \nBandung\n")
	got, err := ReadCityList(path)
	if err != nil {
		t.Fatalf("ReadCityList: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %v", got)
	}
}

func TestReadCityListMissingFile(t *testing.T) {
	if _, err := ReadCityList(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
