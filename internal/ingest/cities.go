package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

const cityColumn = "CITY_DESC"

// ReadCityList reads the city reference list from a CSV file. Two layouts
// are accepted: a table with a CITY_DESC column, or a headerless list
// whose first column holds the names. Entries come back raw; normalization
// belongs to refdata.
func ReadCityList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open city list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read city list: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// A CITY_DESC header selects that column; otherwise every row,
	// including the first, is data from column one.
	col := -1
	for i, h := range rows[0] {
		if strings.TrimSpace(h) == cityColumn {
			col = i
			break
		}
	}
	start := 0
	if col >= 0 {
		start = 1
	} else {
		col = 0
	}

	var out []string
	for _, row := range rows[start:] {
		if col >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[col]); v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}
