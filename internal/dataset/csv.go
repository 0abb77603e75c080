package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kerjamatch/kerjamatch/internal/domain"
)

// LoadCSV reads a header-row CSV file and maps each row to a document.
func LoadCSV(path string, m Mapping) ([]domain.Document, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows happen in exported spreadsheets

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s has no header row", path)
	}

	index := make(map[string]int, len(rows[0]))
	for i, col := range rows[0] {
		index[col] = i
	}

	docs := make([]domain.Document, 0, len(rows)-1)
	for _, row := range rows[1:] {
		docs = append(docs, m.fromRecord(func(field string) (string, bool) {
			if field == "" {
				return "", false
			}
			i, ok := index[field]
			if !ok || i >= len(row) {
				return "", false
			}
			return row[i], true
		}))
	}
	return docs, nil
}
