package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kerjamatch/kerjamatch/internal/domain"
)

// LoadJSON reads an array of flat objects and maps each to a document.
// Numeric field values are accepted as JSON numbers or strings.
func LoadJSON(path string, m Mapping) ([]domain.Document, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	docs := make([]domain.Document, 0, len(records))
	for _, rec := range records {
		docs = append(docs, m.fromRecord(func(field string) (string, bool) {
			if field == "" {
				return "", false
			}
			v, ok := rec[field]
			if !ok || v == nil {
				return "", false
			}
			switch t := v.(type) {
			case string:
				return t, true
			case float64:
				if t == float64(int64(t)) {
					return fmt.Sprintf("%d", int64(t)), true
				}
				return fmt.Sprintf("%g", t), true
			case bool:
				return fmt.Sprintf("%t", t), true
			default:
				return fmt.Sprintf("%v", t), true
			}
		}))
	}
	return docs, nil
}

// Load picks a loader from the file extension: .json or .csv.
func Load(path string, m Mapping) ([]domain.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path, m)
	case ".csv":
		return LoadCSV(path, m)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (want .json or .csv)", filepath.Ext(path))
	}
}
