// Package dataset loads document records from JSON and CSV files. Field
// names are injected per dataset so one loader serves every generation of
// the upstream spreadsheets, whatever their column names drifted to.
package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kerjamatch/kerjamatch/internal/domain"
)

// Mapping names the record fields a loader should read. Empty entries are
// simply not read.
type Mapping struct {
	Name          string `yaml:"name"`
	Text          string `yaml:"text"`
	Company       string `yaml:"company"`
	Vacancies     string `yaml:"vacancies"`
	Graduates     string `yaml:"graduates"`
	Placed        string `yaml:"placed"`
	PlacementRate string `yaml:"placement_rate"`
}

// TrainingMapping matches the training-program dataset columns.
func TrainingMapping() Mapping {
	return Mapping{
		Name: "PROGRAM PELATIHAN",
		Text: "Tujuan/Kompetensi",
	}
}

// JobMapping matches the job-posting dataset columns.
func JobMapping() Mapping {
	return Mapping{
		Name:      "Nama Jabatan (Sumber Perusahaan)",
		Text:      "Deskripsi KBJI",
		Company:   "NAMA PERUSAHAAN",
		Vacancies: "Perkiraan Lowongan",
	}
}

// RealizationMapping matches the realization/placement dataset columns.
// Realization records carry no description; the program name doubles as
// the match text.
func RealizationMapping() Mapping {
	return Mapping{
		Name:          "Program Pelatihan",
		Graduates:     "Jumlah Peserta",
		Placed:        "Penempatan",
		PlacementRate: "% Penempatan",
	}
}

// ForRole returns the stock mapping of a corpus role.
func ForRole(role domain.Role) (Mapping, error) {
	switch role {
	case domain.RoleTraining:
		return TrainingMapping(), nil
	case domain.RoleJob:
		return JobMapping(), nil
	case domain.RoleRealization:
		return RealizationMapping(), nil
	default:
		return Mapping{}, fmt.Errorf("unknown corpus role %q", role)
	}
}

// fromRecord builds one document out of a field-name → value lookup.
func (m Mapping) fromRecord(get func(field string) (string, bool)) domain.Document {
	doc := domain.Document{}
	if v, ok := get(m.Name); ok {
		doc.Name = strings.TrimSpace(v)
	}
	if v, ok := get(m.Text); ok {
		doc.SourceText = strings.TrimSpace(v)
	}
	if v, ok := get(m.Company); ok {
		doc.Company = strings.TrimSpace(v)
	}
	if v, ok := get(m.Vacancies); ok {
		doc.Vacancies = atoiLoose(v)
	}
	if v, ok := get(m.Graduates); ok {
		doc.Graduates = atoiLoose(v)
	}
	if v, ok := get(m.Placed); ok {
		doc.Placed = atoiLoose(v)
	}
	if v, ok := get(m.PlacementRate); ok {
		doc.PlacementRate = strings.TrimSpace(v)
	}
	// Realization records match on their program name.
	if doc.SourceText == "" && m.Text == "" {
		doc.SourceText = doc.Name
	}
	return doc
}

// atoiLoose parses integers that may arrive as "12", "12.0" or blank.
func atoiLoose(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
