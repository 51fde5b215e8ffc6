package adapter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	m "bitrot.dev/pkg/bitrot/internal/model"
)

// ReportStore persists fixture reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.FixtureReport) error
	LoadReports(path m.Path) ([]m.FixtureReport, error)
}

type yamlReportStore struct {
	files FileAdapter
}

// NewReportStore returns a ReportStore that writes YAML through files.
func NewReportStore(files FileAdapter) ReportStore {
	return &yamlReportStore{files: files}
}

func (s *yamlReportStore) SaveReports(path m.Path, reports []m.FixtureReport) error {
	data, err := yaml.Marshal(reports)
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	if err := s.files.WriteFile(path, data); err != nil {
		return fmt.Errorf("write reports %s: %w", path, err)
	}

	return nil
}

func (s *yamlReportStore) LoadReports(path m.Path) ([]m.FixtureReport, error) {
	data, err := s.files.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reports %s: %w", path, err)
	}

	var reports []m.FixtureReport
	if err := yaml.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("decode reports %s: %w", path, err)
	}

	return reports, nil
}
