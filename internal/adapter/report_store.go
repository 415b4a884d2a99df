package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mendoc-dev/mendoc/internal/model"
)

// ReportStore persists and retrieves fix run reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.RunReport) error
	LoadReports(dir m.Path) ([]m.RunReport, error)
}

// LocalReportStore stores each run as one YAML file named by its run ID.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReport writes the report into dir, creating the directory when
// missing. Runs that touched no files are not persisted.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.RunReport) error {
	if dir == "" {
		return fmt.Errorf("reports directory path is required")
	}

	if len(report.Files) == 0 {
		return nil
	}

	if report.ID == "" {
		return fmt.Errorf("report is missing a run ID")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(string(dir), report.ID+".yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// LoadReports reads every stored run from dir, oldest first. A missing
// directory yields no reports rather than an error.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.RunReport, error) {
	if dir == "" {
		return nil, fmt.Errorf("reports directory path is required")
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read reports directory: %w", err)
	}

	var reports []m.RunReport

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(string(dir), entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s: %w", entry.Name(), err)
		}

		var report m.RunReport
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", entry.Name(), err)
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].StartedAt.Before(reports[j].StartedAt)
	})

	return reports, nil
}
