package application

import (
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/diffprobe/config"
	"github.com/rios0rios0/diffprobe/domain"
)

// ReportService aggregates the persisted dataset into per-category
// mismatch counts and renders them as a bar chart.
type ReportService struct {
	reader   domain.RecordReader
	renderer domain.ChartRenderer
}

// NewReportService creates a ReportService.
func NewReportService(reader domain.RecordReader, renderer domain.ChartRenderer) *ReportService {
	return &ReportService{reader: reader, renderer: renderer}
}

// Run loads the dataset, counts discrepant rows per category, logs the
// counts, and renders the chart. A dataset read failure is fatal. When
// every count is zero the chart is skipped.
func (s *ReportService) Run(cfg *config.Config) error {
	records, err := s.reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	counts := domain.CountByCategory(records)

	logger.Info("Mismatch counts:")
	total := 0
	for _, count := range counts {
		logger.Infof("%s: %d", count.Name, count.Count)
		total += count.Count
	}

	if total == 0 {
		logger.Info("No mismatches found, chart skipped")
		return nil
	}

	if renderErr := s.renderer.Render(cfg.Chart, counts); renderErr != nil {
		return fmt.Errorf("failed to render chart: %w", renderErr)
	}
	logger.Infof("Chart saved to %s", cfg.Chart)
	return nil
}
