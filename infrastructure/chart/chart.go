// Package chart renders the per-category mismatch counts as a bar chart.
package chart

import (
	"fmt"
	"os"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/rios0rios0/diffprobe/domain"
)

const (
	chartHeight = 512
	barWidth    = 80
	topPadding  = 40
)

// Renderer draws bar charts as PNG files.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

var _ domain.ChartRenderer = (*Renderer)(nil)

// Render writes a bar chart of the given counts to path. At least one count
// must be positive; callers skip rendering for all-zero results.
func (r *Renderer) Render(path string, counts []domain.CategoryCount) error {
	bars := make([]gochart.Value, 0, len(counts))
	for _, count := range counts {
		bars = append(bars, gochart.Value{
			Label: count.Name,
			Value: float64(count.Count),
		})
	}

	graph := gochart.BarChart{
		Title:      "Mismatch Statistics by File Type",
		Background: gochart.Style{Padding: gochart.Box{Top: topPadding}},
		Height:     chartHeight,
		BarWidth:   barWidth,
		YAxis: gochart.YAxis{
			Name: "Number of Mismatches",
		},
		Bars: bars,
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file %q: %w", path, err)
	}
	defer file.Close()

	if renderErr := graph.Render(gochart.PNG, file); renderErr != nil {
		return fmt.Errorf("failed to render chart: %w", renderErr)
	}
	return nil
}
