// Package report turns aggregate summaries into human-readable artifacts:
// horizontal bar charts rendered with gonum/plot and aligned text tables.
package report

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	apperrors "github.com/BonkerMcBonkerson/Professional-Portfolio/internal/errors"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

var barColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}

// Labels are the title and axis captions of a chart.
type Labels struct {
	Title  string
	XLabel string
	YLabel string
}

// LabelsFor returns the captions used for the summary grouped by field.
func LabelsFor(field domain.Field) Labels {
	switch field {
	case domain.FieldIndustry:
		return Labels{
			Title:  "Mean annual income by industry",
			XLabel: "Mean annual income",
			YLabel: "Industry",
		}
	case domain.FieldExpGeneral:
		return Labels{
			Title:  "Mean annual income by years of experience",
			XLabel: "Mean annual income",
			YLabel: "Years of professional experience",
		}
	default:
		name := strings.ReplaceAll(field.String(), "_", " ")
		if name == "" {
			name = "group"
		}
		return Labels{
			Title:  "Mean annual income by " + name,
			XLabel: "Mean annual income",
			YLabel: strings.ToUpper(name[:1]) + name[1:],
		}
	}
}

// Bar is one labelled bar of a chart.
type Bar struct {
	Label string
	Value float64
}

// Chart is a rendered-but-not-drawn bar chart. Bars are in summary order,
// largest first.
type Chart struct {
	Labels Labels
	Bars   []Bar
}

// Renderer turns a summary into a chart.
type Renderer interface {
	Render(rows []domain.AggregateRow, labels Labels) (*Chart, error)
}

// BarChartRenderer renders one bar per aggregate row.
type BarChartRenderer struct{}

// Render implements Renderer. An empty summary yields a chart with no bars.
func (BarChartRenderer) Render(rows []domain.AggregateRow, labels Labels) (*Chart, error) {
	bars := make([]Bar, len(rows))
	for i, r := range rows {
		bars[i] = Bar{Label: r.GroupKey, Value: r.MeanIncome}
	}
	return &Chart{Labels: labels, Bars: bars}, nil
}

// Plot lays the chart out as a horizontal bar plot sized for a canvas of the
// given height. The first bar is drawn at the top.
func (c *Chart) Plot(height vg.Length) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Labels.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = c.Labels.XLabel
	p.Y.Label.Text = c.Labels.YLabel

	if len(c.Bars) == 0 {
		return p, nil
	}

	n := len(c.Bars)
	values := make(plotter.Values, n)
	names := make([]string, n)
	for i, b := range c.Bars {
		values[n-1-i] = b.Value
		names[n-1-i] = b.Label
	}

	bars, err := plotter.NewBarChart(values, barWidth(height, n))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalY(names...)

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	p.Add(grid)

	return p, nil
}

// WritePNG draws the chart as a PNG of the given size.
func (c *Chart) WritePNG(w io.Writer, width, height vg.Length) error {
	p, err := c.Plot(height)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("failed to draw chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

// SavePNG draws the chart into the file at path.
func (c *Chart) SavePNG(path string, width, height vg.Length) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.NewIOError(fmt.Sprintf("cannot create chart %s", path), err)
	}

	if err := c.WritePNG(f, width, height); err != nil {
		f.Close()
		return apperrors.NewIOError(fmt.Sprintf("cannot write chart %s", path), err)
	}
	if err := f.Close(); err != nil {
		return apperrors.NewIOError(fmt.Sprintf("cannot close chart %s", path), err)
	}
	return nil
}

// barWidth spreads n bars over most of the plotting height.
func barWidth(height vg.Length, n int) vg.Length {
	w := height * 0.6 / vg.Length(n)
	if w < vg.Points(1) {
		return vg.Points(1)
	}
	if w > vg.Points(40) {
		return vg.Points(40)
	}
	return w
}
