package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	apperrors "github.com/BonkerMcBonkerson/Professional-Portfolio/internal/errors"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func sampleRows() []domain.AggregateRow {
	return []domain.AggregateRow{
		{GroupKey: "Computing or Tech", MeanIncome: 130000, Count: 1},
		{GroupKey: "Law", MeanIncome: 70000, Count: 2},
		{GroupKey: "Nonprofits", MeanIncome: 2000, Count: 1},
	}
}

func TestLabelsFor(t *testing.T) {
	assert.Equal(t, "Mean annual income by industry", LabelsFor(domain.FieldIndustry).Title)
	assert.Equal(t, "Industry", LabelsFor(domain.FieldIndustry).YLabel)
	assert.Contains(t, LabelsFor(domain.FieldExpGeneral).Title, "experience")

	age := LabelsFor(domain.FieldAgeRange)
	assert.Equal(t, "Mean annual income by age range", age.Title)
	assert.Equal(t, "Age range", age.YLabel)
}

func TestBarChartRenderer_Render(t *testing.T) {
	var r Renderer = BarChartRenderer{}

	chart, err := r.Render(sampleRows(), LabelsFor(domain.FieldIndustry))
	require.NoError(t, err)

	assert.Equal(t, []Bar{
		{Label: "Computing or Tech", Value: 130000},
		{Label: "Law", Value: 70000},
		{Label: "Nonprofits", Value: 2000},
	}, chart.Bars)
	assert.Equal(t, "Industry", chart.Labels.YLabel)
}

func TestChart_PlotPutsLargestOnTop(t *testing.T) {
	chart, err := BarChartRenderer{}.Render(sampleRows(), LabelsFor(domain.FieldIndustry))
	require.NoError(t, err)

	p, err := chart.Plot(6 * vg.Inch)
	require.NoError(t, err)

	// nominal ticks run bottom to top
	ticks := p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max)
	var labels []string
	for _, tick := range ticks {
		if tick.Label != "" {
			labels = append(labels, tick.Label)
		}
	}
	assert.Equal(t, []string{"Nonprofits", "Law", "Computing or Tech"}, labels)
}

func TestChart_WritePNG(t *testing.T) {
	chart, err := BarChartRenderer{}.Render(sampleRows(), LabelsFor(domain.FieldIndustry))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, chart.WritePNG(&buf, 10*vg.Inch, 6*vg.Inch))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestChart_WritePNG_Empty(t *testing.T) {
	chart, err := BarChartRenderer{}.Render(nil, LabelsFor(domain.FieldExpGeneral))
	require.NoError(t, err)
	assert.Empty(t, chart.Bars)

	var buf bytes.Buffer
	require.NoError(t, chart.WritePNG(&buf, 4*vg.Inch, 3*vg.Inch))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestChart_SavePNG(t *testing.T) {
	chart, err := BarChartRenderer{}.Render(sampleRows(), LabelsFor(domain.FieldIndustry))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "income_by_industry.png")
	require.NoError(t, chart.SavePNG(path, 10*vg.Inch, 6*vg.Inch))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))

	err = chart.SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), vg.Inch, vg.Inch)
	require.Error(t, err)
	assert.True(t, apperrors.IsIOError(err))
}

func TestBarWidth(t *testing.T) {
	assert.Equal(t, vg.Points(40), barWidth(6*vg.Inch, 1))
	assert.Equal(t, vg.Points(1), barWidth(vg.Inch, 10000))
	assert.InDelta(t, float64(6*vg.Inch*0.6/31), float64(barWidth(6*vg.Inch, 31)), 1e-9)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, domain.Summary{GroupBy: domain.FieldIndustry, Rows: sampleRows()}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Mean annual income by industry", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Industry"))
	assert.Contains(t, lines[2], "Computing or Tech")
	assert.Contains(t, lines[2], "130,000.00")
	assert.Contains(t, lines[3], "70,000.00")

	// columns line up
	assert.Equal(t, strings.Index(lines[2], "130,000.00"), strings.Index(lines[3], "70,000.00"))
}

func TestWriteTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, domain.Summary{GroupBy: domain.FieldExpGeneral}))
	assert.Contains(t, buf.String(), "(no responses)")
}

func TestFormatIncome(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{999, "999.00"},
		{1000, "1,000.00"},
		{80000, "80,000.00"},
		{1234567.891, "1,234,567.89"},
		{-2500.5, "-2,500.50"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatIncome(tt.in))
		})
	}
}
