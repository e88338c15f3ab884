package operations

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gonum.org/v1/plot/vg"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/aggregate"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/config"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/exporter"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/infrastructure"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/loader"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/normalize"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/report"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/validation"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// Step identifiers
const (
	StepIDLoad      = "load"
	StepIDNormalize = "normalize"
	StepIDAggregate = "aggregate"
	StepIDOutput    = "output"
	StepIDChart     = "chart"
	StepIDTable     = "table"
	StepIDExport    = "export"
)

// Step names
const (
	StepNameLoad      = "Load Survey Export"
	StepNameNormalize = "Normalize Responses"
	StepNameAggregate = "Aggregate Income"
	StepNameOutput    = "Prepare Output Directory"
	StepNameChart     = "Render Charts"
	StepNameTable     = "Write Tables"
	StepNameExport    = "Export Summaries"
)

// LoadStep reads the survey export into state.Raw
type LoadStep struct {
	BaseStage
	loader *loader.Loader
}

// NewLoadStep creates the load Step
func NewLoadStep(l *loader.Loader) *LoadStep {
	return &LoadStep{
		BaseStage: NewBaseStage(StepIDLoad, StepNameLoad),
		loader:    l,
	}
}

// Execute implements Step
func (s *LoadStep) Execute(ctx context.Context, state *RunState) error {
	raw, err := s.loader.Load(ctx, state.Source)
	if err != nil {
		return err
	}
	state.Raw = raw
	return nil
}

// NormalizeStep cleans state.Raw into state.Records
type NormalizeStep struct {
	BaseStage
	normalizer *normalize.Normalizer
	metrics    *infrastructure.PipelineMetrics
}

// NewNormalizeStep creates the normalize Step
func NewNormalizeStep(n *normalize.Normalizer, metrics *infrastructure.PipelineMetrics) *NormalizeStep {
	return &NormalizeStep{
		BaseStage:  NewBaseStage(StepIDNormalize, StepNameNormalize),
		normalizer: n,
		metrics:    metrics,
	}
}

// Execute implements Step
func (s *NormalizeStep) Execute(ctx context.Context, state *RunState) error {
	records, stats := s.normalizer.Normalize(ctx, state.Raw)
	state.Records = records
	state.Filter = stats
	s.metrics.RecordFilter(ctx, stats)
	return nil
}

// AggregateStep summarizes state.Records by each configured field
type AggregateStep struct {
	BaseStage
	aggregator *aggregate.Aggregator
	fields     []domain.Field
	metrics    *infrastructure.PipelineMetrics
}

// NewAggregateStep creates the aggregate Step
func NewAggregateStep(a *aggregate.Aggregator, fields []domain.Field, metrics *infrastructure.PipelineMetrics) *AggregateStep {
	return &AggregateStep{
		BaseStage:  NewBaseStage(StepIDAggregate, StepNameAggregate),
		aggregator: a,
		fields:     fields,
		metrics:    metrics,
	}
}

// Execute implements Step
func (s *AggregateStep) Execute(ctx context.Context, state *RunState) error {
	summaries, err := s.aggregator.Summarize(ctx, state.Records, s.fields...)
	if err != nil {
		return err
	}
	state.Summaries = summaries
	for _, summary := range summaries {
		s.metrics.RecordSummary(ctx, summary.GroupBy, len(summary.Rows))
	}
	return nil
}

// OutputStep makes sure the reports directory is writable before anything is written
type OutputStep struct {
	BaseStage
	validator *validation.FileValidator
	dir       string
}

// NewOutputStep creates the output Step
func NewOutputStep(v *validation.FileValidator, dir string) *OutputStep {
	return &OutputStep{
		BaseStage: NewBaseStage(StepIDOutput, StepNameOutput),
		validator: v,
		dir:       dir,
	}
}

// Execute implements Step
func (s *OutputStep) Execute(ctx context.Context, state *RunState) error {
	return s.validator.ValidateOutputDirectory(s.dir)
}

// ChartStep renders one PNG bar chart per summary
type ChartStep struct {
	BaseStage
	renderer report.Renderer
	paths    *config.Paths
	width    vg.Length
	height   vg.Length
	logger   *slog.Logger
}

// NewChartStep creates the chart Step. Width and height are in inches.
func NewChartStep(renderer report.Renderer, paths *config.Paths, width, height float64, logger *slog.Logger) *ChartStep {
	if renderer == nil {
		renderer = report.BarChartRenderer{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartStep{
		BaseStage: NewBaseStage(StepIDChart, StepNameChart),
		renderer:  renderer,
		paths:     paths,
		width:     vg.Length(width) * vg.Inch,
		height:    vg.Length(height) * vg.Inch,
		logger:    logger,
	}
}

// Execute implements Step
func (s *ChartStep) Execute(ctx context.Context, state *RunState) error {
	for _, summary := range state.Summaries {
		chart, err := s.renderer.Render(summary.Rows, report.LabelsFor(summary.GroupBy))
		if err != nil {
			return fmt.Errorf("failed to render %s chart: %w", summary.GroupBy, err)
		}

		path := s.paths.GetChartPath(summary.GroupBy.String())
		if err := chart.SavePNG(path, s.width, s.height); err != nil {
			return err
		}
		state.AddArtifact(path)

		s.logger.InfoContext(ctx, "rendered chart",
			slog.String("group_by", summary.GroupBy.String()),
			slog.Int("bars", len(chart.Bars)),
			slog.String("path", path))
	}
	return nil
}

// TableStep writes one CSV table per summary and prints the tables to out
type TableStep struct {
	BaseStage
	exporter *exporter.SummaryExporter
	out      io.Writer
}

// NewTableStep creates the table Step. A nil out skips the printed tables.
func NewTableStep(exp *exporter.SummaryExporter, out io.Writer) *TableStep {
	return &TableStep{
		BaseStage: NewBaseStage(StepIDTable, StepNameTable),
		exporter:  exp,
		out:       out,
	}
}

// Execute implements Step
func (s *TableStep) Execute(ctx context.Context, state *RunState) error {
	written, err := s.exporter.ExportTables(ctx, state.Summaries)
	for _, path := range written {
		state.AddArtifact(path)
	}
	if err != nil {
		return err
	}

	if s.out == nil {
		return nil
	}
	for i, summary := range state.Summaries {
		if i > 0 {
			fmt.Fprintln(s.out)
		}
		if err := report.WriteTable(s.out, summary); err != nil {
			return fmt.Errorf("failed to print %s table: %w", summary.GroupBy, err)
		}
	}
	return nil
}

// ExportStep writes summary.json and/or summary.xlsx
type ExportStep struct {
	BaseStage
	exporter *exporter.SummaryExporter
	json     bool
	xlsx     bool
}

// NewExportStep creates the export Step
func NewExportStep(e *exporter.SummaryExporter, json, xlsx bool) *ExportStep {
	return &ExportStep{
		BaseStage: NewBaseStage(StepIDExport, StepNameExport),
		exporter:  e,
		json:      json,
		xlsx:      xlsx,
	}
}

// Execute implements Step
func (s *ExportStep) Execute(ctx context.Context, state *RunState) error {
	rep := state.Report()

	if s.json {
		path, err := s.exporter.ExportJSON(ctx, rep)
		if err != nil {
			return err
		}
		state.AddArtifact(path)
	}

	if s.xlsx {
		path, err := s.exporter.ExportXLSX(ctx, rep)
		if err != nil {
			return err
		}
		state.AddArtifact(path)
	}
	return nil
}
