package operations

import (
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

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

// PipelineDeps are the collaborators a survey pipeline is built with.
// Zero values fall back to defaults; a nil Stdout suppresses printed tables.
type PipelineDeps struct {
	Logger   *slog.Logger
	Metrics  *infrastructure.PipelineMetrics
	Tracer   trace.Tracer
	Renderer report.Renderer
	Stdout   io.Writer
}

// NewSurveyPipeline builds the manager for one report run: load, normalize,
// aggregate, then the output Steps the configured mode asks for.
func NewSurveyPipeline(cfg *config.Config, paths *config.Paths, deps PipelineDeps) (*Manager, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	fields := make([]domain.Field, len(cfg.Output.GroupBy))
	for i, g := range cfg.Output.GroupBy {
		fields[i] = domain.Field(g)
	}

	steps := []Step{
		NewLoadStep(loader.NewLoader(infrastructure.WithComponent(logger, "loader"))),
		NewNormalizeStep(normalize.NewNormalizer(infrastructure.WithComponent(logger, "normalize")), deps.Metrics),
		NewAggregateStep(aggregate.NewAggregator(infrastructure.WithComponent(logger, "aggregate")), fields, deps.Metrics),
		NewOutputStep(validation.NewFileValidator(logger), paths.ReportsDir),
	}

	out := cfg.Output
	if out.Wants(config.ModeChart) {
		steps = append(steps, NewChartStep(deps.Renderer, paths, out.ChartWidth, out.ChartHeight,
			infrastructure.WithComponent(logger, "report")))
	}
	summaryExporter := exporter.NewSummaryExporter(paths, infrastructure.WithComponent(logger, "exporter"))
	if out.Wants(config.ModeTable) {
		steps = append(steps, NewTableStep(summaryExporter, deps.Stdout))
	}
	if out.Wants(config.ModeJSON) || out.Wants(config.ModeXLSX) {
		steps = append(steps, NewExportStep(summaryExporter,
			out.Wants(config.ModeJSON),
			out.Wants(config.ModeXLSX)))
	}

	registry := NewRegistry()
	for _, step := range steps {
		if err := registry.Register(step); err != nil {
			return nil, err
		}
	}

	return NewManager(registry,
		WithTracer(deps.Tracer),
		WithMetrics(deps.Metrics),
		WithLogger(logger)), nil
}
