package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// Drop reasons reported on survey_records_dropped
const (
	DropReasonCountry  = "country"
	DropReasonIndustry = "industry"
)

// PipelineMetrics holds the instruments a report run records.
// A nil *PipelineMetrics records nothing.
type PipelineMetrics struct {
	RecordsLoaded    metric.Int64Counter
	RecordsDropped   metric.Int64Counter
	RecordsKept      metric.Int64Counter
	AmountsCoerced   metric.Int64Counter
	CountryCanonical metric.Int64Counter
	SummaryGroups    metric.Int64Gauge
	StepDuration     metric.Float64Histogram
	Runs             metric.Int64Counter
}

// NewPipelineMetrics creates the run instruments on meter
func NewPipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	loaded, err := meter.Int64Counter(
		"survey_records_loaded",
		metric.WithDescription("Survey responses read from the export"),
	)
	if err != nil {
		return nil, err
	}

	dropped, err := meter.Int64Counter(
		"survey_records_dropped",
		metric.WithDescription("Survey responses removed by a soft filter"),
	)
	if err != nil {
		return nil, err
	}

	kept, err := meter.Int64Counter(
		"survey_records_kept",
		metric.WithDescription("Survey responses surviving normalization"),
	)
	if err != nil {
		return nil, err
	}

	coerced, err := meter.Int64Counter(
		"survey_amounts_coerced",
		metric.WithDescription("Salary or bonus answers that were blank or unparseable and counted as zero"),
	)
	if err != nil {
		return nil, err
	}

	canonical, err := meter.Int64Counter(
		"survey_country_canonicalized",
		metric.WithDescription("Country answers rewritten to United States"),
	)
	if err != nil {
		return nil, err
	}

	groups, err := meter.Int64Gauge(
		"survey_summary_groups",
		metric.WithDescription("Number of groups in a summary"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"survey_step_duration_seconds",
		metric.WithDescription("Pipeline step duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	runs, err := meter.Int64Counter(
		"survey_report_runs",
		metric.WithDescription("Report runs by outcome"),
	)
	if err != nil {
		return nil, err
	}

	return &PipelineMetrics{
		RecordsLoaded:    loaded,
		RecordsDropped:   dropped,
		RecordsKept:      kept,
		AmountsCoerced:   coerced,
		CountryCanonical: canonical,
		SummaryGroups:    groups,
		StepDuration:     duration,
		Runs:             runs,
	}, nil
}

// RecordFilter records what normalization did to a batch
func (m *PipelineMetrics) RecordFilter(ctx context.Context, stats domain.FilterStats) {
	if m == nil {
		return
	}

	m.RecordsLoaded.Add(ctx, int64(stats.Input))
	m.RecordsKept.Add(ctx, int64(stats.Output))
	m.AmountsCoerced.Add(ctx, int64(stats.CoercedAmounts))
	m.CountryCanonical.Add(ctx, int64(stats.CanonicalCountry))
	m.RecordsDropped.Add(ctx, int64(stats.DroppedByCountry),
		metric.WithAttributes(attribute.String("reason", DropReasonCountry)))
	m.RecordsDropped.Add(ctx, int64(stats.DroppedByIndustry),
		metric.WithAttributes(attribute.String("reason", DropReasonIndustry)))
}

// RecordSummary records the size of one summary
func (m *PipelineMetrics) RecordSummary(ctx context.Context, groupBy domain.Field, groups int) {
	if m == nil {
		return
	}
	m.SummaryGroups.Record(ctx, int64(groups),
		metric.WithAttributes(attribute.String("group_by", groupBy.String())))
}

// RecordStep records one step's duration and outcome
func (m *PipelineMetrics) RecordStep(ctx context.Context, stepID string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.StepDuration.Record(ctx, d.Seconds(),
		metric.WithAttributes(
			attribute.String("step", stepID),
			attribute.String("status", outcome(err)),
		))
}

// RecordRun records the outcome of a whole report run
func (m *PipelineMetrics) RecordRun(ctx context.Context, err error) {
	if m == nil {
		return
	}
	m.Runs.Add(ctx, 1, metric.WithAttributes(attribute.String("status", outcome(err))))
}

func outcome(err error) string {
	if err != nil {
		return "failed"
	}
	return "completed"
}
