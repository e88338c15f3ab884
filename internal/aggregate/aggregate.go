// Package aggregate groups normalized survey responses by a categorical
// answer and ranks the groups by mean annual income.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	apperrors "github.com/BonkerMcBonkerson/Professional-Portfolio/internal/errors"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// Aggregate groups records by the exact value of groupBy and returns one row
// per group with its mean IncomeAnnual, highest mean first. Groups with equal
// means keep the order in which they first appeared. Empty input yields an
// empty summary.
func Aggregate(records []domain.Record, groupBy domain.Field) ([]domain.AggregateRow, error) {
	if !groupBy.Groupable() {
		return nil, apperrors.NewAppValidationError(
			fmt.Sprintf("cannot group by %q: not a categorical field", groupBy)).
			WithContext("field", string(groupBy))
	}

	// Sums are kept in decimal: incomes near MaxFloat64 overflow a float sum.
	type group struct {
		sum   decimal.Decimal
		count int
	}

	index := make(map[string]int)
	var keys []string
	var groups []group

	for _, r := range records {
		key, _ := r.Value(groupBy)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			keys = append(keys, key)
			groups = append(groups, group{})
		}
		groups[i].sum = groups[i].sum.Add(decimal.NewFromFloat(r.IncomeAnnual))
		groups[i].count++
	}

	rows := make([]domain.AggregateRow, len(groups))
	for i, g := range groups {
		rows[i] = domain.AggregateRow{
			GroupKey:   keys[i],
			MeanIncome: g.sum.Div(decimal.NewFromInt(int64(g.count))).InexactFloat64(),
			Count:      g.count,
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MeanIncome > rows[j].MeanIncome
	})

	return rows, nil
}

// Summarize builds one summary per field, in the order given.
func Summarize(records []domain.Record, fields ...domain.Field) ([]domain.Summary, error) {
	summaries := make([]domain.Summary, 0, len(fields))
	for _, f := range fields {
		rows, err := Aggregate(records, f)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, domain.Summary{GroupBy: f, Rows: rows})
	}
	return summaries, nil
}

// Aggregator runs Summarize and logs each summary
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator creates an aggregator
func NewAggregator(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// Summarize builds the summaries for fields and logs their group counts
func (a *Aggregator) Summarize(ctx context.Context, records []domain.Record, fields ...domain.Field) ([]domain.Summary, error) {
	summaries, err := Summarize(records, fields...)
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to aggregate survey responses",
			slog.String("error", err.Error()))
		return nil, err
	}

	for _, s := range summaries {
		attrs := []any{
			slog.String("group_by", s.GroupBy.String()),
			slog.Int("groups", len(s.Rows)),
			slog.Int("records", len(records)),
		}
		if len(s.Rows) > 0 {
			attrs = append(attrs,
				slog.String("top_group", s.Rows[0].GroupKey),
				slog.Float64("top_mean_income", s.Rows[0].MeanIncome))
		}
		a.logger.InfoContext(ctx, "aggregated survey responses", attrs...)
	}

	return summaries, nil
}
