package aggregate

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/BonkerMcBonkerson/Professional-Portfolio/internal/errors"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/exporter"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/normalize"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/operations/testutil"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

func record(industry, exp string, income float64) domain.Record {
	return domain.Record{
		RawRecord:    domain.RawRecord{Industry: industry, ExpGeneral: exp, Country: "United States"},
		IncomeAnnual: income,
	}
}

func TestAggregate_MeanAndOrder(t *testing.T) {
	records := []domain.Record{
		record("Law", "5-7 years", 80000),
		record("Retail", "2 - 4 years", 30000),
		record("Law", "8 - 10 years", 100000),
		record("Computing or Tech", "5-7 years", 150000),
		record("Retail", "5-7 years", 40000),
	}

	rows, err := Aggregate(records, domain.FieldIndustry)
	require.NoError(t, err)

	assert.Equal(t, []domain.AggregateRow{
		{GroupKey: "Computing or Tech", MeanIncome: 150000, Count: 1},
		{GroupKey: "Law", MeanIncome: 90000, Count: 2},
		{GroupKey: "Retail", MeanIncome: 35000, Count: 2},
	}, rows)
}

func TestAggregate_TiesKeepFirstAppearance(t *testing.T) {
	records := []domain.Record{
		record("Retail", "", 50000),
		record("Law", "", 50000),
		record("Sales", "", 70000),
		record("Insurance", "", 50000),
	}

	rows, err := Aggregate(records, domain.FieldIndustry)
	require.NoError(t, err)

	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.GroupKey
	}
	assert.Equal(t, []string{"Sales", "Retail", "Law", "Insurance"}, keys)
}

func TestAggregate_ExactKeys(t *testing.T) {
	records := []domain.Record{
		record("Law", "5-7 years", 1),
		record("Law", "5 - 7 years", 3),
	}

	rows, err := Aggregate(records, domain.FieldExpGeneral)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestAggregate_Empty(t *testing.T) {
	rows, err := Aggregate(nil, domain.FieldIndustry)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestAggregate_InvalidField(t *testing.T) {
	for _, f := range []domain.Field{domain.FieldSalary, domain.FieldJobTitle, "nope"} {
		t.Run(f.String(), func(t *testing.T) {
			_, err := Aggregate([]domain.Record{record("Law", "", 1)}, f)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	records := []domain.Record{record("Retail", "", 1), record("Law", "", 2)}
	snapshot := append([]domain.Record(nil), records...)

	_, err := Aggregate(records, domain.FieldIndustry)
	require.NoError(t, err)
	assert.Equal(t, snapshot, records)
}

func TestAggregate_NormalizedWorkedExample(t *testing.T) {
	raw := []domain.RawRecord{
		{Salary: "100000", Bonus: "", Country: "USA", Industry: "Law"},
		{Salary: "50000", Bonus: "10000", Country: "United States", Industry: "Law"},
	}

	records, _ := normalize.Normalize(raw)
	require.Len(t, records, 2)
	assert.Equal(t, 100000.0, records[0].IncomeAnnual)
	assert.Equal(t, 60000.0, records[1].IncomeAnnual)

	rows, err := Aggregate(records, domain.FieldIndustry)
	require.NoError(t, err)
	assert.Equal(t, []domain.AggregateRow{
		{GroupKey: "Law", MeanIncome: 80000, Count: 2},
	}, rows)
}

func TestAggregate_NearMaxIncomesStayFinite(t *testing.T) {
	records := []domain.Record{
		record("Law", "5-7 years", math.MaxFloat64),
		record("Law", "5-7 years", math.MaxFloat64),
		record("Law", "5-7 years", 1e308),
	}

	rows, err := Aggregate(records, domain.FieldIndustry)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, math.IsInf(rows[0].MeanIncome, 0))
	assert.Greater(t, rows[0].MeanIncome, 1e308)

	report := domain.SummaryReport{
		RunID:     "run-1",
		Summaries: []domain.Summary{{GroupBy: domain.FieldIndustry, Rows: rows}},
	}
	require.NoError(t, exporter.WriteJSON(filepath.Join(t.TempDir(), "summary.json"), report))
}

func TestSummarize(t *testing.T) {
	records, _ := normalize.Normalize(testutil.SampleRaw())

	summaries, err := Summarize(records, domain.FieldIndustry, domain.FieldExpGeneral)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, domain.FieldIndustry, summaries[0].GroupBy)
	assert.Equal(t, domain.FieldExpGeneral, summaries[1].GroupBy)

	for _, s := range summaries {
		total := 0
		for i, row := range s.Rows {
			total += row.Count
			if i > 0 {
				assert.GreaterOrEqual(t, s.Rows[i-1].MeanIncome, row.MeanIncome)
			}
		}
		assert.Equal(t, len(records), total)
	}

	assert.Equal(t, "Computing or Tech", summaries[0].Rows[0].GroupKey)
	assert.Equal(t, 130000.0, summaries[0].Rows[0].MeanIncome)
	assert.Equal(t, 70000.0, summaries[0].Rows[1].MeanIncome)
}

func TestSummarize_StopsOnInvalidField(t *testing.T) {
	_, err := Summarize(nil, domain.FieldIndustry, domain.FieldCity)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestAggregator_Summarize(t *testing.T) {
	summaries, err := NewAggregator(nil).Summarize(context.Background(), nil, domain.FieldIndustry)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Empty(t, summaries[0].Rows)
}
