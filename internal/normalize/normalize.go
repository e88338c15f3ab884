// Package normalize cleans loaded survey responses: it coerces monetary
// answers, derives annual income, canonicalizes country spellings and drops
// responses outside the United States or outside the industry allow-list.
//
// Every stage returns a new slice and leaves its input untouched, so any
// intermediate batch can be replayed through the remaining stages.
package normalize

import (
	"context"
	"log/slog"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// Normalize runs every stage in order and reports what each one did.
func Normalize(raw []domain.RawRecord) ([]domain.Record, domain.FilterStats) {
	stats := domain.FilterStats{Input: len(raw)}

	records, coerced := coerceMonetary(raw)
	stats.CoercedAmounts = coerced

	records = DeriveIncome(records)

	records, rewritten := canonicalizeCountry(records)
	stats.CanonicalCountry = rewritten

	before := len(records)
	records = FilterCountry(records)
	stats.DroppedByCountry = before - len(records)

	before = len(records)
	records = FilterIndustry(records)
	stats.DroppedByIndustry = before - len(records)

	stats.Output = len(records)
	return records, stats
}

// NormalizeRecords re-applies the derivation and filter stages to records
// that are already normalized. For the output of Normalize it returns an
// equal batch.
func NormalizeRecords(records []domain.Record) []domain.Record {
	out := DeriveIncome(records)
	out = CanonicalizeCountry(out)
	out = FilterCountry(out)
	return FilterIndustry(out)
}

// Normalizer runs Normalize and logs the outcome
type Normalizer struct {
	logger *slog.Logger
}

// NewNormalizer creates a normalizer
func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger}
}

// Normalize cleans raw and logs the filter counts
func (n *Normalizer) Normalize(ctx context.Context, raw []domain.RawRecord) ([]domain.Record, domain.FilterStats) {
	records, stats := Normalize(raw)

	n.logger.InfoContext(ctx, "normalized survey responses",
		slog.Int("input", stats.Input),
		slog.Int("coerced_amounts", stats.CoercedAmounts),
		slog.Int("canonical_country", stats.CanonicalCountry),
		slog.Int("dropped_by_country", stats.DroppedByCountry),
		slog.Int("dropped_by_industry", stats.DroppedByIndustry),
		slog.Int("output", stats.Output))

	if stats.Input > 0 && stats.Output == 0 {
		n.logger.WarnContext(ctx, "no survey responses survived normalization",
			slog.Int("input", stats.Input))
	}

	return records, stats
}
