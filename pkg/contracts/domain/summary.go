package domain

// AggregateRow is one group of a summary: the group's key and the mean annual
// income of its members.
type AggregateRow struct {
	GroupKey   string  `json:"group_key"`
	MeanIncome float64 `json:"mean_income"`
	Count      int     `json:"count"`
}

// Summary is an ordered set of aggregate rows for one grouping field.
// Rows are sorted by MeanIncome, highest first.
type Summary struct {
	GroupBy Field          `json:"group_by"`
	Rows    []AggregateRow `json:"rows"`
}

// SummaryReport is the machine-readable output of one pipeline run.
type SummaryReport struct {
	RunID       string      `json:"run_id"`
	Source      string      `json:"source"`
	GeneratedAt string      `json:"generated_at"`
	Filter      FilterStats `json:"filter"`
	Summaries   []Summary   `json:"summaries"`
}

// FilterStats counts what normalization did to a batch.
type FilterStats struct {
	Input             int `json:"input"`
	CoercedAmounts    int `json:"coerced_amounts"`
	CanonicalCountry  int `json:"canonical_country"`
	DroppedByCountry  int `json:"dropped_by_country"`
	DroppedByIndustry int `json:"dropped_by_industry"`
	Output            int `json:"output"`
}
