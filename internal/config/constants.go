package config

// Application constants
const (
	AppName = "Survey Report"

	// EnvPrefix namespaces every environment variable, e.g. SURVEY_OUTPUT_MODE.
	EnvPrefix = "SURVEY"

	// Output modes
	ModeChart = "chart"
	ModeTable = "table"
	ModeJSON  = "json"
	ModeXLSX  = "xlsx"
	ModeAll   = "all"

	// Chart size defaults, in inches
	DefaultChartWidth  = 10.0
	DefaultChartHeight = 6.0

	// Well-known output files
	SummaryJSONFile = "summary.json"
	SummaryXLSXFile = "summary.xlsx"
)

// DefaultGroupBy lists the two standard summaries: by industry and by
// overall experience bracket.
var DefaultGroupBy = []string{"industry", "exp_general"}
