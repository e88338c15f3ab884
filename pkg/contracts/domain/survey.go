package domain

// Field is the semantic name of one survey column.
type Field string

// Survey columns, in file order.
const (
	FieldTimestamp     Field = "timestamp"
	FieldAgeRange      Field = "age_range"
	FieldIndustry      Field = "industry"
	FieldJobTitle      Field = "job_title"
	FieldJobContext    Field = "job_context"
	FieldSalary        Field = "salary"
	FieldBonus         Field = "bonus"
	FieldCurrency      Field = "currency"
	FieldCurrencyOther Field = "currency_other"
	FieldIncomeContext Field = "income_context"
	FieldCountry       Field = "country"
	FieldState         Field = "state"
	FieldCity          Field = "city"
	FieldExpGeneral    Field = "exp_general"
	FieldExpIndustry   Field = "exp_industry"
	FieldEducation     Field = "education"
	FieldGender        Field = "gender"
	FieldRace          Field = "race"
)

// ColumnCount is the number of columns every survey export carries.
const ColumnCount = 18

// Columns lists the survey fields in the order they appear in the export.
var Columns = [ColumnCount]Field{
	FieldTimestamp,
	FieldAgeRange,
	FieldIndustry,
	FieldJobTitle,
	FieldJobContext,
	FieldSalary,
	FieldBonus,
	FieldCurrency,
	FieldCurrencyOther,
	FieldIncomeContext,
	FieldCountry,
	FieldState,
	FieldCity,
	FieldExpGeneral,
	FieldExpIndustry,
	FieldEducation,
	FieldGender,
	FieldRace,
}

// groupable fields are the categorical answers a summary may be keyed on.
var groupable = map[Field]bool{
	FieldIndustry:    true,
	FieldExpGeneral:  true,
	FieldExpIndustry: true,
	FieldAgeRange:    true,
	FieldEducation:   true,
	FieldGender:      true,
	FieldState:       true,
}

// Groupable reports whether summaries can be grouped by f.
func (f Field) Groupable() bool {
	return groupable[f]
}

// String implements fmt.Stringer
func (f Field) String() string {
	return string(f)
}

// RawRecord is one survey response exactly as it appeared in the export,
// with columns renamed to their semantic field names.
type RawRecord struct {
	Timestamp     string `json:"timestamp"`
	AgeRange      string `json:"age_range"`
	Industry      string `json:"industry"`
	JobTitle      string `json:"job_title"`
	JobContext    string `json:"job_context"`
	Salary        string `json:"salary"`
	Bonus         string `json:"bonus"`
	Currency      string `json:"currency"`
	CurrencyOther string `json:"currency_other"`
	IncomeContext string `json:"income_context"`
	Country       string `json:"country"`
	State         string `json:"state"`
	City          string `json:"city"`
	ExpGeneral    string `json:"exp_general"`
	ExpIndustry   string `json:"exp_industry"`
	Education     string `json:"education"`
	Gender        string `json:"gender"`
	Race          string `json:"race"`
}

// NewRawRecord maps positional cells onto the survey fields. Missing trailing
// cells are left empty and cells beyond ColumnCount are ignored.
func NewRawRecord(cells []string) RawRecord {
	var padded [ColumnCount]string
	copy(padded[:], cells)

	return RawRecord{
		Timestamp:     padded[0],
		AgeRange:      padded[1],
		Industry:      padded[2],
		JobTitle:      padded[3],
		JobContext:    padded[4],
		Salary:        padded[5],
		Bonus:         padded[6],
		Currency:      padded[7],
		CurrencyOther: padded[8],
		IncomeContext: padded[9],
		Country:       padded[10],
		State:         padded[11],
		City:          padded[12],
		ExpGeneral:    padded[13],
		ExpIndustry:   padded[14],
		Education:     padded[15],
		Gender:        padded[16],
		Race:          padded[17],
	}
}

// Value returns the raw text of field f. Unknown fields yield "", false.
func (r RawRecord) Value(f Field) (string, bool) {
	switch f {
	case FieldTimestamp:
		return r.Timestamp, true
	case FieldAgeRange:
		return r.AgeRange, true
	case FieldIndustry:
		return r.Industry, true
	case FieldJobTitle:
		return r.JobTitle, true
	case FieldJobContext:
		return r.JobContext, true
	case FieldSalary:
		return r.Salary, true
	case FieldBonus:
		return r.Bonus, true
	case FieldCurrency:
		return r.Currency, true
	case FieldCurrencyOther:
		return r.CurrencyOther, true
	case FieldIncomeContext:
		return r.IncomeContext, true
	case FieldCountry:
		return r.Country, true
	case FieldState:
		return r.State, true
	case FieldCity:
		return r.City, true
	case FieldExpGeneral:
		return r.ExpGeneral, true
	case FieldExpIndustry:
		return r.ExpIndustry, true
	case FieldEducation:
		return r.Education, true
	case FieldGender:
		return r.Gender, true
	case FieldRace:
		return r.Race, true
	default:
		return "", false
	}
}

// Record is a normalized survey response. Salary and Bonus hold the coerced
// amounts (0 when the answer was blank or unparseable) and IncomeAnnual is
// always their sum.
type Record struct {
	RawRecord

	SalaryAmount float64 `json:"salary_amount"`
	BonusAmount  float64 `json:"bonus_amount"`
	IncomeAnnual float64 `json:"income_annual"`
}
