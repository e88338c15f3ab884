package normalize

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// Bounds on a parsed amount: at most maxAmountMagnitude integer digits (just
// past float64 range) and maxAmountScale fractional digits.
const (
	maxAmountMagnitude = 309
	maxAmountScale     = 30
)

// ParseAmount reads a free-text monetary answer. Surrounding whitespace and
// thousands separators are ignored. A blank answer is zero; an answer that is
// not a non-negative number of plausible size is also zero but reported with
// ok == false.
func ParseAmount(s string) (amount decimal.Decimal, ok bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, true
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	if d.IsZero() {
		return decimal.Zero, true
	}

	// Exponent notation like 1e100000000 parses cheaply but is expanded
	// digit by digit on conversion.
	exp := int64(d.Exponent())
	if int64(d.NumDigits())+exp > maxAmountMagnitude || -exp > maxAmountScale {
		return decimal.Zero, false
	}
	return d, true
}

// CoerceMonetary parses the salary and bonus answers of every record.
// Unparseable, missing and negative amounts become 0.
func CoerceMonetary(raw []domain.RawRecord) []domain.Record {
	records, _ := coerceMonetary(raw)
	return records
}

// DeriveIncome sets IncomeAnnual to salary plus bonus on every record.
func DeriveIncome(records []domain.Record) []domain.Record {
	out := make([]domain.Record, len(records))
	for i, r := range records {
		r.IncomeAnnual = toFloat(decimal.NewFromFloat(r.SalaryAmount).Add(decimal.NewFromFloat(r.BonusAmount)))
		out[i] = r
	}
	return out
}

// coerceMonetary is CoerceMonetary that also counts the non-blank answers
// that had to be replaced by 0.
func coerceMonetary(raw []domain.RawRecord) ([]domain.Record, int) {
	out := make([]domain.Record, len(raw))
	coerced := 0
	for i, r := range raw {
		salary, ok := ParseAmount(r.Salary)
		if !ok {
			coerced++
		}
		bonus, ok := ParseAmount(r.Bonus)
		if !ok {
			coerced++
		}

		out[i] = domain.Record{
			RawRecord:    r,
			SalaryAmount: toFloat(salary),
			BonusAmount:  toFloat(bonus),
		}
	}
	return out, coerced
}

// toFloat converts d, clamping values beyond float64 range so income stays finite.
func toFloat(d decimal.Decimal) float64 {
	f := d.InexactFloat64()
	if math.IsInf(f, 1) || math.IsNaN(f) {
		return math.MaxFloat64
	}
	return f
}
