package loader

import (
	"fmt"
	"strings"

	apperrors "github.com/BonkerMcBonkerson/Professional-Portfolio/internal/errors"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// column describes one expected header cell. The survey's header row is the
// full question text, so a column matches when its header contains every
// phrase, or when the header is already the semantic field name.
type column struct {
	field   domain.Field
	phrases []string
}

// surveyColumns is the fixed header layout of the export, in file order.
var surveyColumns = [domain.ColumnCount]column{
	{domain.FieldTimestamp, []string{"timestamp"}},
	{domain.FieldAgeRange, []string{"how old"}},
	{domain.FieldIndustry, []string{"industry"}},
	{domain.FieldJobTitle, []string{"job title"}},
	{domain.FieldJobContext, []string{"job title", "context"}},
	{domain.FieldSalary, []string{"salary"}},
	{domain.FieldBonus, []string{"compensation"}},
	{domain.FieldCurrency, []string{"currency"}},
	{domain.FieldCurrencyOther, []string{"other", "currency"}},
	{domain.FieldIncomeContext, []string{"income", "context"}},
	{domain.FieldCountry, []string{"country"}},
	{domain.FieldState, []string{"state"}},
	{domain.FieldCity, []string{"city"}},
	{domain.FieldExpGeneral, []string{"experience", "overall"}},
	{domain.FieldExpIndustry, []string{"experience", "field"}},
	{domain.FieldEducation, []string{"education"}},
	{domain.FieldGender, []string{"gender"}},
	{domain.FieldRace, []string{"race"}},
}

func (c column) matches(header string) bool {
	h := normalizeHeader(header)
	if h == string(c.field) {
		return true
	}
	for _, p := range c.phrases {
		if !strings.Contains(h, p) {
			return false
		}
	}
	return true
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

// ValidateHeader checks the header row against the fixed survey layout:
// exactly domain.ColumnCount columns, each in its expected position.
func ValidateHeader(header []string) error {
	if len(header) != domain.ColumnCount {
		return apperrors.NewSchemaError(
			fmt.Sprintf("expected %d columns, found %d", domain.ColumnCount, len(header))).
			WithContext("columns", len(header))
	}

	for i, col := range surveyColumns {
		if !col.matches(header[i]) {
			return apperrors.NewSchemaError(
				fmt.Sprintf("column %d should hold %s, header is %q", i+1, col.field, strings.TrimSpace(header[i]))).
				WithContext("column", i+1).
				WithContext("field", string(col.field))
		}
	}
	return nil
}
