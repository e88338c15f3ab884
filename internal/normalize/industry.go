package normalize

import (
	"sort"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// industries is the fixed allow-list of industry answers. It holds the
// survey's own options plus the self-entered answers common enough to keep.
var industries = map[string]struct{}{
	"Accounting, Banking & Finance":        {},
	"Agriculture or Forestry":              {},
	"Art & Design":                         {},
	"Business or Consulting":               {},
	"Computing or Tech":                    {},
	"Education (Primary/Secondary)":        {},
	"Education (Higher Education)":         {},
	"Engineering or Manufacturing":         {},
	"Entertainment":                        {},
	"Government and Public Administration": {},
	"Health care":                          {},
	"Hospitality & Events":                 {},
	"Insurance":                            {},
	"Law":                                  {},
	"Law Enforcement & Security":           {},
	"Leisure, Sport & Tourism":             {},
	"Marketing, Advertising & PR":          {},
	"Media & Digital":                      {},
	"Nonprofits":                           {},
	"Property or Construction":             {},
	"Recruitment or HR":                    {},
	"Retail":                               {},
	"Sales":                                {},
	"Social Work":                          {},
	"Transport or Logistics":               {},
	"Utilities & Telecommunications":       {},
	"Libraries":                            {},
	"Pharmaceuticals":                      {},
	"Biotech":                              {},
	"Publishing":                           {},
	"Architecture":                         {},
}

// AllowedIndustry reports whether industry is on the allow-list. Matching is exact.
func AllowedIndustry(industry string) bool {
	_, ok := industries[industry]
	return ok
}

// Industries returns the allow-list, sorted.
func Industries() []string {
	out := make([]string, 0, len(industries))
	for name := range industries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FilterIndustry keeps only records whose industry is on the allow-list.
func FilterIndustry(records []domain.Record) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if AllowedIndustry(r.Industry) {
			out = append(out, r)
		}
	}
	return out
}
