package normalize

import (
	"strings"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// UnitedStates is the canonical country every kept record carries.
const UnitedStates = "United States"

// unitedStatesSynonyms are the lowercased spellings, trailing punctuation
// removed, that are rewritten to UnitedStates.
var unitedStatesSynonyms = map[string]struct{}{
	"america": {},
	"usa":     {},
	"us":      {},
	"u.s":     {},
	"u.s.a":   {},
}

// CanonicalCountry maps a known spelling of the United States to UnitedStates.
// Any other value is returned unchanged with ok == false.
func CanonicalCountry(country string) (string, bool) {
	key := strings.TrimRight(strings.ToLower(strings.TrimSpace(country)), ".,;!")
	if _, ok := unitedStatesSynonyms[key]; ok {
		return UnitedStates, true
	}
	return country, false
}

// CanonicalizeCountry rewrites known United States spellings on every record.
func CanonicalizeCountry(records []domain.Record) []domain.Record {
	out, _ := canonicalizeCountry(records)
	return out
}

func canonicalizeCountry(records []domain.Record) ([]domain.Record, int) {
	out := make([]domain.Record, len(records))
	rewritten := 0
	for i, r := range records {
		if c, ok := CanonicalCountry(r.Country); ok {
			if r.Country != c {
				rewritten++
			}
			r.Country = c
		}
		out[i] = r
	}
	return out, rewritten
}

// FilterCountry keeps only records whose country is exactly UnitedStates.
func FilterCountry(records []domain.Record) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if r.Country == UnitedStates {
			out = append(out, r)
		}
	}
	return out
}
