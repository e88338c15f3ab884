package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// WriteTable prints a summary as an aligned text table.
func WriteTable(w io.Writer, s domain.Summary) error {
	labels := LabelsFor(s.GroupBy)

	if _, err := fmt.Fprintln(w, labels.Title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t\n", labels.YLabel, "Mean income", "Responses")
	for _, r := range s.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t\n", r.GroupKey, FormatIncome(r.MeanIncome), r.Count)
	}
	if len(s.Rows) == 0 {
		fmt.Fprintln(tw, "(no responses)")
	}
	return tw.Flush()
}

// FormatIncome renders an amount with two decimals and thousands separators.
func FormatIncome(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)

	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	whole, frac := s[:len(s)-3], s[len(s)-3:]

	var out []byte
	for i := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, whole[i])
	}
	return sign + string(out) + frac
}
