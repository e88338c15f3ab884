package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// SurveyHeader is the header row of the salary survey export, one question per column.
var SurveyHeader = []string{
	"Timestamp",
	"How old are you?",
	"What industry do you work in?",
	"Job title",
	"If your job title needs additional context, please clarify here:",
	"What is your annual salary? (You'll indicate the currency in a later question. If you are part-time or hourly, please enter an annualized equivalent -- what you would earn if you worked the job 40 hours a week, 52 weeks a year.)",
	"How much additional monetary compensation do you get, if any (for example, bonuses or overtime in an average year)? Please only include monetary compensation here, not the value of benefits.",
	"Please indicate the currency",
	"If \"Other,\" please indicate the currency here: ",
	"If your income needs additional context, please provide it here:",
	"What country do you work in?",
	"If you're in the U.S., what state do you work in?",
	"What city do you work in?",
	"How many years of professional work experience do you have overall?",
	"How many years of professional work experience do you have in your field?",
	"What is your highest level of education completed?",
	"What is your gender?",
	"What is your race? (Choose all that apply.)",
}

// Response describes the answers a fixture row cares about. Every other
// column gets a plausible constant.
type Response struct {
	Industry   string
	Salary     string
	Bonus      string
	Country    string
	ExpGeneral string
	Education  string
}

// Cells expands r into a full export row in column order.
func (r Response) Cells() []string {
	return []string{
		"4/27/2021 11:02:10",
		"25-34",
		r.Industry,
		"Analyst",
		"",
		r.Salary,
		r.Bonus,
		"USD",
		"",
		"",
		r.Country,
		"Ohio",
		"Columbus",
		r.ExpGeneral,
		"2 - 4 years",
		r.Education,
		"Woman",
		"White",
	}
}

// Raw returns r as a loaded record.
func (r Response) Raw() domain.RawRecord {
	return domain.NewRawRecord(r.Cells())
}

// SampleResponses is a small export mixing kept and dropped answers:
// two US rows in allow-listed industries per bracket, a Canadian row,
// a self-entered industry and a row with a malformed salary.
func SampleResponses() []Response {
	return []Response{
		{Industry: "Law", Salary: "75,000", Bonus: "5000", Country: "USA", ExpGeneral: "5-7 years", Education: "College degree"},
		{Industry: "Computing or Tech", Salary: "120000", Bonus: "10000", Country: "United States", ExpGeneral: "8 - 10 years", Education: "Master's degree"},
		{Industry: "Law", Salary: "60000", Bonus: "", Country: "us", ExpGeneral: "2 - 4 years", Education: "College degree"},
		{Industry: "Computing or Tech", Salary: "90000", Bonus: "", Country: "Canada", ExpGeneral: "5-7 years", Education: "College degree"},
		{Industry: "Other: Freelance Writer", Salary: "40000", Bonus: "", Country: "USA", ExpGeneral: "5-7 years", Education: "Some college"},
		{Industry: "Nonprofits", Salary: "n/a", Bonus: "2000", Country: "U.S.A.", ExpGeneral: "2 - 4 years", Education: "Master's degree"},
	}
}

// SampleRaw returns SampleResponses as loaded records.
func SampleRaw() []domain.RawRecord {
	responses := SampleResponses()
	raw := make([]domain.RawRecord, len(responses))
	for i, r := range responses {
		raw[i] = r.Raw()
	}
	return raw
}

// WriteSurveyCSV writes header and rows as a CSV export under dir and returns its path.
func WriteSurveyCSV(t testing.TB, dir string, header []string, rows ...[]string) string {
	t.Helper()

	path := filepath.Join(dir, "survey.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.Write(header))
	for _, row := range rows {
		require.NoError(t, w.Write(row))
	}
	w.Flush()
	require.NoError(t, w.Error())

	return path
}

// WriteSampleCSV writes SampleResponses as a CSV export under dir.
func WriteSampleCSV(t testing.TB, dir string) string {
	t.Helper()

	var rows [][]string
	for _, r := range SampleResponses() {
		rows = append(rows, r.Cells())
	}
	return WriteSurveyCSV(t, dir, SurveyHeader, rows...)
}

// WriteSurveyXLSX writes header and rows to the first sheet of a workbook under dir.
func WriteSurveyXLSX(t testing.TB, dir string, header []string, rows ...[]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	all := append([][]string{header}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)

		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}

	path := filepath.Join(dir, "survey.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
