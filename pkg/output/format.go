// Package output provides utilities for formatting and displaying settlement results.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iwvelando/cesantias/internal/settlement"
	"github.com/iwvelando/cesantias/pkg/constants"
	"github.com/iwvelando/cesantias/pkg/datetime"
	"github.com/iwvelando/cesantias/pkg/format"
	"github.com/iwvelando/cesantias/pkg/mathutil"
	"github.com/iwvelando/cesantias/pkg/statutory"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []settlement.Settlement) {
	WritePretty(os.Stdout, results)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []settlement.Settlement) {
	WriteCsv(os.Stdout, results)
}

// JSONFormat outputs the results as an indented JSON array.
func JSONFormat(results []settlement.Settlement) error {
	return WriteJSON(os.Stdout, results)
}

// WritePretty writes one block per settlement to w.
func WritePretty(w io.Writer, results []settlement.Settlement) {
	p := message.NewPrinter(language.English)
	for i, r := range results {
		_, _ = fmt.Fprintf(w, "--- Settlement for %s ---\n", r.Name)
		_, _ = fmt.Fprintf(w, "Period           | %s - %s\n",
			datetime.FormatDisplay(r.Period.Start), datetime.FormatDisplay(r.Period.End))
		_, _ = p.Fprintf(w, "Days (30/360)    | %d\n", r.Days)
		_, _ = fmt.Fprintf(w, "Reference year   | %d\n", r.ReferenceYear)
		_, _ = fmt.Fprintf(w, "Base salary      | %s%s\n", format.Currency(r.Base.Amount()), subsidyNote(r))
		_, _ = fmt.Fprintf(w, "Concept          | Amount\n")
		_, _ = fmt.Fprintf(w, "_______          | ______\n")
		_, _ = fmt.Fprintf(w, "Cesantias        | %s\n", format.Currency(mathutil.Round(r.Cesantias.Value)))
		_, _ = fmt.Fprintf(w, "Interest (%s)   | %s\n",
			format.Percentage(statutory.InterestRateOnSeverance, 0), format.Currency(mathutil.Round(r.Interest.Value)))
		_, _ = p.Fprintf(w, "Prima S1 (%d d)  | %s\n", r.Prima.Allocation.Semester1Days, format.Currency(mathutil.Round(r.Prima.Semester1)))
		_, _ = p.Fprintf(w, "Prima S2 (%d d)  | %s\n", r.Prima.Allocation.Semester2Days, format.Currency(mathutil.Round(r.Prima.Semester2)))
		_, _ = fmt.Fprintf(w, "Vacation         | %s\n", format.Currency(mathutil.Round(r.Vacation.Value)))
		_, _ = fmt.Fprintf(w, "Total            | %s\n", format.Currency(mathutil.Round(r.Total)))
		if i < len(results)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

func subsidyNote(r settlement.Settlement) string {
	if r.Base.TransportSubsidyEligible {
		return fmt.Sprintf(" (includes transport subsidy %s)", format.Currency(r.Base.TransportSubsidy))
	}
	return ""
}

// WriteCsv writes a header row and one row per settlement to w.
func WriteCsv(w io.Writer, results []settlement.Settlement) {
	header := []string{
		"name", "start", "end", "reference year", "days", "base",
		"cesantias", "interest", "prima s1", "prima s2", "vacation", "total",
	}
	_, _ = fmt.Fprintf(w, "%s\n", quoteAll(header))
	for _, r := range results {
		row := []string{
			r.Name,
			r.Period.Start.String(),
			r.Period.End.String(),
			fmt.Sprintf("%d", r.ReferenceYear),
			fmt.Sprintf("%d", r.Days),
			fixed(r.Base.Amount()),
			fixed(r.Cesantias.Value),
			fixed(r.Interest.Value),
			fixed(r.Prima.Semester1),
			fixed(r.Prima.Semester2),
			fixed(r.Vacation.Value),
			fixed(r.Total),
		}
		_, _ = fmt.Fprintf(w, "%s\n", quoteAll(row))
	}
}

func quoteAll(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(constants.CurrencyDecimalPlaces)
}

type jsonSettlement struct {
	Name                     string `json:"name"`
	StartDate                string `json:"startDate"`
	EndDate                  string `json:"endDate"`
	ReferenceYear            int    `json:"referenceYear"`
	Days                     int    `json:"days"`
	BaseSalary               string `json:"baseSalary"`
	TransportSubsidyIncluded bool   `json:"transportSubsidyIncluded"`
	Cesantias                string `json:"cesantias"`
	InterestBase             string `json:"interestBase"`
	Interest                 string `json:"interest"`
	Semester1Days            int    `json:"semester1Days"`
	Semester2Days            int    `json:"semester2Days"`
	PrimaSemester1           string `json:"primaSemester1"`
	PrimaSemester2           string `json:"primaSemester2"`
	Prima                    string `json:"prima"`
	Vacation                 string `json:"vacation"`
	Total                    string `json:"total"`
	Currency                 string `json:"currency"`
}

// WriteJSON writes the results to w as a JSON array. Amounts are rendered as
// fixed-point strings so no precision is lost to floating point.
func WriteJSON(w io.Writer, results []settlement.Settlement) error {
	out := make([]jsonSettlement, 0, len(results))
	for _, r := range results {
		out = append(out, jsonSettlement{
			Name:                     r.Name,
			StartDate:                r.Period.Start.String(),
			EndDate:                  r.Period.End.String(),
			ReferenceYear:            r.ReferenceYear,
			Days:                     r.Days,
			BaseSalary:               fixed(r.Base.Amount()),
			TransportSubsidyIncluded: r.Base.TransportSubsidyEligible,
			Cesantias:                fixed(r.Cesantias.Value),
			InterestBase:             fixed(r.InterestBase),
			Interest:                 fixed(r.Interest.Value),
			Semester1Days:            r.Prima.Allocation.Semester1Days,
			Semester2Days:            r.Prima.Allocation.Semester2Days,
			PrimaSemester1:           fixed(r.Prima.Semester1),
			PrimaSemester2:           fixed(r.Prima.Semester2),
			Prima:                    fixed(r.Prima.Total),
			Vacation:                 fixed(r.Vacation.Value),
			Total:                    fixed(r.Total),
			Currency:                 constants.CurrencyCode,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settlements: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing settlements: %w", err)
	}
	return nil
}
