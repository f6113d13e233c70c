package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/hartawan/finsim/internal/domain"
)

// CSVFormatter renders the month log as CSV, one row per simulated month.
type CSVFormatter struct{}

func (cf *CSVFormatter) Name() string { return "csv" }

// Format renders the month log.
func (cf *CSVFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"Month",
		"Date",
		"Income Base",
		"Income Bonus",
		"Total Expenses",
		"Mortgage Paid",
		"Mortgage Interest",
		"Mortgage Balance",
		"Rate",
		"Extra Payment",
		"Net Flow",
		"Buffer",
		"Emergency",
		"Extra Bucket",
		"Deposito Interest",
		"Risk",
		"Events",
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, rec := range result.Logs {
		row := []string{
			strconv.Itoa(rec.MonthIndex),
			rec.DateLabel,
			rec.IncomeBase.StringFixed(2),
			rec.IncomeBonus.StringFixed(2),
			rec.TotalExpenses.StringFixed(2),
			rec.MortgagePaid.StringFixed(2),
			rec.MortgageInterest.StringFixed(2),
			rec.MortgageBalance.StringFixed(2),
			rec.MortgageRate.String(),
			rec.ExtraPaymentMade.StringFixed(2),
			rec.NetFlow.StringFixed(2),
			rec.Buckets.Buffer.StringFixed(2),
			rec.Buckets.Emergency.StringFixed(2),
			rec.Buckets.Extra.StringFixed(2),
			rec.DepositoInterestEarned.StringFixed(2),
			string(rec.RiskLevel),
			strings.Join(rec.Events, "; "),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
