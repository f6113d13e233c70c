package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hartawan/finsim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *domain.SimulationResult {
	bufferMonth := 4
	emergencyMonth := 9
	return &domain.SimulationResult{
		Logs: []domain.MonthRecord{
			{
				MonthIndex:       0,
				DateLabel:        "Jan 2026",
				Year:             2026,
				IncomeBase:       decimal.NewFromInt(25000000),
				TotalExpenses:    decimal.NewFromInt(8500000),
				MortgagePaid:     decimal.NewFromInt(5778171),
				MortgageInterest: decimal.NewFromInt(2433333),
				MortgageBalance:  decimal.NewFromInt(796655162),
				MortgageRate:     decimal.NewFromFloat(3.65),
				NetFlow:          decimal.NewFromInt(10721829),
				Buckets:          domain.BucketState{Buffer: decimal.NewFromInt(10721829)},
				RiskLevel:        domain.RiskLow,
				Events:           []string{"THR"},
			},
		},
		YearLogs: []domain.YearEvent{
			{
				Year:              1,
				ExtraPaymentPaid:  decimal.NewFromInt(62770496),
				PenaltyPaid:       decimal.NewFromInt(627704),
				PrincipalReduced:  decimal.NewFromInt(62142792),
				InstallmentBefore: decimal.NewFromInt(5778171),
				InstallmentAfter:  decimal.NewFromInt(5303029),
				InterestSaved:     decimal.NewFromInt(17239000),
			},
		},
		Summary: domain.Summary{
			MonthsToFullBuffer:    &bufferMonth,
			MonthsToFullEmergency: &emergencyMonth,
			MortgagePayoffDate:    "Mar 2037",
			TotalInterestPaid:     decimal.NewFromInt(298745123),
			TotalInterestSaved:    decimal.NewFromInt(54200000),
			LowestLiquidityMonths: decimal.NewFromFloat(7.3),
			RiskLevel:             domain.RiskLow,
			RiskReason:            "Financial plan is robust.",
			PurchasingPowerLoss:   decimal.NewFromFloat(119.1),
		},
		ImpactAnalysis: domain.ImpactAnalysis{
			NetBenefit:  decimal.NewFromInt(25000000),
			MonthsSaved: 4,
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	assert.IsType(t, &ConsoleFormatter{}, GetFormatterByName("table"))
	assert.IsType(t, &ConsoleFormatter{}, GetFormatterByName("console"))
	assert.IsType(t, &JSONFormatter{}, GetFormatterByName("JSON"))
	assert.IsType(t, &CSVFormatter{}, GetFormatterByName("csv"))
	assert.Nil(t, GetFormatterByName("xlsx"))
}

func TestConsoleFormatter_RendersSummaryAndEvents(t *testing.T) {
	f := &ConsoleFormatter{}

	out, err := f.Format(sampleResult())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "Risk Level:              LOW")
	assert.Contains(t, text, "Financial plan is robust.")
	assert.Contains(t, text, "Buffer Full:             month 4")
	assert.Contains(t, text, "Mortgage Payoff:         Mar 2037")
	assert.Contains(t, text, "298,745,123")
	assert.Contains(t, text, "EXTRA PAYMENT EVENTS")
	assert.Contains(t, text, "62,770,496")
	assert.Contains(t, text, "Months Saved on Payoff:  4")
}

func TestConsoleFormatter_HandlesUnreachedMilestones(t *testing.T) {
	f := &ConsoleFormatter{}
	result := sampleResult()
	result.Summary.MonthsToFullBuffer = nil
	result.Summary.MortgagePayoffDate = ""
	result.Summary.BankruptcyDate = "Jul 2029"
	result.YearLogs = nil

	out, err := f.Format(result)
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "Buffer Full:             not reached")
	assert.Contains(t, text, "never (within horizon)")
	assert.Contains(t, text, "Bankruptcy:              Jul 2029")
	assert.NotContains(t, text, "EXTRA PAYMENT EVENTS")
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	f := &JSONFormatter{Pretty: true}

	out, err := f.Format(sampleResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "logs")
	assert.Contains(t, decoded, "impactAnalysis")
}

func TestCSVFormatter_OneRowPerMonth(t *testing.T) {
	f := &CSVFormatter{}

	out, err := f.Format(sampleResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2, "Header plus one month row")
	assert.True(t, strings.HasPrefix(lines[0], "Month,Date,"))
	assert.Contains(t, lines[1], "Jan 2026")
	assert.Contains(t, lines[1], "THR")
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(decimal.Zero))
	assert.Equal(t, "999", groupThousands(decimal.NewFromInt(999)))
	assert.Equal(t, "1,000", groupThousands(decimal.NewFromInt(1000)))
	assert.Equal(t, "800,000,000", groupThousands(decimal.NewFromInt(800000000)))
	assert.Equal(t, "-5,778,171", groupThousands(decimal.NewFromInt(-5778171)))
}
