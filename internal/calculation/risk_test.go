package calculation

import (
	"testing"

	"github.com/hartawan/finsim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRiskClassifier_ZeroBurnRateIsInfiniteRunway(t *testing.T) {
	c := NewRiskClassifier(domain.ScenarioNormal, -1)

	state := c.Analyze(0, decimal.NewFromInt(1000), decimal.NewFromInt(5000000), decimal.Zero, true, false)

	assert.True(t, state.LiquidityMonths.Equal(decimal.NewFromInt(999)))
	assert.Equal(t, domain.RiskLow, state.Level)
}

func TestRiskClassifier_UnemployedRunwayThresholds(t *testing.T) {
	c := NewRiskClassifier(domain.ScenarioUnemployed, 0)
	burn := decimal.NewFromInt(10000000)

	high := c.Analyze(20, decimal.NewFromInt(-10000000), decimal.NewFromInt(20000000), burn, false, false)
	assert.Equal(t, domain.RiskHigh, high.Level)
	assert.Equal(t, "Runway < 3mo (Unemployed)", high.Reason)

	medium := c.Analyze(21, decimal.NewFromInt(-10000000), decimal.NewFromInt(45000000), burn, false, false)
	assert.Equal(t, domain.RiskMedium, medium.Level)
	assert.Equal(t, "Runway < 6mo (Unemployed)", medium.Reason)

	low := c.Analyze(22, decimal.NewFromInt(-10000000), decimal.NewFromInt(90000000), burn, false, false)
	assert.Equal(t, domain.RiskLow, low.Level)
}

func TestRiskClassifier_SurvivalModePrecedesNegativeCashflow(t *testing.T) {
	c := NewRiskClassifier(domain.ScenarioUnemployed, 0)

	// Employed, positive cashflow, comfortable runway, but in survival mode.
	state := c.Analyze(5, decimal.NewFromInt(5000000), decimal.NewFromInt(100000000), decimal.NewFromInt(10000000), true, true)

	assert.Equal(t, domain.RiskMedium, state.Level)
	assert.Equal(t, "Survival Mode (Preparing)", state.Reason)
}

func TestRiskClassifier_CriticalPreLossRunway(t *testing.T) {
	c := NewRiskClassifier(domain.ScenarioUnemployed, 0)

	state := c.Analyze(5, decimal.NewFromInt(1000), decimal.NewFromInt(20000000), decimal.NewFromInt(10000000), true, true)

	assert.Equal(t, domain.RiskHigh, state.Level)
	assert.Equal(t, "Critical Pre-loss Runway", state.Reason)
}

func TestRiskClassifier_NegativeCashflowWhileEmployed(t *testing.T) {
	c := NewRiskClassifier(domain.ScenarioNormal, -1)
	burn := decimal.NewFromInt(10000000)

	medium := c.Analyze(10, decimal.NewFromInt(-500000), decimal.NewFromInt(45000000), burn, true, false)
	assert.Equal(t, domain.RiskMedium, medium.Level)
	assert.Equal(t, "Negative Cashflow", medium.Reason)

	high := c.Analyze(11, decimal.NewFromInt(-500000), decimal.NewFromInt(20000000), burn, true, false)
	assert.Equal(t, domain.RiskHigh, high.Level)
	assert.Equal(t, "High Burn Rate & Low Liquidity", high.Reason)
}

func TestRiskClassifier_FragileBufferOnlyAfterWarmup(t *testing.T) {
	c := NewRiskClassifier(domain.ScenarioNormal, -1)
	burn := decimal.NewFromInt(10000000)
	thinAssets := decimal.NewFromInt(5000000)

	early := c.Analyze(3, decimal.NewFromInt(1000), thinAssets, burn, true, false)
	assert.Equal(t, domain.RiskLow, early.Level, "Early months are exempt while buckets fill")

	late := c.Analyze(10, decimal.NewFromInt(1000), thinAssets, burn, true, false)
	assert.Equal(t, domain.RiskMedium, late.Level)
	assert.Equal(t, "Fragile (Buffer < 1mo)", late.Reason)
}

func TestRiskClassifier_BankruptcyLatchesAndDominates(t *testing.T) {
	c := NewRiskClassifier(domain.ScenarioUnemployed, 0)

	c.RegisterBankruptcy(30, "Jul 2028")
	c.RegisterBankruptcy(35, "Dec 2028")

	state := c.Analyze(31, decimal.NewFromInt(9999999), decimal.NewFromInt(900000000), decimal.NewFromInt(1), false, false)
	assert.Equal(t, domain.RiskHigh, state.Level)
	assert.Equal(t, "Bankrupt", state.Reason)
	assert.True(t, state.Bankrupt)
	assert.Equal(t, "Jul 2028", state.BankruptcyDate, "The first insolvent month wins")

	summary := c.Summary()
	assert.Equal(t, 30, summary.BankruptcyMonth)
	assert.Equal(t, domain.RiskHigh, summary.Level)
}

func TestRiskClassifier_WatermarkSkipsPreNotificationMonths(t *testing.T) {
	c := NewRiskClassifier(domain.ScenarioUnemployed, 12)
	burn := decimal.NewFromInt(10000000)

	// A thin month before notification must not set the watermark.
	c.Analyze(5, decimal.NewFromInt(1000), decimal.NewFromInt(10000000), burn, true, false)
	// After notification the watermark starts tracking.
	c.Analyze(14, decimal.NewFromInt(1000), decimal.NewFromInt(80000000), burn, true, true)

	summary := c.Summary()
	assert.True(t, summary.LowestLiquidityMonths.Equal(decimal.NewFromInt(8)),
		"got %s", summary.LowestLiquidityMonths.String())
}

func TestRiskClassifier_SummaryKeepsWorstLevelSeen(t *testing.T) {
	c := NewRiskClassifier(domain.ScenarioNormal, -1)
	burn := decimal.NewFromInt(10000000)

	c.Analyze(10, decimal.NewFromInt(-500000), decimal.NewFromInt(45000000), burn, true, false)
	// Recovery afterwards does not erase the worst observation.
	c.Analyze(11, decimal.NewFromInt(5000000), decimal.NewFromInt(500000000), burn, true, false)

	summary := c.Summary()
	assert.Equal(t, domain.RiskMedium, summary.Level)
	assert.Equal(t, "Negative Cashflow", summary.Reason)
}

func TestRiskClassifier_RobustRunDefaults(t *testing.T) {
	c := NewRiskClassifier(domain.ScenarioNormal, -1)

	c.Analyze(0, decimal.NewFromInt(5000000), decimal.NewFromInt(100000000), decimal.NewFromInt(10000000), true, false)

	summary := c.Summary()
	assert.Equal(t, domain.RiskLow, summary.Level)
	assert.Equal(t, "Financial plan is robust.", summary.Reason)
	assert.Equal(t, -1, summary.BankruptcyMonth)
	assert.Empty(t, summary.BankruptcyDate)
}
