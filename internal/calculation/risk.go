package calculation

import (
	"github.com/hartawan/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// infiniteRunway is the sentinel liquidity runway when the burn rate is zero.
var infiniteRunway = decimal.NewFromInt(999)

// RiskState is the per-month risk assessment.
type RiskState struct {
	LiquidityMonths decimal.Decimal
	Level           domain.RiskLevel
	Reason          string
	Bankrupt        bool
	BankruptcyDate  string
}

// RiskSummary is the whole-run view used by the statistics aggregator.
type RiskSummary struct {
	LowestLiquidityMonths decimal.Decimal
	Level                 domain.RiskLevel
	Reason                string
	BankruptcyDate        string
	BankruptcyMonth       int // -1 when no bankruptcy occurred
}

// RiskClassifier tracks per-month risk, the single worst level seen across
// the run, the minimum liquidity watermark and the bankruptcy latch.
type RiskClassifier struct {
	scenario          domain.ScenarioType
	notificationMonth int

	lowestLiquidity decimal.Decimal
	maxSeverity     int
	maxReason       string

	bankrupt        bool
	bankruptcyMonth int
	bankruptcyDate  string
}

// NewRiskClassifier creates a classifier for one pass.
func NewRiskClassifier(scenario domain.ScenarioType, notificationMonth int) *RiskClassifier {
	return &RiskClassifier{
		scenario:          scenario,
		notificationMonth: notificationMonth,
		lowestLiquidity:   infiniteRunway,
		maxReason:         "Financial plan is robust.",
		bankruptcyMonth:   -1,
	}
}

// Analyze classifies one month. Precedence: bankruptcy, unemployment runway,
// survival mode, negative cashflow while employed, fragile buffer, low.
func (c *RiskClassifier) Analyze(monthIndex int, netFlow, totalLiquidAssets, monthlyBurnRate decimal.Decimal, employed, survivalMode bool) RiskState {
	liquidityMonths := infiniteRunway
	if monthlyBurnRate.GreaterThan(decimal.Zero) {
		liquidityMonths = totalLiquidAssets.Div(monthlyBurnRate)
	}

	// The watermark only counts from the notification month onward for
	// job-loss scenarios; the normal scenario tracks the whole run.
	if c.scenario != domain.ScenarioNormal && (monthIndex >= c.notificationMonth || c.notificationMonth == -1) {
		if liquidityMonths.LessThan(c.lowestLiquidity) {
			c.lowestLiquidity = liquidityMonths
		}
	} else if c.scenario == domain.ScenarioNormal && liquidityMonths.LessThan(c.lowestLiquidity) {
		c.lowestLiquidity = liquidityMonths
	}

	level := domain.RiskLow
	reason := ""
	three := decimal.NewFromInt(3)
	six := decimal.NewFromInt(6)

	switch {
	case c.bankrupt:
		level, reason = domain.RiskHigh, "Bankrupt"
	case !employed:
		if liquidityMonths.LessThan(three) {
			level, reason = domain.RiskHigh, "Runway < 3mo (Unemployed)"
		} else if liquidityMonths.LessThan(six) {
			level, reason = domain.RiskMedium, "Runway < 6mo (Unemployed)"
		}
	case survivalMode:
		if liquidityMonths.LessThan(three) {
			level, reason = domain.RiskHigh, "Critical Pre-loss Runway"
		} else {
			level, reason = domain.RiskMedium, "Survival Mode (Preparing)"
		}
	case netFlow.LessThan(decimal.Zero):
		if liquidityMonths.LessThan(three) {
			level, reason = domain.RiskHigh, "High Burn Rate & Low Liquidity"
		} else if liquidityMonths.LessThan(six) {
			level, reason = domain.RiskMedium, "Negative Cashflow"
		}
	default:
		if liquidityMonths.LessThan(one) && monthIndex > 6 {
			level, reason = domain.RiskMedium, "Fragile (Buffer < 1mo)"
		}
	}

	if severity := level.Severity(); severity > c.maxSeverity {
		c.maxSeverity = severity
		c.maxReason = reason
	}

	return RiskState{
		LiquidityMonths: liquidityMonths,
		Level:           level,
		Reason:          reason,
		Bankrupt:        c.bankrupt,
		BankruptcyDate:  c.bankruptcyDate,
	}
}

// RegisterBankruptcy latches the first insolvent month; later calls are
// ignored so the triggering month survives.
func (c *RiskClassifier) RegisterBankruptcy(monthIndex int, dateLabel string) {
	if c.bankrupt {
		return
	}
	c.bankrupt = true
	c.bankruptcyMonth = monthIndex
	c.bankruptcyDate = dateLabel
}

// Summary returns the whole-run risk view.
func (c *RiskClassifier) Summary() RiskSummary {
	level := domain.RiskLow
	switch {
	case c.bankrupt, c.maxSeverity == 2:
		level = domain.RiskHigh
	case c.maxSeverity == 1:
		level = domain.RiskMedium
	}

	return RiskSummary{
		LowestLiquidityMonths: c.lowestLiquidity,
		Level:                 level,
		Reason:                c.maxReason,
		BankruptcyDate:        c.bankruptcyDate,
		BankruptcyMonth:       c.bankruptcyMonth,
	}
}
