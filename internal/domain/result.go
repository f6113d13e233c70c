package domain

import (
	"github.com/shopspring/decimal"
)

// RiskLevel classifies one month (or a whole run) by liquidity risk.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Severity orders risk levels for worst-case tracking.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}

// BucketState holds the four liquidity bucket balances. All balances are
// non-negative by invariant; draws are clamped to the available balance.
type BucketState struct {
	Buffer    decimal.Decimal `json:"buffer"`
	Emergency decimal.Decimal `json:"emergency"`
	Extra     decimal.Decimal `json:"extra"`
	Deposito  decimal.Decimal `json:"deposito"`
}

// Total returns the combined liquid assets across all buckets.
func (b BucketState) Total() decimal.Decimal {
	return b.Buffer.Add(b.Emergency).Add(b.Extra).Add(b.Deposito)
}

// MonthRecord is one immutable snapshot per simulated month. Records are
// appended in order and never mutated after creation.
type MonthRecord struct {
	MonthIndex int    `json:"monthIndex"`
	DateLabel  string `json:"dateLabel"`
	Year       int    `json:"year"`

	IncomeBase  decimal.Decimal `json:"incomeBase"`
	IncomeBonus decimal.Decimal `json:"incomeBonus"`
	TotalIncome decimal.Decimal `json:"totalIncome"`

	ExpensesMandatory     decimal.Decimal `json:"expensesMandatory"`
	ExpensesDiscretionary decimal.Decimal `json:"expensesDiscretionary"`
	TotalExpenses         decimal.Decimal `json:"totalExpenses"`

	MortgagePaid          decimal.Decimal `json:"mortgagePaid"`
	MortgageInterest      decimal.Decimal `json:"mortgageInterest"`
	MortgagePrincipalPaid decimal.Decimal `json:"mortgagePrincipalPaid"`
	MortgageBalance       decimal.Decimal `json:"mortgageBalance"`
	MortgageRate          decimal.Decimal `json:"mortgageRate"`
	PrincipalAfterRegular decimal.Decimal `json:"principalAfterRegular"`
	ExtraPaymentMade      decimal.Decimal `json:"extraPaymentMade"`
	InstallmentBaseline   decimal.Decimal `json:"installmentBaseline"`
	InstallmentCurrent    decimal.Decimal `json:"installmentCurrent"`
	InstallmentNext       decimal.Decimal `json:"installmentNext"`

	NetFlow decimal.Decimal `json:"netFlow"`
	Buckets BucketState     `json:"buckets"`

	BPJSBalance decimal.Decimal `json:"bpjsBalance"`

	Events    []string  `json:"events"`
	RiskLevel RiskLevel `json:"riskLevel"`
	Bankrupt  bool      `json:"bankrupt"`

	DepositoInterestEarned     decimal.Decimal `json:"depositoInterestEarned"`
	CumulativeDepositoInterest decimal.Decimal `json:"cumulativeDepositoInterest"`
}

// YearEvent records one realized extra-payment event.
type YearEvent struct {
	Year              int             `json:"year"`
	ExtraPaymentPaid  decimal.Decimal `json:"extraPaymentPaid"`
	PenaltyPaid       decimal.Decimal `json:"penaltyPaid"`
	PrincipalReduced  decimal.Decimal `json:"principalReduced"`
	InstallmentBefore decimal.Decimal `json:"installmentBefore"`
	InstallmentAfter  decimal.Decimal `json:"installmentAfter"`
	InterestSaved     decimal.Decimal `json:"interestSaved"`
}

// Summary aggregates a whole pass.
type Summary struct {
	MonthsToFullBuffer    *int            `json:"monthsToFullBuffer"`
	MonthsToFullEmergency *int            `json:"monthsToFullEmergency"`
	MortgagePayoffDate    string          `json:"mortgagePayoffDate,omitempty"`
	TotalInterestPaid     decimal.Decimal `json:"totalInterestPaid"`
	TotalInterestSaved    decimal.Decimal `json:"totalInterestSaved"`
	LowestLiquidityMonths decimal.Decimal `json:"lowestLiquidityMonths"`
	RiskLevel             RiskLevel       `json:"riskLevel"`
	RiskReason            string          `json:"riskReason"`
	PurchasingPowerLoss   decimal.Decimal `json:"purchasingPowerLoss"`
	MaxJobSearchMonths    *int            `json:"maxJobSearchMonths"`
	BankruptcyDate        string          `json:"bankruptcyDate,omitempty"`
}

// PayoffNever is the payoff-month sentinel for a loan that is still open at
// the end of the horizon.
const PayoffNever = 9999

// StrategySnapshot captures the figures of one pass that feed the
// cash-vs-deposito comparison. PayoffMonthIndex is the 0-based simulation
// month of payoff, or PayoffNever, so it compares ordinally against the
// sentinel and differences are month counts.
type StrategySnapshot struct {
	TotalAssetInterest        decimal.Decimal `json:"totalAssetInterest"`
	TotalMortgageInterestPaid decimal.Decimal `json:"totalMortgageInterestPaid"`
	PayoffDate                string          `json:"payoffDate,omitempty"`
	PayoffMonthIndex          int             `json:"payoffMonthIndex"`
}

// ImpactAnalysis compares the cash-only trajectory with the interest-bearing
// (deposito) trajectory. Exactly one of the two is the caller's main run; the
// other is the shadow pass.
type ImpactAnalysis struct {
	CashStrategy         StrategySnapshot `json:"cashStrategy"`
	DepositoStrategy     StrategySnapshot `json:"depositoStrategy"`
	NetBenefit           decimal.Decimal  `json:"netBenefit"`
	MonthsSaved          int              `json:"monthsSaved"`
	PayoffAchievedFaster bool             `json:"payoffAchievedFaster"`
}

// SimulationResult is the sole output of a run, fully owned by the caller.
type SimulationResult struct {
	Logs           []MonthRecord  `json:"logs"`
	YearLogs       []YearEvent    `json:"yearLogs"`
	Summary        Summary        `json:"summary"`
	ImpactAnalysis ImpactAnalysis `json:"impactAnalysis"`
}
