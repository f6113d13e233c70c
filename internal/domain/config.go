package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioType selects the employment trajectory simulated for the household.
type ScenarioType string

const (
	ScenarioNormal     ScenarioType = "NORMAL"
	ScenarioUnemployed ScenarioType = "UNEMPLOYED"
	ScenarioWorstCase  ScenarioType = "WORST_CASE"
)

// IsJobLoss reports whether the scenario includes a job-loss event.
func (s ScenarioType) IsJobLoss() bool {
	return s == ScenarioUnemployed || s == ScenarioWorstCase
}

// ExpenseCategory splits household spending into obligations and nice-to-haves.
// Only discretionary spending is reduced under austerity.
type ExpenseCategory string

const (
	CategoryMandatory     ExpenseCategory = "MANDATORY"
	CategoryDiscretionary ExpenseCategory = "DISCRETIONARY"
)

// ExpenseItem is a single recurring monthly expense with its own growth rate.
// Each item inflates by the greater of the global inflation rate and its
// specific annual increase.
type ExpenseItem struct {
	Name                  string          `yaml:"name" json:"name"`
	Category              ExpenseCategory `yaml:"category" json:"category"`
	Amount                decimal.Decimal `yaml:"amount" json:"amount"`
	AnnualIncreasePercent decimal.Decimal `yaml:"annual_increase_percent" json:"annual_increase_percent"`
}

// IncomeConfig describes household income: base salary with annual growth,
// the bonus calendars (THR and compensation, both 0-based months-in-year),
// and the starting balance of the BPJS severance-savings account.
type IncomeConfig struct {
	BaseSalary            decimal.Decimal `yaml:"base_salary" json:"base_salary"`
	AnnualIncreasePercent decimal.Decimal `yaml:"annual_increase_percent" json:"annual_increase_percent"`
	THRMonths             []int           `yaml:"thr_months" json:"thr_months"`
	CompensationMonths    []int           `yaml:"compensation_months" json:"compensation_months"`
	BPJSInitialBalance    decimal.Decimal `yaml:"bpjs_initial_balance" json:"bpjs_initial_balance"`
}

// InterestRateTier is one step of the mortgage rate schedule. StartMonth and
// EndMonth are 1-based and inclusive.
type InterestRateTier struct {
	StartMonth int             `yaml:"start_month" json:"start_month"`
	EndMonth   int             `yaml:"end_month" json:"end_month"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
}

// MortgageConfig describes the loan and the household's prepayment policy.
type MortgageConfig struct {
	Principal               decimal.Decimal    `yaml:"principal" json:"principal"`
	StartDate               string             `yaml:"start_date" json:"start_date"` // ISO date, e.g. 2026-01-01
	TenureYears             int                `yaml:"tenure_years" json:"tenure_years"`
	PenaltyPercent          decimal.Decimal    `yaml:"penalty_percent" json:"penalty_percent"`
	ExtraPaymentMinMultiple decimal.Decimal    `yaml:"extra_payment_min_multiple" json:"extra_payment_min_multiple"`
	UseDeposito             bool               `yaml:"use_deposito" json:"use_deposito"`
	Rates                   []InterestRateTier `yaml:"rates" json:"rates"`
}

// MacroConfig holds economy-wide assumptions.
type MacroConfig struct {
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
}

// RiskSettings carries the scenario-specific calendar dates. They are kept as
// strings and converted to month offsets once at pass start; an unparsable
// date is treated as already elapsed rather than failing the run.
type RiskSettings struct {
	JobLossDate      string `yaml:"job_loss_date" json:"job_loss_date"`
	NotificationDate string `yaml:"notification_date" json:"notification_date"`
}

// Configuration is the complete input for one simulation run.
type Configuration struct {
	Expenses     []ExpenseItem  `yaml:"expenses" json:"expenses"`
	Income       IncomeConfig   `yaml:"income" json:"income"`
	Mortgage     MortgageConfig `yaml:"mortgage" json:"mortgage"`
	Macro        MacroConfig    `yaml:"macro" json:"macro"`
	Scenario     ScenarioType   `yaml:"scenario" json:"scenario"`
	RiskSettings RiskSettings   `yaml:"risk_settings" json:"risk_settings"`
}
