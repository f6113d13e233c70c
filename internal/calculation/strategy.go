package calculation

import (
	"fmt"

	"github.com/hartawan/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// bpjsMonthlyGrowthPercent is the fixed monthly yield on the BPJS
	// severance-savings balance while employed (5.7% annual).
	bpjsMonthlyGrowthPercent = decimal.NewFromFloat(5.7).Div(twelve)
	// bpjsContributionRate is the salary-proportional monthly contribution.
	bpjsContributionRate = decimal.NewFromFloat(0.057)
	// austerityMultiplier is the discretionary-spending cut applied during
	// survival mode and unemployment.
	austerityMultiplier = decimal.NewFromFloat(0.5)
)

// MonthContext is the per-month input to an employment strategy. The job-loss
// and notification offsets are precomputed at pass start so no date parsing
// happens inside the loop.
type MonthContext struct {
	MonthIndex        int
	YearIndex         int
	Income            domain.IncomeConfig
	JobLossMonth      int
	NotificationMonth int
}

// MonthIncome is what an employment strategy produced for one month.
type MonthIncome struct {
	BaseIncome        decimal.Decimal
	BonusIncome       decimal.Decimal
	ExpenseMultiplier decimal.Decimal
	Events            []string
	Employed          bool
	SurvivalMode      bool
	BPJSBalance       decimal.Decimal
}

// EmploymentStrategy generates monthly income and employment state. Variants
// are selected once at pass start; each pass owns its own instance.
type EmploymentStrategy interface {
	ProcessMonth(ctx MonthContext) MonthIncome
}

// NewEmploymentStrategy selects the strategy for a scenario type.
func NewEmploymentStrategy(scenario domain.ScenarioType, initialBPJS decimal.Decimal) EmploymentStrategy {
	if scenario.IsJobLoss() {
		return &JobLossStrategy{employmentState: employmentState{bpjs: initialBPJS, employed: true}}
	}
	return &NormalStrategy{employmentState: employmentState{bpjs: initialBPJS, employed: true}}
}

// employmentState is the shared mutable state of both strategy variants.
type employmentState struct {
	bpjs         decimal.Decimal
	employed     bool
	survivalMode bool
}

// earnEmployedMonth computes the grown salary and scheduled bonuses for one
// employed month and accrues the BPJS balance.
func (s *employmentState) earnEmployedMonth(ctx MonthContext) (base, bonus decimal.Decimal, events []string) {
	monthInYear := ctx.MonthIndex % 12
	growth := one.Add(ctx.Income.AnnualIncreasePercent.Div(hundred)).Pow(decimal.NewFromInt(int64(ctx.YearIndex)))
	salary := ctx.Income.BaseSalary.Mul(growth)

	base = salary
	if containsMonth(ctx.Income.THRMonths, monthInYear) {
		bonus = bonus.Add(salary)
		events = append(events, "THR")
	}
	if containsMonth(ctx.Income.CompensationMonths, monthInYear) {
		bonus = bonus.Add(salary)
		events = append(events, "Compensation")
	}

	s.bpjs = s.bpjs.Add(s.bpjs.Mul(bpjsMonthlyGrowthPercent.Div(hundred))).Add(salary.Mul(bpjsContributionRate))

	return base, bonus, events
}

// currentSalary is the grown base salary for a year index, used for severance.
func currentSalary(income domain.IncomeConfig, yearIndex int) decimal.Decimal {
	growth := one.Add(income.AnnualIncreasePercent.Div(hundred)).Pow(decimal.NewFromInt(int64(yearIndex)))
	return income.BaseSalary.Mul(growth)
}

func containsMonth(months []int, month int) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}

// NormalStrategy models uninterrupted employment: full salary, scheduled
// bonuses, no austerity.
type NormalStrategy struct {
	employmentState
}

func (s *NormalStrategy) ProcessMonth(ctx MonthContext) MonthIncome {
	base, bonus, events := s.earnEmployedMonth(ctx)
	return MonthIncome{
		BaseIncome:        base,
		BonusIncome:       bonus,
		ExpenseMultiplier: one,
		Events:            events,
		Employed:          true,
		SurvivalMode:      false,
		BPJSBalance:       s.bpjs,
	}
}

// JobLossStrategy models the notification → survival mode → job loss →
// severance → BPJS liquidation sequence. Discretionary spending is halved
// from the notification month onward and extra mortgage payments stop.
type JobLossStrategy struct {
	employmentState
	bpjsLiquidated bool
}

func (s *JobLossStrategy) ProcessMonth(ctx MonthContext) MonthIncome {
	var events []string
	base := decimal.Zero
	bonus := decimal.Zero
	multiplier := one

	if ctx.MonthIndex >= ctx.JobLossMonth {
		s.employed = false
	}
	if ctx.MonthIndex >= ctx.NotificationMonth && ctx.MonthIndex < ctx.JobLossMonth {
		if !s.survivalMode {
			events = append(events, "Notice Received: Survival Mode")
		}
		s.survivalMode = true
	}

	if s.employed {
		var earned []string
		base, bonus, earned = s.earnEmployedMonth(ctx)
		events = append(events, earned...)

		if s.survivalMode {
			multiplier = austerityMultiplier
			events = append(events, "Austerity")
		}
	} else {
		multiplier = austerityMultiplier
		events = append(events, "Austerity")

		if ctx.MonthIndex == ctx.JobLossMonth {
			severance := currentSalary(ctx.Income, ctx.YearIndex)
			bonus = bonus.Add(severance)
			events = append(events, "Job Loss Event", fmt.Sprintf("Severance Paid (+%s)", severance.StringFixed(0)))
		}

		if ctx.MonthIndex == ctx.JobLossMonth+1 && !s.bpjsLiquidated && s.bpjs.GreaterThan(decimal.Zero) {
			bonus = bonus.Add(s.bpjs)
			events = append(events, fmt.Sprintf("BPJS Liquidated (+%s)", s.bpjs.StringFixed(0)))
			s.bpjs = decimal.Zero
			s.bpjsLiquidated = true
		}
	}

	return MonthIncome{
		BaseIncome:        base,
		BonusIncome:       bonus,
		ExpenseMultiplier: multiplier,
		Events:            events,
		Employed:          s.employed,
		SurvivalMode:      s.survivalMode,
		BPJSBalance:       s.bpjs,
	}
}
