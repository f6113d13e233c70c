package calculation

import (
	"github.com/hartawan/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// ExpenseResult is the inflated monthly spend for one simulated month.
type ExpenseResult struct {
	MandatoryTotal     decimal.Decimal
	DiscretionaryTotal decimal.Decimal
	Total              decimal.Decimal
}

// ExpenseProjector inflates the expense list year over year. Each item grows
// at the greater of the global inflation rate and its own increase rate; the
// austerity multiplier applies to discretionary items only.
type ExpenseProjector struct {
	expenses []domain.ExpenseItem
	macro    domain.MacroConfig
}

// NewExpenseProjector creates an expense projector.
func NewExpenseProjector(expenses []domain.ExpenseItem, macro domain.MacroConfig) *ExpenseProjector {
	return &ExpenseProjector{expenses: expenses, macro: macro}
}

// Calculate returns the inflated totals for the given year index.
func (p *ExpenseProjector) Calculate(yearIndex int, austerityMultiplier decimal.Decimal) ExpenseResult {
	mandatory := decimal.Zero
	discretionary := decimal.Zero
	years := decimal.NewFromInt(int64(yearIndex))

	for _, item := range p.expenses {
		effectiveRate := decimal.Max(p.macro.InflationRate, item.AnnualIncreasePercent)
		inflated := item.Amount.Mul(one.Add(effectiveRate.Div(hundred)).Pow(years))

		if item.Category == domain.CategoryMandatory {
			mandatory = mandatory.Add(inflated)
		} else {
			discretionary = discretionary.Add(inflated)
		}
	}

	discretionary = discretionary.Mul(austerityMultiplier)

	return ExpenseResult{
		MandatoryTotal:     mandatory,
		DiscretionaryTotal: discretionary,
		Total:              mandatory.Add(discretionary),
	}
}
