package calculation

import (
	"testing"

	"github.com/hartawan/finsim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testExpenses() []domain.ExpenseItem {
	return []domain.ExpenseItem{
		{Name: "Groceries", Category: domain.CategoryMandatory, Amount: decimal.NewFromInt(4000000), AnnualIncreasePercent: decimal.NewFromInt(4)},
		{Name: "Utilities", Category: domain.CategoryMandatory, Amount: decimal.NewFromInt(1500000), AnnualIncreasePercent: decimal.NewFromInt(3)},
		{Name: "Entertainment", Category: domain.CategoryDiscretionary, Amount: decimal.NewFromInt(2000000), AnnualIncreasePercent: decimal.NewFromInt(2)},
	}
}

func TestExpenseProjector_YearZero(t *testing.T) {
	p := NewExpenseProjector(testExpenses(), domain.MacroConfig{InflationRate: decimal.NewFromInt(4)})

	res := p.Calculate(0, one)

	assert.True(t, res.MandatoryTotal.Equal(decimal.NewFromInt(5500000)), "Year zero mandatory should be nominal, got %s", res.MandatoryTotal)
	assert.True(t, res.DiscretionaryTotal.Equal(decimal.NewFromInt(2000000)), "Year zero discretionary should be nominal")
	assert.True(t, res.Total.Equal(decimal.NewFromInt(7500000)), "Total should be the sum")
}

func TestExpenseProjector_EffectiveRateIsMaxOfGlobalAndSpecific(t *testing.T) {
	// Global inflation at 4% dominates the 3% and 2% item rates; the 6% item
	// rate dominates inflation.
	items := []domain.ExpenseItem{
		{Name: "Slow", Category: domain.CategoryMandatory, Amount: decimal.NewFromInt(1000000), AnnualIncreasePercent: decimal.NewFromInt(2)},
		{Name: "Fast", Category: domain.CategoryMandatory, Amount: decimal.NewFromInt(1000000), AnnualIncreasePercent: decimal.NewFromInt(6)},
	}
	p := NewExpenseProjector(items, domain.MacroConfig{InflationRate: decimal.NewFromInt(4)})

	res := p.Calculate(1, one)

	want := decimal.NewFromInt(1040000).Add(decimal.NewFromInt(1060000))
	assert.True(t, res.MandatoryTotal.Sub(want).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"Each item should grow at max(inflation, specific), got %s", res.MandatoryTotal)
}

func TestExpenseProjector_AusterityHitsDiscretionaryOnly(t *testing.T) {
	p := NewExpenseProjector(testExpenses(), domain.MacroConfig{InflationRate: decimal.NewFromInt(4)})

	full := p.Calculate(0, one)
	halved := p.Calculate(0, decimal.NewFromFloat(0.5))

	assert.True(t, halved.MandatoryTotal.Equal(full.MandatoryTotal), "Mandatory spending should be untouched")
	assert.True(t, halved.DiscretionaryTotal.Equal(full.DiscretionaryTotal.Div(decimal.NewFromInt(2))),
		"Discretionary spending should be halved")
}

func TestExpenseProjector_CompoundsOverYears(t *testing.T) {
	items := []domain.ExpenseItem{
		{Name: "Rent", Category: domain.CategoryMandatory, Amount: decimal.NewFromInt(1000000), AnnualIncreasePercent: decimal.Zero},
	}
	p := NewExpenseProjector(items, domain.MacroConfig{InflationRate: decimal.NewFromInt(10)})

	res := p.Calculate(2, one)

	assert.True(t, res.Total.Sub(decimal.NewFromInt(1210000)).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"Two years at 10%% should compound to 1.21x, got %s", res.Total)
}
