package domain

import "github.com/shopspring/decimal"

// DefaultConfiguration returns a ready-to-run configuration for a typical
// household: four expense items, a tiered 15-year mortgage and a job-loss
// calendar about eighteen months in. Used by the CLI when no input file is
// given and by tests.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Expenses: []ExpenseItem{
			{Name: "Groceries", Category: CategoryMandatory, Amount: decimal.NewFromInt(4000000), AnnualIncreasePercent: decimal.NewFromInt(4)},
			{Name: "Utilities", Category: CategoryMandatory, Amount: decimal.NewFromInt(1500000), AnnualIncreasePercent: decimal.NewFromInt(3)},
			{Name: "Transport", Category: CategoryMandatory, Amount: decimal.NewFromInt(1000000), AnnualIncreasePercent: decimal.NewFromInt(3)},
			{Name: "Entertainment", Category: CategoryDiscretionary, Amount: decimal.NewFromInt(2000000), AnnualIncreasePercent: decimal.NewFromInt(2)},
		},
		Income: IncomeConfig{
			BaseSalary:            decimal.NewFromInt(25000000),
			AnnualIncreasePercent: decimal.NewFromInt(5),
			THRMonths:             []int{2},
			CompensationMonths:    []int{3},
			BPJSInitialBalance:    decimal.NewFromInt(15000000),
		},
		Mortgage: MortgageConfig{
			Principal:               decimal.NewFromInt(800000000),
			StartDate:               "2026-01-01",
			TenureYears:             15,
			PenaltyPercent:          decimal.NewFromInt(1),
			ExtraPaymentMinMultiple: decimal.NewFromInt(6),
			UseDeposito:             true,
			Rates: []InterestRateTier{
				{StartMonth: 1, EndMonth: 24, Rate: decimal.NewFromFloat(3.65)},
				{StartMonth: 25, EndMonth: 60, Rate: decimal.NewFromFloat(7.65)},
				{StartMonth: 61, EndMonth: 120, Rate: decimal.NewFromFloat(9.65)},
				{StartMonth: 121, EndMonth: 360, Rate: decimal.NewFromInt(11)},
			},
		},
		Macro: MacroConfig{
			InflationRate: decimal.NewFromInt(4),
		},
		Scenario: ScenarioNormal,
		RiskSettings: RiskSettings{
			JobLossDate:      "2027-06-01",
			NotificationDate: "2027-03-01",
		},
	}
}
