package calculation

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// PMT computes the fixed monthly annuity payment for a principal at a given
// annual rate (in percent) over monthsRemaining months.
func PMT(principal, annualRatePercent decimal.Decimal, monthsRemaining int) decimal.Decimal {
	if monthsRemaining <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	months := decimal.NewFromInt(int64(monthsRemaining))
	r := annualRatePercent.Div(hundred).Div(twelve)
	if r.IsZero() {
		return principal.Div(months)
	}

	pow := one.Add(r).Pow(months)
	return principal.Mul(r).Mul(pow).Div(pow.Sub(one))
}
