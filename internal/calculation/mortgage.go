package calculation

import (
	"github.com/hartawan/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// defaultRatePercent is the fallback annual rate when no tier covers a month
// and no tiers exist at all.
var defaultRatePercent = decimal.NewFromInt(12)

// dustThreshold closes out residual balances too small to amortize.
var dustThreshold = decimal.NewFromInt(10000)

// PaymentResult is the outcome of one amortization month.
type PaymentResult struct {
	Installment      decimal.Decimal
	PrincipalPaid    decimal.Decimal
	InterestPaid     decimal.Decimal
	RemainingBalance decimal.Decimal
	CurrentRate      decimal.Decimal
	ExtraPayment     decimal.Decimal
	RateChanged      bool
	PaidOff          bool
	Event            *domain.YearEvent
}

// MortgageStatus exposes the engine's internal balances for logging and
// target calculations.
type MortgageStatus struct {
	Balance             decimal.Decimal
	BaselineInstallment decimal.Decimal
	CurrentInstallment  decimal.Decimal
	InterestSaved       decimal.Decimal
}

// AmortizationEngine owns the mortgage state of a single pass: the real loan
// with opportunistic extra payments, and a baseline shadow loan that is never
// prepaid, kept purely to measure interest saved.
type AmortizationEngine struct {
	cfg             domain.MortgageConfig
	principal       decimal.Decimal
	monthsRemaining int
	installment     decimal.Decimal

	baselinePrincipal   decimal.Decimal
	baselineInstallment decimal.Decimal

	interestSaved decimal.Decimal
}

// NewAmortizationEngine creates the engine with the installment computed from
// the first tier's rate over the full tenure.
func NewAmortizationEngine(cfg domain.MortgageConfig) *AmortizationEngine {
	e := &AmortizationEngine{
		cfg:               cfg,
		principal:         cfg.Principal,
		monthsRemaining:   cfg.TenureYears * 12,
		baselinePrincipal: cfg.Principal,
	}
	e.baselineInstallment = PMT(cfg.Principal, e.rateFor(0), e.monthsRemaining)
	e.installment = e.baselineInstallment
	return e
}

// Status returns the current balances.
func (e *AmortizationEngine) Status() MortgageStatus {
	return MortgageStatus{
		Balance:             e.principal,
		BaselineInstallment: e.baselineInstallment,
		CurrentInstallment:  e.installment,
		InterestSaved:       e.interestSaved,
	}
}

// rateFor returns the annual rate (percent) for a 0-based month index. When
// no tier covers the month the last configured tier applies, or 12% when the
// schedule is empty.
func (e *AmortizationEngine) rateFor(monthIndex int) decimal.Decimal {
	monthNum := monthIndex + 1
	for _, tier := range e.cfg.Rates {
		if monthNum >= tier.StartMonth && monthNum <= tier.EndMonth {
			return tier.Rate
		}
	}
	if n := len(e.cfg.Rates); n > 0 {
		return e.cfg.Rates[n-1].Rate
	}
	return defaultRatePercent
}

// ProcessMonth advances both loans by one month and, on loan anniversaries,
// applies the extra-payment bucket against the principal when permitted.
func (e *AmortizationEngine) ProcessMonth(monthIndex int, extraBucketBalance decimal.Decimal, canMakeExtraPayment bool, yearIndex int) PaymentResult {
	rateChanged := monthIndex > 0 && !e.rateFor(monthIndex).Equal(e.rateFor(monthIndex-1))

	// Baseline shadow loan first, so interest-saved accounting always has a
	// never-prepaid trajectory to compare against.
	if e.baselinePrincipal.GreaterThan(decimal.Zero) {
		if rateChanged {
			e.baselineInstallment = PMT(e.baselinePrincipal, e.rateFor(monthIndex), e.monthsRemaining)
		}
		blRate := e.rateFor(monthIndex).Div(hundred).Div(twelve)
		blInterest := e.baselinePrincipal.Mul(blRate)
		blPayment := decimal.Min(e.baselineInstallment, e.baselinePrincipal.Add(blInterest))
		e.baselinePrincipal = e.baselinePrincipal.Sub(blPayment.Sub(blInterest))
	}

	if e.principal.LessThanOrEqual(decimal.Zero) {
		e.principal = decimal.Zero
		return PaymentResult{PaidOff: true}
	}

	// Residual dust: force payoff instead of amortizing pennies forever.
	if e.principal.LessThan(dustThreshold) {
		e.principal = decimal.Zero
		return PaymentResult{PaidOff: true}
	}

	currentRate := e.rateFor(monthIndex)
	monthlyRate := currentRate.Div(hundred).Div(twelve)

	if rateChanged {
		e.installment = PMT(e.principal, currentRate, e.monthsRemaining)
	}

	interestPaid := e.principal.Mul(monthlyRate)
	// The installment is fixed but the final payment is capped at the exact
	// remaining debt.
	actualPayment := decimal.Min(e.installment, e.principal.Add(interestPaid))
	principalPaid := actualPayment.Sub(interestPaid)

	e.principal = e.principal.Sub(principalPaid)
	if e.principal.LessThan(decimal.Zero) {
		e.principal = decimal.Zero
	}
	e.monthsRemaining--

	var extraPayment decimal.Decimal
	var event *domain.YearEvent
	if monthIndex > 0 && monthIndex%12 == 0 && e.principal.GreaterThan(decimal.Zero) && canMakeExtraPayment {
		minExtra := e.cfg.ExtraPaymentMinMultiple.Mul(e.installment)

		if extraBucketBalance.GreaterThanOrEqual(minExtra) {
			amount := extraBucketBalance
			penalty := amount.Mul(e.cfg.PenaltyPercent.Div(hundred))
			netReduction := decimal.Min(amount.Sub(penalty), e.principal)

			installmentBefore := e.installment

			e.principal = e.principal.Sub(netReduction)
			extraPayment = amount

			// A partial prepayment shortens the effective schedule; the
			// recomputed installment must never exceed the pre-payment one.
			newInstallment := PMT(e.principal, currentRate, e.monthsRemaining)
			e.installment = decimal.Min(installmentBefore, newInstallment)

			saved := decimal.Max(decimal.Zero,
				installmentBefore.Sub(e.installment).
					Mul(decimal.NewFromInt(int64(e.monthsRemaining))).
					Sub(netReduction))
			e.interestSaved = e.interestSaved.Add(saved)

			event = &domain.YearEvent{
				Year:              yearIndex,
				ExtraPaymentPaid:  amount,
				PenaltyPaid:       penalty,
				PrincipalReduced:  netReduction,
				InstallmentBefore: installmentBefore,
				InstallmentAfter:  e.installment,
				InterestSaved:     saved,
			}
		}
	}

	return PaymentResult{
		Installment:      actualPayment,
		PrincipalPaid:    principalPaid,
		InterestPaid:     interestPaid,
		RemainingBalance: e.principal,
		CurrentRate:      currentRate,
		ExtraPayment:     extraPayment,
		RateChanged:      rateChanged,
		PaidOff:          e.principal.LessThanOrEqual(decimal.Zero),
		Event:            event,
	}
}
