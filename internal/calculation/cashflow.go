package calculation

import (
	"github.com/hartawan/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// depositoAnnualRatePercent is the yield earned on the extra-payment bucket
// while the interest-bearing policy is enabled.
var depositoAnnualRatePercent = decimal.NewFromInt(6)

// bankruptcyTolerance absorbs sub-cent residue from decimal division so a
// fully drained month is not misreported as insolvency.
var bankruptcyTolerance = decimal.NewFromFloat(0.01)

// oneUnit is the tolerance for treating the buffer as at-target before
// emergency fills begin.
var oneUnit = decimal.NewFromInt(1)

// BucketTargets are the fill levels for the buffer and emergency buckets in a
// given month.
type BucketTargets struct {
	Buffer    decimal.Decimal
	Emergency decimal.Decimal
}

// AllocationResult reports one month of waterfall allocation.
type AllocationResult struct {
	NetFlow                decimal.Decimal
	Buckets                domain.BucketState
	DepositoInterestEarned decimal.Decimal
	Bankruptcy             bool
}

// CashAllocationEngine owns the four liquidity buckets of a single pass. A
// surplus fills buffer, then emergency, then overflows to the extra-payment
// bucket; a deficit drains extra, deposito, emergency, buffer in that order.
type CashAllocationEngine struct {
	useDeposito bool

	buffer    decimal.Decimal
	emergency decimal.Decimal
	extra     decimal.Decimal
	deposito  decimal.Decimal

	cumulativeInterest decimal.Decimal
}

// NewCashAllocationEngine creates an allocator with all buckets empty.
func NewCashAllocationEngine(useDeposito bool) *CashAllocationEngine {
	return &CashAllocationEngine{useDeposito: useDeposito}
}

// Buckets returns the current balances.
func (e *CashAllocationEngine) Buckets() domain.BucketState {
	return domain.BucketState{
		Buffer:    e.buffer,
		Emergency: e.emergency,
		Extra:     e.extra,
		Deposito:  e.deposito,
	}
}

// CumulativeInterest returns the total deposito interest accrued so far.
func (e *CashAllocationEngine) CumulativeInterest() decimal.Decimal {
	return e.cumulativeInterest
}

// Process allocates one month's net flow across the buckets and accrues
// deposito interest. Bankruptcy is signalled when a deficit survives the
// drain of all four buckets.
func (e *CashAllocationEngine) Process(netFlow decimal.Decimal, targets BucketTargets) AllocationResult {
	flow := netFlow
	bankruptcy := false

	if flow.GreaterThan(decimal.Zero) {
		if e.buffer.LessThan(targets.Buffer) {
			fill := decimal.Min(flow, targets.Buffer.Sub(e.buffer))
			e.buffer = e.buffer.Add(fill)
			flow = flow.Sub(fill)
		}

		if e.buffer.GreaterThanOrEqual(targets.Buffer.Sub(oneUnit)) && e.emergency.LessThan(targets.Emergency) {
			fill := decimal.Min(flow, targets.Emergency.Sub(e.emergency))
			e.emergency = e.emergency.Add(fill)
			flow = flow.Sub(fill)
		}

		if flow.GreaterThan(decimal.Zero) {
			e.extra = e.extra.Add(flow)
		}
	} else if flow.LessThan(decimal.Zero) {
		deficit := flow.Abs()

		deficit, e.extra = drain(deficit, e.extra)
		deficit, e.deposito = drain(deficit, e.deposito)
		deficit, e.emergency = drain(deficit, e.emergency)
		deficit, e.buffer = drain(deficit, e.buffer)

		if deficit.GreaterThan(bankruptcyTolerance) {
			bankruptcy = true
		}
	}

	interest := decimal.Zero
	if e.useDeposito && e.extra.GreaterThan(decimal.Zero) {
		interest = e.extra.Mul(depositoAnnualRatePercent.Div(hundred).Div(twelve))
		e.extra = e.extra.Add(interest)
		e.cumulativeInterest = e.cumulativeInterest.Add(interest)
	}

	return AllocationResult{
		NetFlow:                netFlow,
		Buckets:                e.Buckets(),
		DepositoInterestEarned: interest,
		Bankruptcy:             bankruptcy,
	}
}

// DeductExtraPayment withdraws a realized extra mortgage payment from the
// extra-payment bucket, clamped at zero.
func (e *CashAllocationEngine) DeductExtraPayment(amount decimal.Decimal) {
	e.extra = e.extra.Sub(amount)
	if e.extra.LessThan(decimal.Zero) {
		e.extra = decimal.Zero
	}
}

// drain takes as much of deficit as the source can cover and returns the
// remaining deficit and source balance.
func drain(deficit, source decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if deficit.LessThanOrEqual(decimal.Zero) || source.LessThanOrEqual(decimal.Zero) {
		return deficit, source
	}
	taken := decimal.Min(deficit, source)
	return deficit.Sub(taken), source.Sub(taken)
}
