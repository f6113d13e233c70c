package calculation

import (
	"fmt"

	"github.com/hartawan/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// milestoneTolerance treats a bucket within 100 units of its target as full.
var milestoneTolerance = decimal.NewFromInt(100)

// StatisticsAggregator appends the immutable month log and latches run
// milestones: first month the buffer and emergency buckets reach target, and
// the mortgage payoff date.
type StatisticsAggregator struct {
	logs []domain.MonthRecord

	bufferFullMonth    *int
	emergencyFullMonth *int
	payoffDate         string
}

// NewStatisticsAggregator creates an aggregator for one pass.
func NewStatisticsAggregator() *StatisticsAggregator {
	return &StatisticsAggregator{logs: make([]domain.MonthRecord, 0, HorizonMonths)}
}

// Record appends one month's snapshot.
func (a *StatisticsAggregator) Record(rec domain.MonthRecord) {
	a.logs = append(a.logs, rec)
}

// Logs returns the ordered month log.
func (a *StatisticsAggregator) Logs() []domain.MonthRecord {
	return a.logs
}

// RecordMilestones latches first-occurrence milestones.
func (a *StatisticsAggregator) RecordMilestones(monthIndex int, dateLabel string, buckets domain.BucketState, targets BucketTargets, mortgagePaidOff bool) {
	if a.bufferFullMonth == nil && buckets.Buffer.GreaterThanOrEqual(targets.Buffer.Sub(milestoneTolerance)) {
		m := monthIndex
		a.bufferFullMonth = &m
	}
	if a.emergencyFullMonth == nil && buckets.Emergency.GreaterThanOrEqual(targets.Emergency.Sub(milestoneTolerance)) {
		m := monthIndex
		a.emergencyFullMonth = &m
	}
	if mortgagePaidOff && a.payoffDate == "" {
		a.payoffDate = dateLabel
	}
}

// PayoffDate returns the latched payoff label, or "" if the loan is open.
func (a *StatisticsAggregator) PayoffDate() string {
	return a.payoffDate
}

// GenerateSummary combines the risk summary, mortgage interest totals, the
// 20-year purchasing-power loss and the job-search runway into the final
// summary.
func (a *StatisticsAggregator) GenerateSummary(risk RiskSummary, interestSaved, inflationRate decimal.Decimal, jobLossMonth, horizonMonths int) domain.Summary {
	totalInterestPaid := decimal.Zero
	for _, rec := range a.logs {
		totalInterestPaid = totalInterestPaid.Add(rec.MortgageInterest)
	}

	var maxJobSearchMonths *int
	if jobLossMonth != -1 && jobLossMonth < horizonMonths {
		var months int
		if risk.BankruptcyMonth >= 0 {
			months = risk.BankruptcyMonth - jobLossMonth
			if months < 0 {
				months = 0
			}
		} else {
			months = horizonMonths - jobLossMonth
		}
		maxJobSearchMonths = &months
	}

	reason := risk.Reason
	if maxJobSearchMonths != nil {
		if risk.BankruptcyDate != "" {
			reason = fmt.Sprintf("Insolvency %d months after job loss.", *maxJobSearchMonths)
		} else {
			reason = fmt.Sprintf("Survived >%d months without job.", *maxJobSearchMonths)
		}
	}

	purchasingPowerLoss := one.Add(inflationRate.Div(hundred)).
		Pow(decimal.NewFromInt(20)).
		Sub(one).
		Mul(hundred)

	return domain.Summary{
		MonthsToFullBuffer:    a.bufferFullMonth,
		MonthsToFullEmergency: a.emergencyFullMonth,
		MortgagePayoffDate:    a.payoffDate,
		TotalInterestPaid:     totalInterestPaid,
		TotalInterestSaved:    interestSaved,
		LowestLiquidityMonths: risk.LowestLiquidityMonths,
		RiskLevel:             risk.Level,
		RiskReason:            reason,
		PurchasingPowerLoss:   purchasingPowerLoss,
		MaxJobSearchMonths:    maxJobSearchMonths,
		BankruptcyDate:        risk.BankruptcyDate,
	}
}
