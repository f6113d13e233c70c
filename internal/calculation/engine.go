package calculation

import (
	"fmt"
	"time"

	"github.com/hartawan/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// HorizonMonths is the fixed simulation horizon: 20 years, month by month.
const HorizonMonths = 240

// Engine runs single simulation passes. Every pass builds its own set of
// stateful components, so two passes never share mutable state and may run
// concurrently.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger installs a logger; nil restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// PassResult is the output of one 240-month pass, before impact analysis.
type PassResult struct {
	Logs     []domain.MonthRecord
	YearLogs []domain.YearEvent
	Summary  domain.Summary
	Snapshot domain.StrategySnapshot
}

// RunPass executes one complete pass over the configuration. The inputs are
// treated as read-only for the duration of the run.
func (e *Engine) RunPass(cfg *domain.Configuration) (*PassResult, error) {
	startDate, err := parseISODate(cfg.Mortgage.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid mortgage start date %q: %w", cfg.Mortgage.StartDate, err)
	}
	startDate = time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	// Risk dates become month offsets exactly once, here. An unparsable date
	// maps to -1 ("already elapsed").
	jobLossMonth := monthOffset(startDate, cfg.RiskSettings.JobLossDate)
	notificationMonth := monthOffset(startDate, cfg.RiskSettings.NotificationDate)

	expenses := NewExpenseProjector(cfg.Expenses, cfg.Macro)
	mortgage := NewAmortizationEngine(cfg.Mortgage)
	cash := NewCashAllocationEngine(cfg.Mortgage.UseDeposito)
	risk := NewRiskClassifier(cfg.Scenario, notificationMonth)
	stats := NewStatisticsAggregator()
	strategy := NewEmploymentStrategy(cfg.Scenario, cfg.Income.BPJSInitialBalance)

	e.Logger.Debugf("pass start: scenario=%s deposito=%v jobLossMonth=%d notificationMonth=%d",
		cfg.Scenario, cfg.Mortgage.UseDeposito, jobLossMonth, notificationMonth)

	yearLogs := make([]domain.YearEvent, 0, 4)
	payoffMonthIndex := domain.PayoffNever

	for m := 0; m < HorizonMonths; m++ {
		yearIndex := m / 12
		monthDate := startDate.AddDate(0, m, 0)
		dateLabel := monthLabel(monthDate)

		income := strategy.ProcessMonth(MonthContext{
			MonthIndex:        m,
			YearIndex:         yearIndex,
			Income:            cfg.Income,
			JobLossMonth:      jobLossMonth,
			NotificationMonth: notificationMonth,
		})
		totalIncome := income.BaseIncome.Add(income.BonusIncome)

		expense := expenses.Calculate(yearIndex, income.ExpenseMultiplier)

		canMakeExtra := income.Employed && !income.SurvivalMode
		payment := mortgage.ProcessMonth(m, cash.Buckets().Extra, canMakeExtra, yearIndex)

		events := income.Events
		if payment.RateChanged {
			events = append(events, fmt.Sprintf("Rate: %s%%", payment.CurrentRate.String()))
		}
		if payment.Event != nil {
			yearLogs = append(yearLogs, *payment.Event)
		}
		if payment.ExtraPayment.GreaterThan(decimal.Zero) {
			cash.DeductExtraPayment(payment.ExtraPayment)
		}
		if payment.PaidOff && payoffMonthIndex == domain.PayoffNever {
			payoffMonthIndex = m
		}

		netFlow := totalIncome.Sub(expense.Total).Sub(payment.Installment)

		// After payoff the targets fall back to the baseline installment so
		// the household still holds obligations-sized reserves.
		installmentForTargets := payment.Installment
		if !installmentForTargets.GreaterThan(decimal.Zero) {
			installmentForTargets = mortgage.Status().BaselineInstallment
		}
		targets := BucketTargets{
			Buffer:    decimal.NewFromInt(3).Mul(expense.Total).Add(installmentForTargets),
			Emergency: decimal.NewFromInt(6).Mul(expense.Total).Add(decimal.NewFromInt(6).Mul(installmentForTargets)),
		}

		// Balance after the scheduled payment, before any extra payment.
		principalAfterRegular := payment.RemainingBalance
		if payment.Event != nil {
			principalAfterRegular = principalAfterRegular.Add(payment.Event.PrincipalReduced)
		}

		allocation := cash.Process(netFlow, targets)
		if allocation.Bankruptcy {
			risk.RegisterBankruptcy(m, dateLabel)
			events = append(events, "INSOLVENT")
			e.Logger.Warnf("insolvent at month %d (%s)", m, dateLabel)
		}

		burn := expense.Total
		if payment.RemainingBalance.GreaterThan(decimal.Zero) {
			burn = burn.Add(payment.Installment)
		}
		riskState := risk.Analyze(m, netFlow, allocation.Buckets.Total(), burn, income.Employed, income.SurvivalMode)

		stats.RecordMilestones(m, dateLabel, allocation.Buckets, targets, payment.PaidOff)

		status := mortgage.Status()
		stats.Record(domain.MonthRecord{
			MonthIndex:                 m,
			DateLabel:                  dateLabel,
			Year:                       monthDate.Year(),
			IncomeBase:                 income.BaseIncome,
			IncomeBonus:                income.BonusIncome,
			TotalIncome:                totalIncome,
			ExpensesMandatory:          expense.MandatoryTotal,
			ExpensesDiscretionary:      expense.DiscretionaryTotal,
			TotalExpenses:              expense.Total,
			MortgagePaid:               payment.Installment,
			MortgageInterest:           payment.InterestPaid,
			MortgagePrincipalPaid:      payment.PrincipalPaid,
			MortgageBalance:            payment.RemainingBalance,
			MortgageRate:               payment.CurrentRate,
			PrincipalAfterRegular:      principalAfterRegular,
			ExtraPaymentMade:           payment.ExtraPayment,
			InstallmentBaseline:        status.BaselineInstallment,
			InstallmentCurrent:         payment.Installment,
			InstallmentNext:            status.CurrentInstallment,
			NetFlow:                    netFlow,
			Buckets:                    allocation.Buckets,
			BPJSBalance:                income.BPJSBalance,
			Events:                     events,
			RiskLevel:                  riskState.Level,
			Bankrupt:                   riskState.Bankrupt,
			DepositoInterestEarned:     allocation.DepositoInterestEarned,
			CumulativeDepositoInterest: cash.CumulativeInterest(),
		})
	}

	// The job-search runway only exists when the scenario actually loses the job.
	summaryJobLossMonth := -1
	if cfg.Scenario.IsJobLoss() {
		summaryJobLossMonth = jobLossMonth
	}
	summary := stats.GenerateSummary(risk.Summary(), mortgage.Status().InterestSaved, cfg.Macro.InflationRate, summaryJobLossMonth, HorizonMonths)

	return &PassResult{
		Logs:     stats.Logs(),
		YearLogs: yearLogs,
		Summary:  summary,
		Snapshot: domain.StrategySnapshot{
			TotalAssetInterest:        cash.CumulativeInterest(),
			TotalMortgageInterestPaid: summary.TotalInterestPaid,
			PayoffDate:                summary.MortgagePayoffDate,
			PayoffMonthIndex:          payoffMonthIndex,
		},
	}, nil
}
