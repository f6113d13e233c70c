package compare

import (
	"fmt"
	"strings"

	"github.com/hartawan/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter renders an impact analysis as a console table.
type TableFormatter struct{}

// Format generates a side-by-side table of the cash-only and deposito
// strategies plus the derived benefit lines.
func (tf *TableFormatter) Format(ia *domain.ImpactAnalysis) string {
	var sb strings.Builder

	nameWidth := 28
	numWidth := 20

	sb.WriteString("STRATEGY IMPACT ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		nameWidth, "Metric",
		numWidth, "Cash Only",
		numWidth, "With Deposito"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		nameWidth, "Asset Interest Earned",
		numWidth, tf.formatDecimal(ia.CashStrategy.TotalAssetInterest),
		numWidth, tf.formatDecimal(ia.DepositoStrategy.TotalAssetInterest)))
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		nameWidth, "Mortgage Interest Paid",
		numWidth, tf.formatDecimal(ia.CashStrategy.TotalMortgageInterestPaid),
		numWidth, tf.formatDecimal(ia.DepositoStrategy.TotalMortgageInterestPaid)))
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		nameWidth, "Payoff Date",
		numWidth, tf.formatPayoff(ia.CashStrategy),
		numWidth, tf.formatPayoff(ia.DepositoStrategy)))

	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Net Benefit of Deposito: %s\n", tf.formatDecimal(ia.NetBenefit)))
	if ia.MonthsSaved > 0 {
		sb.WriteString(fmt.Sprintf("Payoff Achieved %d months earlier\n", ia.MonthsSaved))
	} else if ia.PayoffAchievedFaster {
		sb.WriteString("Deposito strategy pays off faster\n")
	}

	return sb.String()
}

func (tf *TableFormatter) formatPayoff(s domain.StrategySnapshot) string {
	if s.PayoffMonthIndex == domain.PayoffNever || s.PayoffDate == "" {
		return "never"
	}
	return s.PayoffDate
}

func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	// Group thousands for readability.
	str := d.StringFixed(0)
	negative := strings.HasPrefix(str, "-")
	str = strings.TrimPrefix(str, "-")

	var parts []string
	for len(str) > 3 {
		parts = append([]string{str[len(str)-3:]}, parts...)
		str = str[:len(str)-3]
	}
	parts = append([]string{str}, parts...)

	result := strings.Join(parts, ",")
	if negative {
		result = "-" + result
	}
	return result
}
