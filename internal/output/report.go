package output

import (
	"fmt"
	"strings"

	"github.com/hartawan/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a complete simulation result for a downstream consumer.
type Formatter interface {
	Format(result *domain.SimulationResult) ([]byte, error)
	Name() string
}

// GetFormatterByName returns the formatter for a format name, or nil when the
// format is unknown.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "table", "console":
		return &ConsoleFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	case "csv":
		return &CSVFormatter{}
	default:
		return nil
	}
}

// ConsoleFormatter renders the run summary, extra-payment events and impact
// analysis as a plain-text report.
type ConsoleFormatter struct{}

func (cf *ConsoleFormatter) Name() string { return "console" }

// Format renders the report.
func (cf *ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var sb strings.Builder
	s := result.Summary

	sb.WriteString("HOUSEHOLD FINANCIAL TRAJECTORY - 20 YEAR SIMULATION\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n\n")

	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("  Risk Level:              %s\n", s.RiskLevel))
	sb.WriteString(fmt.Sprintf("  Risk Assessment:         %s\n", s.RiskReason))
	sb.WriteString(fmt.Sprintf("  Buffer Full:             %s\n", formatMonth(s.MonthsToFullBuffer)))
	sb.WriteString(fmt.Sprintf("  Emergency Fund Full:     %s\n", formatMonth(s.MonthsToFullEmergency)))
	sb.WriteString(fmt.Sprintf("  Mortgage Payoff:         %s\n", orNever(s.MortgagePayoffDate)))
	sb.WriteString(fmt.Sprintf("  Total Interest Paid:     %s\n", groupThousands(s.TotalInterestPaid)))
	sb.WriteString(fmt.Sprintf("  Total Interest Saved:    %s\n", groupThousands(s.TotalInterestSaved)))
	sb.WriteString(fmt.Sprintf("  Lowest Liquidity:        %s months\n", s.LowestLiquidityMonths.StringFixed(1)))
	sb.WriteString(fmt.Sprintf("  Purchasing Power Loss:   %s%% over 20 years\n", s.PurchasingPowerLoss.StringFixed(1)))
	if s.MaxJobSearchMonths != nil {
		sb.WriteString(fmt.Sprintf("  Job Search Runway:       %d months\n", *s.MaxJobSearchMonths))
	}
	if s.BankruptcyDate != "" {
		sb.WriteString(fmt.Sprintf("  Bankruptcy:              %s\n", s.BankruptcyDate))
	}
	sb.WriteString("\n")

	if len(result.YearLogs) > 0 {
		sb.WriteString("EXTRA PAYMENT EVENTS\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		sb.WriteString(fmt.Sprintf("  %-6s %18s %14s %18s %14s\n",
			"Year", "Amount", "Penalty", "Principal Cut", "Saved"))
		for _, ev := range result.YearLogs {
			sb.WriteString(fmt.Sprintf("  %-6d %18s %14s %18s %14s\n",
				ev.Year+1,
				groupThousands(ev.ExtraPaymentPaid),
				groupThousands(ev.PenaltyPaid),
				groupThousands(ev.PrincipalReduced),
				groupThousands(ev.InterestSaved)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("IMPACT ANALYSIS (Cash vs Deposito)\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	ia := result.ImpactAnalysis
	sb.WriteString(fmt.Sprintf("  Net Benefit of Deposito: %s\n", groupThousands(ia.NetBenefit)))
	sb.WriteString(fmt.Sprintf("  Months Saved on Payoff:  %d\n", ia.MonthsSaved))

	return []byte(sb.String()), nil
}

func formatMonth(m *int) string {
	if m == nil {
		return "not reached"
	}
	return fmt.Sprintf("month %d", *m)
}

func orNever(s string) string {
	if s == "" {
		return "never (within horizon)"
	}
	return s
}

func groupThousands(d decimal.Decimal) string {
	str := d.StringFixed(0)
	negative := strings.HasPrefix(str, "-")
	str = strings.TrimPrefix(str, "-")

	var parts []string
	for len(str) > 3 {
		parts = append([]string{str[len(str)-3:]}, parts...)
		str = str[:len(str)-3]
	}
	parts = append([]string{str}, parts...)

	out := strings.Join(parts, ",")
	if negative {
		out = "-" + out
	}
	return out
}
