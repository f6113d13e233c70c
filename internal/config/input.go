package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hartawan/finsim/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a simulation configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg domain.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Scenario == "" {
		cfg.Scenario = domain.ScenarioNormal
	}

	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateConfiguration rejects configurations the engine cannot simulate.
// Everything else degrades gracefully inside the run; these are the only
// fatal outcomes.
func (ip *InputParser) ValidateConfiguration(cfg *domain.Configuration) error {
	if err := ip.validateExpenses(cfg.Expenses); err != nil {
		return err
	}
	if err := ip.validateIncome(&cfg.Income); err != nil {
		return err
	}
	if err := ip.validateMortgage(&cfg.Mortgage); err != nil {
		return err
	}
	if err := ip.validateScenario(cfg.Scenario); err != nil {
		return err
	}
	return nil
}

func (ip *InputParser) validateExpenses(expenses []domain.ExpenseItem) error {
	for i, item := range expenses {
		if item.Name == "" {
			return fmt.Errorf("expense %d: name is required", i)
		}
		if item.Category != domain.CategoryMandatory && item.Category != domain.CategoryDiscretionary {
			return fmt.Errorf("expense %q: category must be MANDATORY or DISCRETIONARY", item.Name)
		}
		if item.Amount.LessThan(decimal.Zero) {
			return fmt.Errorf("expense %q: amount cannot be negative", item.Name)
		}
	}
	return nil
}

func (ip *InputParser) validateIncome(income *domain.IncomeConfig) error {
	if income.BaseSalary.LessThan(decimal.Zero) {
		return fmt.Errorf("base salary cannot be negative")
	}
	if income.BPJSInitialBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("BPJS initial balance cannot be negative")
	}
	for _, m := range income.THRMonths {
		if m < 0 || m > 11 {
			return fmt.Errorf("THR month %d out of range [0,11]", m)
		}
	}
	for _, m := range income.CompensationMonths {
		if m < 0 || m > 11 {
			return fmt.Errorf("compensation month %d out of range [0,11]", m)
		}
	}
	return nil
}

func (ip *InputParser) validateMortgage(mortgage *domain.MortgageConfig) error {
	if mortgage.Principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("mortgage principal must be positive")
	}
	if mortgage.TenureYears <= 0 {
		return fmt.Errorf("mortgage tenure must be positive")
	}
	if _, err := time.Parse("2006-01-02", mortgage.StartDate); err != nil {
		return fmt.Errorf("mortgage start date %q is not a valid ISO date: %w", mortgage.StartDate, err)
	}
	if mortgage.PenaltyPercent.LessThan(decimal.Zero) {
		return fmt.Errorf("penalty percent cannot be negative")
	}
	if mortgage.ExtraPaymentMinMultiple.LessThan(decimal.Zero) {
		return fmt.Errorf("extra payment minimum multiple cannot be negative")
	}
	for i, tier := range mortgage.Rates {
		if tier.StartMonth < 1 || tier.EndMonth < tier.StartMonth {
			return fmt.Errorf("rate tier %d: month range [%d,%d] is invalid", i, tier.StartMonth, tier.EndMonth)
		}
		if tier.Rate.LessThan(decimal.Zero) {
			return fmt.Errorf("rate tier %d: rate cannot be negative", i)
		}
	}
	return nil
}

func (ip *InputParser) validateScenario(scenario domain.ScenarioType) error {
	switch scenario {
	case domain.ScenarioNormal, domain.ScenarioUnemployed, domain.ScenarioWorstCase:
		return nil
	default:
		return fmt.Errorf("scenario must be NORMAL, UNEMPLOYED, or WORST_CASE, got %q", scenario)
	}
}
