package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/hartawan/finsim/internal/calculation"
	"github.com/hartawan/finsim/internal/compare"
	"github.com/hartawan/finsim/internal/config"
	"github.com/hartawan/finsim/internal/domain"
	"github.com/hartawan/finsim/internal/output"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "finsim",
	Short: "Household financial trajectory simulator",
	Long:  "Projects a household's 20-year finances: income, inflated expenses, a tiered-rate mortgage with opportunistic prepayments, and a multi-bucket liquidity policy under alternative employment scenarios",
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [input-file]",
	Short: "Run the full simulation and print the report",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfiguration(cmd, args)

		engine := compare.NewEngine(newCalcEngine(cmd))
		result, err := engine.Run(context.Background(), cfg)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			log.Fatalf("unknown output format %q (want table, json or csv)", format)
		}

		data, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Run both strategies and print the impact analysis",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfiguration(cmd, args)

		engine := compare.NewEngine(newCalcEngine(cmd))
		result, err := engine.Run(context.Background(), cfg)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			jf := &compare.JSONFormatter{Pretty: true}
			out, err := jf.Format(&result.ImpactAnalysis)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(out)
		default:
			tf := &compare.TableFormatter{}
			fmt.Print(tf.Format(&result.ImpactAnalysis))
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "finsim %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// loadConfiguration reads the input file, or falls back to the built-in
// default household when no file is given.
func loadConfiguration(cmd *cobra.Command, args []string) *domain.Configuration {
	var cfg *domain.Configuration
	if len(args) == 1 {
		parser := config.NewInputParser()
		loaded, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	} else {
		cfg = domain.DefaultConfiguration()
	}

	if scenario, _ := cmd.Flags().GetString("scenario"); scenario != "" {
		cfg.Scenario = domain.ScenarioType(scenario)
		parser := config.NewInputParser()
		if err := parser.ValidateConfiguration(cfg); err != nil {
			log.Fatal(err)
		}
	}
	return cfg
}

func newCalcEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

func main() {
	simulateCmd.Flags().String("format", "table", "Output format (table, json, csv)")
	simulateCmd.Flags().String("scenario", "", "Override scenario: NORMAL, UNEMPLOYED, WORST_CASE (UNEMPLOYED and WORST_CASE share the job-loss path)")
	simulateCmd.Flags().Bool("debug", false, "Enable debug logging")

	compareCmd.Flags().String("format", "table", "Output format (table, json)")
	compareCmd.Flags().String("scenario", "", "Override scenario: NORMAL, UNEMPLOYED, WORST_CASE (UNEMPLOYED and WORST_CASE share the job-loss path)")
	compareCmd.Flags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
