package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/brightpath-mortgages/wellness/internal/calculation"
	"github.com/brightpath-mortgages/wellness/internal/config"
	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/brightpath-mortgages/wellness/internal/logging"
	"github.com/brightpath-mortgages/wellness/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "wellness",
	Short: "Financial wellness scoring CLI",
	Long:  "Mortgage-readiness scoring, runway simulation and risk lookup for household submissions",
}

var scoreCmd = &cobra.Command{
	Use:   "score [submission-file]",
	Short: "Score a household submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := "info"
		if verbose {
			level = "debug"
		}
		logger, err := logging.New(level, verbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		engine, err := buildEngine(cmd, logger)
		if err != nil {
			return err
		}

		parser := config.NewInputParser()
		input, err := parser.LoadSubmission(args[0])
		if err != nil {
			return err
		}

		if validation := engine.Validate(input); !validation.IsValid {
			for _, msg := range validation.Errors {
				fmt.Fprintf(os.Stderr, "invalid submission: %s\n", msg)
			}
			return fmt.Errorf("submission failed validation with %d error(s)", len(validation.Errors))
		}

		result := engine.Calculate(input)
		logger.Debug("scored submission",
			zap.Int("score", result.Score),
			zap.Int("raw_score", result.RawScore),
			zap.Int("max_possible", result.MaxPossibleScore),
			zap.String("category", result.Category))

		format, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			return fmt.Errorf("unsupported format %q (expected one of %v)", format, output.FormatterNames())
		}
		data, err := formatter.Format(result)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [submission-file]",
	Short: "Validate a household submission file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		input, err := parser.LoadSubmission(args[0])
		if err != nil {
			return err
		}

		engine := calculation.NewEngine(domain.DefaultUKBenchmarks(), domain.DefaultRiskTable())
		validation := engine.Validate(input)
		if !validation.IsValid {
			for _, msg := range validation.Errors {
				fmt.Fprintf(os.Stderr, "- %s\n", msg)
			}
			return fmt.Errorf("submission %s is invalid", args[0])
		}

		fmt.Printf("Submission %s is valid\n", args[0])
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "wellness %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Path)
		}
	},
}

// buildEngine assembles the engine from the embedded defaults plus any
// benchmark or risk-table override files.
func buildEngine(cmd *cobra.Command, logger *zap.Logger) (*calculation.Engine, error) {
	parser := config.NewInputParser()

	benchmarks := domain.DefaultUKBenchmarks()
	if path, _ := cmd.Flags().GetString("benchmarks"); path != "" {
		loaded, err := parser.LoadBenchmarks(path)
		if err != nil {
			return nil, fmt.Errorf("loading benchmarks: %w", err)
		}
		benchmarks = loaded
		logger.Debug("loaded benchmark overrides", zap.String("path", path), zap.Int("data_year", benchmarks.DataYear))
	}

	riskTable := domain.DefaultRiskTable()
	if path, _ := cmd.Flags().GetString("risk-table"); path != "" {
		loaded, err := parser.LoadRiskTable(path)
		if err != nil {
			return nil, fmt.Errorf("loading risk table: %w", err)
		}
		riskTable = loaded
		logger.Debug("loaded risk table", zap.String("path", path), zap.Int("brackets", len(riskTable.Brackets)))
	}

	return calculation.NewEngine(benchmarks, riskTable), nil
}

func main() {
	scoreCmd.Flags().String("format", "console", "Output format: console, json, json-compact, csv")
	scoreCmd.Flags().String("benchmarks", "", "Path to a UK benchmark override YAML file")
	scoreCmd.Flags().String("risk-table", "", "Path to an actuarial risk table YAML file")
	scoreCmd.Flags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
