package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sumcheck/sumcheck/internal/arith"
	"github.com/sumcheck/sumcheck/internal/config"
	"github.com/sumcheck/sumcheck/internal/harness"
)

var (
	version    = "dev"
	cfgFile    string
	verbose    bool
	debug      bool
	policyFlag string
	logger     *logrus.Logger
)

func init() {
	logger = logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sumcheck",
	Short: "Checked integer addition with a self-verifying case harness",
	Long: `sumcheck computes 64-bit integer sums under an explicit overflow policy
and verifies the addition contract against a suite of named cases.

The overflow policy is one of:
- checked: overflow is an error (default)
- wrap: two's-complement wraparound
- saturate: clamp to the int64 range`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set log level based on flags
		if debug {
			logger.SetLevel(logrus.DebugLevel)
		} else if verbose {
			logger.SetLevel(logrus.InfoLevel)
		} else {
			logger.SetLevel(logrus.WarnLevel)
		}
	},
}

var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Compute the sum of two integers",
	Long: `Compute the sum of two base-10 int64 operands under the configured
overflow policy and print the result.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		a, err := arith.ParseOperand(args[0])
		if err != nil {
			return err
		}
		b, err := arith.ParseOperand(args[1])
		if err != nil {
			return err
		}

		policy := cfg.Arith.OverflowPolicy()
		logger.WithFields(logrus.Fields{
			"a":      a,
			"b":      b,
			"policy": policy.String(),
		}).Debug("Computing sum")

		sum, err := arith.Add(a, b, policy)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), sum)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [case-file...]",
	Short: "Run the verification suite",
	Long: `Run the built-in verification suite, plus any cases loaded from YAML
case files, and report pass/fail per case.

The process exits 0 when every case passes and 1 otherwise.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if failFast, _ := cmd.Flags().GetBool("fail-fast"); failFast {
			cfg.Harness.FailFast = true
		}

		suite := harness.Builtin()
		for _, path := range args {
			cases, err := harness.LoadCaseFile(path, cfg.Arith.OverflowPolicy())
			if err != nil {
				return err
			}
			for _, c := range cases {
				if err := suite.Register(c); err != nil {
					return err
				}
			}
		}

		runner := harness.NewRunner(&cfg.Harness, logger)
		report := runner.Run(suite)

		printReport(cmd, report)

		if !report.AllPassed() {
			return fmt.Errorf("%d of %d cases failed", report.Failed, report.Failed+report.Passed)
		}
		return nil
	},
}

// printReport writes the human-readable run report to the command's stdout.
func printReport(cmd *cobra.Command, report *harness.Report) {
	out := cmd.OutOrStdout()

	for _, result := range report.Results {
		if result.Passed() {
			fmt.Fprintf(out, "PASS  %s\n", result.Case.Name)
		} else {
			fmt.Fprintf(out, "FAIL  %s: %v\n", result.Case.Name, result.Err)
		}
	}

	fmt.Fprintf(out, "\nrun %s: %d passed, %d failed", report.RunID, report.Passed, report.Failed)
	if report.Skipped > 0 {
		fmt.Fprintf(out, ", %d skipped", report.Skipped)
	}
	fmt.Fprintf(out, " (%s)\n", report.Duration)
}

// loadConfig loads the configuration, applies logging settings from it and
// lets the --policy flag override the configured overflow policy.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if policyFlag != "" {
		if _, err := arith.ParsePolicy(policyFlag); err != nil {
			return nil, err
		}
		cfg.Arith.Policy = policyFlag
	}

	applyLoggingConfig(cfg)
	return cfg, nil
}

// applyLoggingConfig reconfigures the global logger from the loaded config.
// The --debug and --verbose flags keep precedence over the configured level.
func applyLoggingConfig(cfg *config.Config) {
	if !debug && !verbose {
		if level, err := logrus.ParseLevel(strings.ToLower(cfg.Logging.Level)); err == nil {
			logger.SetLevel(level)
		}
	}

	if strings.ToLower(cfg.Logging.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	switch cfg.Logging.Output {
	case "stdout":
		logger.SetOutput(os.Stdout)
	case "stderr":
		logger.SetOutput(os.Stderr)
	default:
		if f, err := os.OpenFile(cfg.Logging.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			logger.SetOutput(f)
		}
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVarP(&policyFlag, "policy", "p", "", "overflow policy: checked, wrap or saturate")

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(checkCmd)

	// Add flags specific to check command
	checkCmd.Flags().Bool("fail-fast", false, "stop at the first failing case")
}
