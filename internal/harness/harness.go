// Package harness runs named verification cases against the addition core
// and reports pass/fail results.
package harness

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sumcheck/sumcheck/internal/arith"
	"github.com/sumcheck/sumcheck/internal/config"
	"github.com/sumcheck/sumcheck/pkg/errors"
)

// Case is a single named verification case: two operands, the expected sum
// and the overflow policy to compute under.
type Case struct {
	Name     string
	A        int64
	B        int64
	Expected int64
	Policy   arith.Policy
	Location string
}

// Suite holds registered cases in registration order.
type Suite struct {
	cases []Case
	names map[string]bool
}

// NewSuite creates an empty suite.
func NewSuite() *Suite {
	return &Suite{
		names: make(map[string]bool),
	}
}

// Register adds a case to the suite. Case names must be unique within a
// suite so that a report line identifies exactly one case.
func (s *Suite) Register(c Case) error {
	if c.Name == "" {
		return errors.New("case name cannot be empty")
	}
	if s.names[c.Name] {
		return errors.New(fmt.Sprintf("duplicate case name: %s", c.Name))
	}
	s.names[c.Name] = true
	s.cases = append(s.cases, c)
	return nil
}

// Cases returns the registered cases in registration order.
func (s *Suite) Cases() []Case {
	return s.cases
}

// Len returns the number of registered cases.
func (s *Suite) Len() int {
	return len(s.cases)
}

// Result is the outcome of running a single case. Err is nil on pass, an
// AssertionMismatch on a wrong sum, or an OverflowError when the checked
// policy rejected the addition.
type Result struct {
	Case     Case
	Actual   int64
	Err      error
	Duration time.Duration
}

// Passed reports whether the case passed.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Report summarizes a harness run.
type Report struct {
	RunID    string
	Results  []Result
	Passed   int
	Failed   int
	Skipped  int
	Duration time.Duration
}

// AllPassed reports whether every executed case passed.
func (r *Report) AllPassed() bool {
	return r.Failed == 0
}

// Runner executes suites and produces reports.
type Runner struct {
	config *config.HarnessConfig
	logger *logrus.Logger
}

// NewRunner creates a new harness runner with the provided configuration.
func NewRunner(cfg *config.HarnessConfig, logger *logrus.Logger) *Runner {
	if cfg == nil {
		cfg = &config.HarnessConfig{}
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Runner{
		config: cfg,
		logger: logger,
	}
}

// Run executes the suite's cases in registration order and returns a report.
// With fail-fast enabled, remaining cases after the first failure are counted
// as skipped. A non-empty filter restricts execution to cases whose name
// contains the filter string.
func (r *Runner) Run(suite *Suite) *Report {
	report := &Report{
		RunID: uuid.New().String(),
	}

	r.logger.WithFields(logrus.Fields{
		"run_id": report.RunID,
		"cases":  suite.Len(),
	}).Info("Starting verification run")

	start := time.Now()
	stopped := false

	for _, c := range suite.Cases() {
		if r.config.Filter != "" && !strings.Contains(c.Name, r.config.Filter) {
			continue
		}
		if stopped {
			report.Skipped++
			continue
		}

		result := r.runCase(c)
		report.Results = append(report.Results, result)

		if result.Passed() {
			report.Passed++
		} else {
			report.Failed++
			if r.config.FailFast {
				stopped = true
			}
		}
	}

	report.Duration = time.Since(start)

	r.logger.WithFields(logrus.Fields{
		"run_id":   report.RunID,
		"passed":   report.Passed,
		"failed":   report.Failed,
		"skipped":  report.Skipped,
		"duration": report.Duration,
	}).Info("Verification run finished")

	return report
}

// runCase evaluates one case against the addition core.
func (r *Runner) runCase(c Case) Result {
	start := time.Now()

	actual, err := arith.Add(c.A, c.B, c.Policy)
	result := Result{
		Case:   c,
		Actual: actual,
	}

	if err != nil {
		result.Err = err
	} else if actual != c.Expected {
		result.Err = errors.NewAssertionMismatch(c.Name, c.Expected, actual, c.Location)
	}

	result.Duration = time.Since(start)

	if result.Passed() {
		r.logger.WithFields(logrus.Fields{
			"case":   c.Name,
			"actual": actual,
		}).Debug("Case passed")
	} else {
		r.logger.WithFields(logrus.Fields{
			"case":     c.Name,
			"expected": c.Expected,
			"location": c.Location,
		}).WithError(result.Err).Error("Case failed")
	}

	return result
}
