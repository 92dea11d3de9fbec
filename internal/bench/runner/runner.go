package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/cryptolang/internal/analyst"
	"github.com/DjordjeVuckovic/cryptolang/internal/bench/suite"
	"github.com/DjordjeVuckovic/cryptolang/internal/cipher"
)

type Runner struct {
	config   Config
	analyst  *analyst.Analyst
	registry *cipher.Registry
}

func New(cfg Config, a *analyst.Analyst, registry *cipher.Registry) *Runner {
	if cfg.Runs < 1 {
		cfg.Runs = 1
	}
	return &Runner{config: cfg, analyst: a, registry: registry}
}

// Run evaluates every case of s. It fails only when the analyst is not ready
// or ctx is cancelled; per-case problems are recorded in the result.
func (r *Runner) Run(ctx context.Context, s *suite.Suite) (*SuiteResult, error) {
	if !r.analyst.Ready() {
		return nil, fmt.Errorf("dictionaries are not loaded")
	}

	sr := &SuiteResult{SuiteName: s.Name, Config: r.config}

	for i := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cr := r.runCase(&s.Cases[i])
		if cr.Outcome != OutcomeCorrect {
			slog.Debug("Detection case failed", "case", cr.CaseID, "outcome", cr.Outcome, "error", cr.Error)
		}
		sr.Cases = append(sr.Cases, cr)
	}

	return sr, nil
}

func (r *Runner) runCase(c *suite.Case) CaseResult {
	cr := CaseResult{CaseID: c.ID, Method: "raw"}
	if c.Encrypt != nil {
		cr.Method = string(c.Encrypt.Method)
	}

	ciphertext, expected, err := c.Resolve(r.registry)
	if err != nil {
		cr.Outcome = OutcomeError
		cr.Error = err
		return cr
	}
	cr.Ciphertext = ciphertext
	cr.Expected = expected

	for i := 0; i < r.config.WarmupRuns; i++ {
		_ = r.analyst.Detect(ciphertext)
	}

	latencies := make([]time.Duration, 0, r.config.Runs)
	var report *analyst.Report
	for i := 0; i < r.config.Runs; i++ {
		start := time.Now()
		report = r.analyst.Detect(ciphertext)
		latencies = append(latencies, time.Since(start))
	}

	cr.Report = report
	cr.Latency = ComputeLatencyStats(latencies)
	cr.Outcome = Classify(expected, report)
	return cr
}
