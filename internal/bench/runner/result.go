package runner

import (
	"github.com/DjordjeVuckovic/cryptolang/internal/analyst"
	"github.com/DjordjeVuckovic/cryptolang/internal/bench/suite"
)

// Outcome classifies a detection against its expectation.
type Outcome string

const (
	OutcomeCorrect        Outcome = "correct"
	OutcomeWrongMethod    Outcome = "wrong_method"
	OutcomeWrongKey       Outcome = "wrong_key"
	OutcomeWrongPlaintext Outcome = "wrong_plaintext"
	OutcomeMissed         Outcome = "missed"
	OutcomeFalsePositive  Outcome = "false_positive"
	OutcomeError          Outcome = "error"
)

type CaseResult struct {
	CaseID     string
	Method     string
	Ciphertext string
	Expected   suite.Expectation
	Report     *analyst.Report
	Outcome    Outcome
	Latency    LatencyStats
	Error      error
}

type SuiteResult struct {
	SuiteName string
	Cases     []CaseResult
	Config    Config
}

// Classify compares a report with what the case expected.
func Classify(expected suite.Expectation, report *analyst.Report) Outcome {
	if report == nil || report.Status == analyst.StatusNotReady {
		return OutcomeError
	}

	if expected.Status == analyst.StatusNoMatch {
		if report.Status == analyst.StatusNoMatch {
			return OutcomeCorrect
		}
		return OutcomeFalsePositive
	}

	if report.Status != analyst.StatusFound || report.Best == nil {
		return OutcomeMissed
	}

	best := report.Best
	switch {
	case expected.Detected != "" && best.Label != expected.Detected:
		return OutcomeWrongMethod
	case expected.Key != nil && best.Parameter != *expected.Key:
		return OutcomeWrongKey
	case expected.Plaintext != "" && best.Plaintext != expected.Plaintext:
		return OutcomeWrongPlaintext
	}
	return OutcomeCorrect
}
