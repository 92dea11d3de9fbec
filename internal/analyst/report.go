package analyst

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/cryptolang/pkg/utils"
)

type Status string

const (
	StatusFound    Status = "found"
	StatusNoMatch  Status = "no_match"
	StatusNotReady Status = "not_ready"
)

const (
	ConfidenceDecimalPlaces = 1

	msgNoMatch  = "Result: no pattern could be identified automatically."
	msgNotReady = "Dictionaries are still loading... try again shortly."
)

// Report is the outcome of one detection. NoMatch and NotReady are negative
// results, not errors.
type Report struct {
	Status     Status      `json:"status"`
	Best       *Candidate  `json:"best,omitempty"`
	Candidates []Candidate `json:"candidates,omitempty"`
}

// Confidence is the best candidate's score rounded to one decimal place.
func (r *Report) Confidence() float64 {
	if r.Best == nil {
		return 0
	}
	return utils.RoundDecimal(r.Best.Score, ConfidenceDecimalPlaces)
}

func (r *Report) String() string {
	switch r.Status {
	case StatusNotReady:
		return msgNotReady
	case StatusNoMatch:
		return msgNoMatch
	}

	var b strings.Builder
	fmt.Fprintf(&b, "DETECTED: %s\n", r.Best.Label)
	fmt.Fprintf(&b, "KEY: %d\n", r.Best.Parameter)
	fmt.Fprintf(&b, "CONFIDENCE: %.1f%%\n", r.Confidence())
	b.WriteString("----------------------\n")
	fmt.Fprintf(&b, "PLAINTEXT: %s", r.Best.Plaintext)
	return b.String()
}
