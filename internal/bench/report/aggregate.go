package report

import (
	"time"

	"github.com/DjordjeVuckovic/cryptolang/internal/bench/runner"
	"github.com/DjordjeVuckovic/cryptolang/pkg/utils"
)

func Build(sr *runner.SuiteResult) *Report {
	r := &Report{
		Meta: BenchMeta{
			Suite:       sr.SuiteName,
			Timestamp:   time.Now().UTC(),
			Runs:        sr.Config.Runs,
			Warmup:      sr.Config.WarmupRuns,
			Environment: NewEnvironmentInfo(),
		},
		Summary: Summary{Outcomes: make(map[runner.Outcome]int)},
	}

	methods := make(map[string]*MethodStat)
	var methodOrder []string
	latencies := make([]runner.LatencyStats, 0, len(sr.Cases))

	for _, cr := range sr.Cases {
		r.Cases = append(r.Cases, newCaseEntry(cr))
		latencies = append(latencies, cr.Latency)

		r.Summary.Total++
		r.Summary.Outcomes[cr.Outcome]++

		ms, ok := methods[cr.Method]
		if !ok {
			ms = &MethodStat{Method: cr.Method}
			methods[cr.Method] = ms
			methodOrder = append(methodOrder, cr.Method)
		}
		ms.Total++

		if cr.Outcome == runner.OutcomeCorrect {
			r.Summary.Correct++
			ms.Correct++
		}
	}

	r.Summary.Accuracy = accuracy(r.Summary.Correct, r.Summary.Total)
	r.Summary.Latency = runner.Merge(latencies...)

	for _, m := range methodOrder {
		ms := methods[m]
		ms.Accuracy = accuracy(ms.Correct, ms.Total)
		r.Methods = append(r.Methods, *ms)
	}

	return r
}

func newCaseEntry(cr runner.CaseResult) CaseEntry {
	e := CaseEntry{
		CaseID:     cr.CaseID,
		Method:     cr.Method,
		Ciphertext: cr.Ciphertext,
		Expected:   cr.Expected,
		Outcome:    cr.Outcome,
		Latency:    cr.Latency,
	}
	if cr.Error != nil {
		e.Error = cr.Error.Error()
	}
	if cr.Report != nil {
		e.Confidence = cr.Report.Confidence()
		if cr.Report.Best != nil {
			key := cr.Report.Best.Parameter
			e.Detected = cr.Report.Best.Label
			e.Key = &key
		}
	}
	return e
}

func accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return utils.RoundDecimal(100*float64(correct)/float64(total), 1)
}
