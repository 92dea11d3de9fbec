package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/cryptolang/internal/bench/runner"
	"github.com/DjordjeVuckovic/cryptolang/internal/bench/suite"
)

type Report struct {
	Meta    BenchMeta    `json:"meta"`
	Summary Summary      `json:"summary"`
	Methods []MethodStat `json:"methods"`
	Cases   []CaseEntry  `json:"cases"`
}

type BenchMeta struct {
	Suite       string          `json:"suite"`
	Timestamp   time.Time       `json:"timestamp"`
	Runs        int             `json:"runs"`
	Warmup      int             `json:"warmup"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Summary struct {
	Total    int                    `json:"total"`
	Correct  int                    `json:"correct"`
	Accuracy float64                `json:"accuracy"`
	Outcomes map[runner.Outcome]int `json:"outcomes"`
	Latency  runner.LatencyStats    `json:"latency"`
}

type MethodStat struct {
	Method   string  `json:"method"`
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

type CaseEntry struct {
	CaseID     string              `json:"case_id"`
	Method     string              `json:"method"`
	Ciphertext string              `json:"ciphertext"`
	Expected   suite.Expectation   `json:"expected"`
	Detected   string              `json:"detected,omitempty"`
	Key        *int                `json:"key,omitempty"`
	Confidence float64             `json:"confidence"`
	Outcome    runner.Outcome      `json:"outcome"`
	Latency    runner.LatencyStats `json:"latency"`
	Error      string              `json:"error,omitempty"`
}
