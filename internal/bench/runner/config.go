package runner

const (
	DefaultWarmupRuns = 0
	DefaultRuns       = 5
)

type Config struct {
	WarmupRuns int
	Runs       int
}

func DefaultConfig() Config {
	return Config{
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
	}
}
