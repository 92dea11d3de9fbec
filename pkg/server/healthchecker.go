package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// StatusReporter is optionally implemented by a HealthChecker to explain its state.
type StatusReporter interface {
	Status() string
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

func (hc *OkHealthChecker) Status() string {
	return "ok"
}

// CompositeHealthChecker is healthy only when every checker is healthy.
type CompositeHealthChecker struct {
	checkers []HealthChecker
}

func NewCompositeHealthChecker(checkers ...HealthChecker) *CompositeHealthChecker {
	return &CompositeHealthChecker{checkers: checkers}
}

// Add appends a checker. It must be called before the checker is served.
func (hc *CompositeHealthChecker) Add(checker HealthChecker) {
	hc.checkers = append(hc.checkers, checker)
}

func (hc *CompositeHealthChecker) Healthy(ctx context.Context) bool {
	for _, c := range hc.checkers {
		if !c.Healthy(ctx) {
			return false
		}
	}
	return true
}

// Status reports the first checker's status, which is the primary one by convention.
func (hc *CompositeHealthChecker) Status() string {
	for _, c := range hc.checkers {
		if r, ok := c.(StatusReporter); ok {
			return r.Status()
		}
	}
	return ""
}
