package dictionary

import "context"

// HealthChecker reports healthy once the store is ready.
type HealthChecker struct {
	store *Store
}

func NewHealthChecker(store *Store) *HealthChecker {
	return &HealthChecker{store: store}
}

func (hc *HealthChecker) Healthy(_ context.Context) bool {
	return hc.store != nil && hc.store.Ready()
}

func (hc *HealthChecker) Status() string {
	if hc.store == nil {
		return "no dictionary store"
	}
	return hc.store.Status()
}
