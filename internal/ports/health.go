package ports

import "context"

// HealthChecker reports whether one dependency of the service works: the
// SQLite store or an outbound integration.
type HealthChecker interface {
	// Name keys the checker's result in the readiness response, e.g.
	// "database" or "wise".
	Name() string
	// HealthCheck returns nil when healthy. It must respect ctx deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness check.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every checker and returns results keyed by name; a nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
