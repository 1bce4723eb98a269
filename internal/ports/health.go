package ports

import "context"

// HealthChecker is implemented by components that can report their own
// health for readiness probing. Examples: the backend API client, the
// session store.
type HealthChecker interface {
	// Name identifies the component in health reports.
	Name() string

	// HealthCheck returns nil when the component is healthy.
	// Implementations should respect context cancellation and deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
// Used by the readiness endpoint handler to determine service readiness.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll executes all registered health checks and returns results
	// keyed by checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
