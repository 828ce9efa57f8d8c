package acl

import "fmt"

// breakerHealth maps a client's circuit breaker state to a health result
// without calling the API. Closed is healthy; half-open and open are
// reported so readiness can show the integration as degraded.
func breakerHealth(name, state string) error {
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", name)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", name, state)
	}
}
