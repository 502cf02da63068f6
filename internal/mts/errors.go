// internal/mts/errors.go - Typed tiling-service errors
package mts

import "fmt"

// APIError is returned when the service answers with an unexpected status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tiling service returned HTTP %d: %s", e.StatusCode, e.Body)
}

// InvalidIDError reports a tileset or source identifier that does not match
// the service's naming rules.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf(`invalid ID %q: max length 32 chars, only alphanumeric chars, "-" and "_"`, e.ID)
}

// RestrictedError reports an operation blocked by the deletion cooldown.
type RestrictedError struct {
	Operation string
}

func (e *RestrictedError) Error() string {
	return fmt.Sprintf("%s temporarily restricted: wait %s between deletions", e.Operation, deletionCooldown)
}
