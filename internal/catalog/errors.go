package catalog

import "fmt"

// NotFoundError indicates a requested record does not exist.
type NotFoundError struct {
	Kind string // "offer" or "candidate"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// LoadError indicates the offers file could not be read or failed schema
// validation.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load offers from %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
