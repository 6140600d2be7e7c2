package shop

import "fmt"

// ValidationError rejects malformed input before any store access.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError names the entity that was looked up and missing.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// InsufficientStockError carries the counts the API returns to the
// caller. It is raised before any mutation.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: available %d, requested %d", e.Available, e.Requested)
}

// DuplicateError reports a uniqueness violation (user email).
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string { return e.Field + " already registered" }
