// Package guard provides the constructor-guard pattern used by commands,
// queries, and value objects to ensure instances are only created through
// their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message even when no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its proper
// constructor or as a zero value. Embedding a ConstructorGuard in a struct
// and calling Validate before use prevents accidental use of uninitialized
// instances and keeps invariants established by the constructor intact.
//
// The guard maintains an internal flag that is only set when the object is
// created through NewConstructorGuard; any zero-value struct fails
// validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call this in
// the constructor of guarded objects so they can be distinguished from
// zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil for constructed objects, the provided
// validationError for zero values, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
