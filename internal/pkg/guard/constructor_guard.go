// Package guard provides a lightweight defensive-programming helper that ensures
// value objects, commands, and queries are only created through their designated
// constructor functions. A zero-value struct fails validation, which catches
// accidental direct instantiation before it can bypass invariant checks.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its embedding struct was produced by a
// constructor. Embed one as a private field and call Validate with the
// type-specific error before acting on the object.
//
// Example:
//
//	type ScheduleProductionCommand struct {
//	    orderNumber string
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewScheduleProductionCommand(orderNumber string) (ScheduleProductionCommand, error) {
//	    // ... validation ...
//	    return ScheduleProductionCommand{orderNumber: orderNumber, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ScheduleProductionCommand) Validate() error {
//	    return c.guard.Validate(ErrScheduleProductionCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built via its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
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
