// Package guard holds the construction guard embedded by value objects, commands
// and queries so that zero values can be told apart from constructed ones.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as created through its constructor.
// The zero value reports "not constructed".
//
// Embed it in a struct, set it with NewConstructorGuard inside the constructor,
// and call Validate from the struct's own Validate method:
//
//	type AdvanceOrderCommand struct {
//	    reference string
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c AdvanceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
