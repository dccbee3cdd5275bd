// Package guard provides a defensive-programming helper that ensures value
// objects, commands, and queries are only created through their designated
// constructor functions, never as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate when a
// nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether the embedding struct was created through
// its constructor. The guard holds an internal flag that is only set by
// NewConstructorGuard; a zero-value struct fails validation.
//
// Example usage:
//
//	type AdjustStockCommand struct {
//	    productID string
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewAdjustStockCommand(productID string) (AdjustStockCommand, error) {
//	    if productID == "" {
//	        return AdjustStockCommand{}, errs.NewValueIsRequiredError("productId")
//	    }
//	    return AdjustStockCommand{productID: productID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AdjustStockCommand) Validate() error {
//	    return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was constructed through its constructor.
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
