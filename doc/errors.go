package doc

import (
	"errors"
	"fmt"
)

// ErrShape is matched by every *ShapeError.
var ErrShape = errors.New("doc: shape mismatch")

// ShapeError reports an operation applied to a value of the wrong shape.
type ShapeError struct {
	Op   string
	Want string
	Got  any
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("doc: %s expects %s, got %T", e.Op, e.Want, e.Got)
}

// Unwrap returns ErrShape so errors.Is works.
func (e *ShapeError) Unwrap() error {
	return ErrShape
}

func shapePanic(op, want string, got any) {
	panic(&ShapeError{Op: op, Want: want, Got: got})
}

// AsType is a generic error type assertion over the error chain.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// Try runs fn and converts a *ShapeError panic into an error. Any other
// panic is re-raised.
func Try[T any](fn func() T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			shapeErr, ok := r.(*ShapeError)
			if !ok {
				panic(r)
			}
			err = shapeErr
		}
	}()
	return fn(), nil
}
