package units

import (
	"errors"
	"strconv"
)

var (
	ErrUnknownQuantity = errors.New("unknown quantity")
	ErrUnknownUnit     = errors.New("unknown unit")
)

// ErrNotLinear is returned by [FactorOf] for quantities that have no
// multiplicative factors, i.e. temperature.
var ErrNotLinear = errors.New("not a linear quantity")

// Error records the quantity and unit that caused a lookup to fail.
type Error struct {
	Quantity string
	Unit     string
	Err      error
}

func (e *Error) Error() string {
	switch e.Err {
	case ErrUnknownQuantity:
		return e.Err.Error() + " " + strconv.Quote(e.Quantity)
	case ErrUnknownUnit:
		return e.Err.Error() + " " + strconv.Quote(e.Unit) + " for " + e.Quantity
	}
	return e.Quantity + " is " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errUnknownQuantity(quantity string) error {
	return &Error{Quantity: quantity, Err: ErrUnknownQuantity}
}

func errUnknownUnit(quantity, unit string) error {
	return &Error{Quantity: quantity, Unit: unit, Err: ErrUnknownUnit}
}

func errNotLinear(quantity string) error {
	return &Error{Quantity: quantity, Err: ErrNotLinear}
}
