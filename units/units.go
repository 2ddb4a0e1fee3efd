// Package units converts values between units of the same physical quantity.
//
// Every quantity except temperature is linear: each unit has a factor
// relative to the quantity's standard unit, and a value is converted by
// dividing by the source factor and multiplying by the target factor.
// Temperature is affine and is converted by [AffineConverter].
//
// The registry of quantities is built when the package is loaded and is never
// modified, so every function in this package is safe for concurrent use.
package units

import (
	"iter"
	"slices"
)

var (
	quantities []string
	registry   map[string]UnitConverter
)

func init() {
	quantities = make([]string, 0, len(definitions)+1)
	registry = make(map[string]UnitConverter, len(definitions)+1)
	for _, d := range definitions {
		quantities = append(quantities, d.quantity)
		registry[d.quantity] = newLinearConverter(d.quantity, d.factors)
	}
	quantities = append(quantities, Temperature)
	registry[Temperature] = AffineConverter{}
}

// Quantities returns the names of every supported quantity in definition order.
func Quantities() []string {
	return slices.Clone(quantities)
}

// All returns an iterator over the names of every supported quantity in
// definition order.
func All() iter.Seq[string] {
	return slices.Values(quantities)
}

// ConverterFor returns the [UnitConverter] for quantity.
func ConverterFor(quantity string) (UnitConverter, error) {
	c, ok := registry[quantity]
	if !ok {
		return nil, errUnknownQuantity(quantity)
	}
	return c, nil
}

// IsLinear reports whether quantity is converted with multiplicative factors.
func IsLinear(quantity string) bool {
	_, ok := registry[quantity].(*LinearConverter)
	return ok
}

// Units returns the unit names of quantity in definition order.
func Units(quantity string) ([]string, error) {
	c, err := ConverterFor(quantity)
	if err != nil {
		return nil, err
	}
	return c.Units(), nil
}

func linear(quantity string) (*LinearConverter, error) {
	c, err := ConverterFor(quantity)
	if err != nil {
		return nil, err
	}
	lc, ok := c.(*LinearConverter)
	if !ok {
		return nil, errNotLinear(quantity)
	}
	return lc, nil
}

// FactorOf returns the factor of unit relative to the standard unit of quantity.
// Temperature has no factors and returns an error wrapping [ErrNotLinear].
func FactorOf(quantity, unit string) (float64, error) {
	c, err := linear(quantity)
	if err != nil {
		return 0, err
	}
	return c.Factor(unit)
}

// Factors returns a copy of the factor table of quantity.
func Factors(quantity string) ([]Factor, error) {
	c, err := linear(quantity)
	if err != nil {
		return nil, err
	}
	return c.Factors(), nil
}

// StandardUnit returns the unit of quantity that every other unit is relative to.
// For temperature this is celsius, through which all conversions pass.
func StandardUnit(quantity string) (string, error) {
	c, err := ConverterFor(quantity)
	if err != nil {
		return "", err
	}
	if lc, ok := c.(*LinearConverter); ok {
		return lc.Standard(), nil
	}
	return Celsius.String(), nil
}

// Convert converts v of quantity from one unit to another.
func Convert(quantity string, v float64, from, to string) (float64, error) {
	c, err := ConverterFor(quantity)
	if err != nil {
		return 0, err
	}
	return c.Convert(v, from, to)
}
