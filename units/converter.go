package units

import "slices"

// UnitConverter converts values between the units of a single quantity.
type UnitConverter interface {
	// Quantity returns the name of the quantity converted.
	Quantity() string
	// Units returns the unit names in definition order.
	Units() []string
	// Convert converts v from one unit to another. If either unit is not
	// defined for the quantity, the error wraps [ErrUnknownUnit].
	Convert(v float64, from, to string) (float64, error)
}

// LinearConverter converts between units that are proportional to a shared
// standard unit.
type LinearConverter struct {
	quantity string
	factors  []Factor
	index    map[string]float64
}

func newLinearConverter(quantity string, factors []Factor) *LinearConverter {
	c := &LinearConverter{
		quantity: quantity,
		factors:  factors,
		index:    make(map[string]float64, len(factors)),
	}
	var standard int
	for _, f := range factors {
		if f.Value <= 0 {
			panic("units: non-positive factor for " + quantity + "/" + f.Unit)
		}
		if _, ok := c.index[f.Unit]; ok {
			panic("units: duplicate unit " + quantity + "/" + f.Unit)
		}
		if f.Value == 1 {
			standard++
		}
		c.index[f.Unit] = f.Value
	}
	if standard != 1 || factors[0].Value != 1 {
		panic("units: " + quantity + " must have exactly one standard unit, listed first")
	}
	return c
}

func (c *LinearConverter) Quantity() string {
	return c.quantity
}

func (c *LinearConverter) Units() []string {
	u := make([]string, len(c.factors))
	for i, f := range c.factors {
		u[i] = f.Unit
	}
	return u
}

// Factors returns a copy of the factor table.
func (c *LinearConverter) Factors() []Factor {
	return slices.Clone(c.factors)
}

// Standard returns the unit whose factor is 1.
func (c *LinearConverter) Standard() string {
	return c.factors[0].Unit
}

// Factor returns the factor of unit relative to the standard unit.
func (c *LinearConverter) Factor(unit string) (float64, error) {
	f, ok := c.index[unit]
	if !ok {
		return 0, errUnknownUnit(c.quantity, unit)
	}
	return f, nil
}

// Convert converts v by way of the standard unit: v / factor(from) * factor(to).
// Converting a unit to itself returns v unchanged.
func (c *LinearConverter) Convert(v float64, from, to string) (float64, error) {
	ff, err := c.Factor(from)
	if err != nil {
		return 0, err
	}
	ft, err := c.Factor(to)
	if err != nil {
		return 0, err
	}
	if from == to {
		return v, nil
	}
	return (v / ff) * ft, nil
}
