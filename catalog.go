package unitconv

import (
	"github.com/lone-faerie/unitconv/internal/format"
	"github.com/lone-faerie/unitconv/units"
)

// Quantity describes a supported quantity and its units.
type Quantity struct {
	Name     string `json:"name" yaml:"name"`
	Label    string `json:"label" yaml:"label"`
	Standard string `json:"standard" yaml:"standard"`
	Linear   bool   `json:"linear" yaml:"linear"`
	Units    []Unit `json:"units" yaml:"units"`
}

// Unit describes a single unit. Factor is zero for units of
// quantities that are not linear.
type Unit struct {
	Name   string  `json:"name" yaml:"name"`
	Label  string  `json:"label" yaml:"label"`
	Factor float64 `json:"factor,omitempty" yaml:"factor,omitempty"`
}

// Describe returns the description of the named quantity.
func Describe(name string) (Quantity, error) {
	q := Quantity{
		Name:   name,
		Label:  format.Label(name),
		Linear: units.IsLinear(name),
	}
	var err error
	if q.Standard, err = units.StandardUnit(name); err != nil {
		return q, err
	}
	if q.Linear {
		ff, _ := units.Factors(name)
		for _, f := range ff {
			q.Units = append(q.Units, Unit{Name: f.Unit, Label: format.Label(f.Unit), Factor: f.Value})
		}
		return q, nil
	}
	uu, _ := units.Units(name)
	for _, u := range uu {
		q.Units = append(q.Units, Unit{Name: u, Label: format.Label(u)})
	}
	return q, nil
}

// Catalog returns the description of every supported quantity in
// definition order.
func Catalog() []Quantity {
	var qq []Quantity
	for name := range units.All() {
		q, err := Describe(name)
		if err != nil {
			panic(err)
		}
		qq = append(qq, q)
	}
	return qq
}
