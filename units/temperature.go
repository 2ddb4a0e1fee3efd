package units

// Temperature is the name of the only affine quantity.
const Temperature = "temperature"

// TempUnit identifies a temperature scale.
type TempUnit byte

const (
	Celsius    TempUnit = 'C'
	Fahrenheit TempUnit = 'F'
	Kelvin     TempUnit = 'K'
)

var tempUnits = []struct {
	name string
	unit TempUnit
}{
	{"celsius", Celsius},
	{"fahrenheit", Fahrenheit},
	{"kelvin", Kelvin},
}

// ParseTempUnit returns the TempUnit with the given name.
func ParseTempUnit(name string) (TempUnit, error) {
	for _, u := range tempUnits {
		if u.name == name {
			return u.unit, nil
		}
	}
	return 0, errUnknownUnit(Temperature, name)
}

func (u TempUnit) String() string {
	for _, t := range tempUnits {
		if t.unit == u {
			return t.name
		}
	}
	return "unknown"
}

// CelsiusTo converts v in degrees celsius to u.
func CelsiusTo(v float64, u TempUnit) float64 {
	switch u {
	case Fahrenheit:
		return (v * 1.8) + 32
	case Kelvin:
		return v + 273.15
	}
	return v
}

// ToCelsius converts v in u to degrees celsius.
func ToCelsius(v float64, u TempUnit) float64 {
	switch u {
	case Fahrenheit:
		return (v - 32) / 1.8
	case Kelvin:
		return v - 273.15
	}
	return v
}

// AffineConverter converts between celsius, fahrenheit and kelvin.
// Every pair is converted through celsius, so kelvin and fahrenheit
// compose the two offsets rather than sharing a single factor.
type AffineConverter struct{}

func (AffineConverter) Quantity() string {
	return Temperature
}

func (AffineConverter) Units() []string {
	u := make([]string, len(tempUnits))
	for i, t := range tempUnits {
		u[i] = t.name
	}
	return u
}

func (AffineConverter) Convert(v float64, from, to string) (float64, error) {
	uf, err := ParseTempUnit(from)
	if err != nil {
		return 0, err
	}
	ut, err := ParseTempUnit(to)
	if err != nil {
		return 0, err
	}
	if uf == ut {
		return v, nil
	}
	return CelsiusTo(ToCelsius(v, uf), ut), nil
}
