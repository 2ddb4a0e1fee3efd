package units

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func approx(got, want, tol float64) bool {
	if want == 0 {
		return math.Abs(got) <= tol
	}
	return math.Abs(got-want)/math.Abs(want) <= tol
}

func TestConvert(t *testing.T) {
	var tests = []struct {
		quantity string
		value    float64
		from     string
		to       string
		want     float64
	}{
		{"length", 1, "meter", "centimeter", 100},
		{"mass", 1000, "gram", "kilogram", 1},
		{"temperature", 0, "celsius", "fahrenheit", 32},
		{"temperature", 32, "fahrenheit", "celsius", 0},
		{"temperature", 0, "celsius", "kelvin", 273.15},
		{"temperature", 273.15, "kelvin", "fahrenheit", 32},
		{"digital_storage", 1, "byte", "bit", 8},
	}
	for _, tt := range tests {
		got, err := Convert(tt.quantity, tt.value, tt.from, tt.to)
		if err != nil {
			t.Errorf("%s %v %s->%s: %v", tt.quantity, tt.value, tt.from, tt.to, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s %v %s->%s: Wanted %v, got %v", tt.quantity, tt.value, tt.from, tt.to, tt.want, got)
		}
	}
}

func TestConvertApprox(t *testing.T) {
	var tests = []struct {
		quantity string
		value    float64
		from     string
		to       string
		want     float64
	}{
		{"length", 1, "mile", "meter", 1609.34},
		{"length", 12, "inch", "foot", 1},
		{"area", 1, "acre", "square_meter", 4046.86},
		{"volume", 1, "us_liquid_gallon", "liter", 3.78541},
		{"mass", 1, "pound", "gram", 453.592},
		{"time", 1, "hour", "minute", 60},
		{"energy", 1, "kilowatt_hour", "joule", 3.6e6},
		{"frequency", 1, "gigahertz", "megahertz", 1000},
		{"pressure", 1, "standard_atmosphere", "kilopascal", 101.325},
		{"speed", 100, "kilometer_per_hour", "meter_per_second", 27.7778},
		{"plane_angle", 1, "radian", "degree", 57.2958},
		{"fuel_economy", 1, "miles_per_gallon", "kilometer_per_liter", 0.425144},
		{"data_transfer_rate", 1, "megabyte_per_second", "megabit_per_second", 8},
		{"digital_storage", 1, "kibibyte", "byte", 1024},
		{"temperature", -40, "celsius", "fahrenheit", -40},
		{"temperature", 212, "fahrenheit", "kelvin", 373.15},
		{"temperature", 0, "kelvin", "celsius", -273.15},
	}
	for _, tt := range tests {
		got, err := Convert(tt.quantity, tt.value, tt.from, tt.to)
		if err != nil {
			t.Errorf("%s %v %s->%s: %v", tt.quantity, tt.value, tt.from, tt.to, err)
			continue
		}
		if !approx(got, tt.want, 1e-3) {
			t.Errorf("%s %v %s->%s: Wanted ~%v, got %v", tt.quantity, tt.value, tt.from, tt.to, tt.want, got)
		}
	}
}

var values = []float64{0, 1, -5, 0.1, 123.456, 1e6, 3e-9}

func TestConvertIdentity(t *testing.T) {
	for q := range All() {
		uu, err := Units(q)
		if err != nil {
			t.Fatalf("%s: %v", q, err)
		}
		for _, u := range uu {
			for _, v := range values {
				got, err := Convert(q, v, u, u)
				if err != nil {
					t.Fatalf("%s/%s: %v", q, u, err)
				}
				if got != v {
					t.Errorf("%s/%s: Wanted %v, got %v", q, u, v, got)
				}
			}
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	for q := range All() {
		uu, _ := Units(q)
		t.Run(q, func(t *testing.T) {
			for _, u1 := range uu {
				for _, u2 := range uu {
					for _, v := range values {
						mid, err := Convert(q, v, u1, u2)
						if err != nil {
							t.Fatalf("%s->%s: %v", u1, u2, err)
						}
						got, err := Convert(q, mid, u2, u1)
						if err != nil {
							t.Fatalf("%s->%s: %v", u2, u1, err)
						}
						if !approx(got, v, 1e-3) {
							t.Errorf("%v %s->%s->%s: got %v", v, u1, u2, u1, got)
						}
					}
				}
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	var tests = []struct {
		quantity string
		from     string
		to       string
		want     error
		unit     string
	}{
		{"luminosity", "candela", "lumen", ErrUnknownQuantity, ""},
		{"", "meter", "meter", ErrUnknownQuantity, ""},
		{"length", "furlong", "meter", ErrUnknownUnit, "furlong"},
		{"length", "meter", "furlong", ErrUnknownUnit, "furlong"},
		{"length", "gram", "meter", ErrUnknownUnit, "gram"},
		{"length", "furlong", "furlong", ErrUnknownUnit, "furlong"},
		{"temperature", "rankine", "celsius", ErrUnknownUnit, "rankine"},
		{"temperature", "celsius", "Kelvin", ErrUnknownUnit, "Kelvin"},
		{"temperature", "meter", "meter", ErrUnknownUnit, "meter"},
	}
	for _, tt := range tests {
		_, err := Convert(tt.quantity, 1, tt.from, tt.to)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s %s->%s: Wanted %v, got %v", tt.quantity, tt.from, tt.to, tt.want, err)
			continue
		}
		var e *Error
		if !errors.As(err, &e) {
			t.Errorf("%s %s->%s: %T is not *Error", tt.quantity, tt.from, tt.to, err)
			continue
		}
		if e.Quantity != tt.quantity || e.Unit != tt.unit {
			t.Errorf("%s %s->%s: Wanted (%q, %q), got (%q, %q)", tt.quantity, tt.from, tt.to, tt.quantity, tt.unit, e.Quantity, e.Unit)
		}
	}
}

func TestErrorString(t *testing.T) {
	var tests = []struct {
		err  error
		want string
	}{
		{errUnknownQuantity("luminosity"), `unknown quantity "luminosity"`},
		{errUnknownUnit("length", "furlong"), `unknown unit "furlong" for length`},
		{errNotLinear("temperature"), "temperature is not a linear quantity"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Wanted %q, got %q", tt.want, got)
		}
	}
}

func TestConverterFor(t *testing.T) {
	c, err := ConverterFor("temperature")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(AffineConverter); !ok {
		t.Errorf("temperature: Wanted AffineConverter, got %T", c)
	}
	for _, q := range Quantities() {
		if q == Temperature {
			continue
		}
		c, err := ConverterFor(q)
		if err != nil {
			t.Fatalf("%s: %v", q, err)
		}
		if _, ok := c.(*LinearConverter); !ok {
			t.Errorf("%s: Wanted *LinearConverter, got %T", q, c)
		}
		if c.Quantity() != q {
			t.Errorf("%s: Quantity() returned %s", q, c.Quantity())
		}
		if !IsLinear(q) {
			t.Errorf("%s: IsLinear returned false", q)
		}
	}
	if IsLinear(Temperature) {
		t.Error("temperature: IsLinear returned true")
	}
	if IsLinear("luminosity") {
		t.Error("luminosity: IsLinear returned true")
	}
}

func TestQuantitiesOrder(t *testing.T) {
	want := []string{
		"length", "area", "volume", "mass", "time", "energy", "frequency",
		"pressure", "speed", "plane_angle", "fuel_economy",
		"data_transfer_rate", "digital_storage", "temperature",
	}
	if got := Quantities(); !slices.Equal(got, want) {
		t.Errorf("Wanted %v, got %v", want, got)
	}
	if got := slices.Collect(All()); !slices.Equal(got, want) {
		t.Errorf("All: Wanted %v, got %v", want, got)
	}
}
