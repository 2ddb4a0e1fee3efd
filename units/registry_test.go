package units

import (
	"errors"
	"slices"
	"testing"
)

func TestRegistryTables(t *testing.T) {
	var tests = []struct {
		quantity string
		standard string
		units    int
		unit     string
		factor   float64
	}{
		{"length", "meter", 11, "mile", 0.000621371},
		{"length", "meter", 11, "inch", 39.3701},
		{"area", "square_meter", 8, "acre", 0.000247105},
		{"volume", "liter", 18, "us_liquid_gallon", 0.264172},
		{"mass", "gram", 10, "pound", 0.00220462},
		{"time", "second", 12, "hour", 0.000277778},
		{"energy", "joule", 10, "kilowatt_hour", 2.7778e-7},
		{"energy", "joule", 10, "kilejoule", 0.001},
		{"frequency", "hertz", 4, "gigahertz", 1e-9},
		{"pressure", "pascal", 7, "standard_atmosphere", 9.8692e-6},
		{"speed", "knot", 7, "kilometer_per_hour", 1.852},
		{"plane_angle", "degree", 6, "radian", 0.0174533},
		{"fuel_economy", "miles_per_gallon", 4, "liter_per_100_kilometers", 235.215},
		{"fuel_economy", "miles_per_gallon", 4, "miles_per_gallon_(imperial)", 1.20095},
		{"data_transfer_rate", "bit_per_second", 13, "megabyte_per_second", 1.25e-7},
		{"digital_storage", "bit", 22, "byte", 0.125},
		{"digital_storage", "bit", 22, "pebibyte", 1.1102e-16},
	}
	for _, tt := range tests {
		uu, err := Units(tt.quantity)
		if err != nil {
			t.Fatalf("%s: %v", tt.quantity, err)
		}
		if len(uu) != tt.units {
			t.Errorf("%s: Wanted %d units, got %d", tt.quantity, tt.units, len(uu))
		}
		if uu[0] != tt.standard {
			t.Errorf("%s: Wanted %s listed first, got %s", tt.quantity, tt.standard, uu[0])
		}
		std, err := StandardUnit(tt.quantity)
		if err != nil {
			t.Fatalf("%s: %v", tt.quantity, err)
		}
		if std != tt.standard {
			t.Errorf("%s: Wanted standard %s, got %s", tt.quantity, tt.standard, std)
		}
		if f, _ := FactorOf(tt.quantity, tt.standard); f != 1 {
			t.Errorf("%s/%s: Wanted factor 1, got %v", tt.quantity, tt.standard, f)
		}
		f, err := FactorOf(tt.quantity, tt.unit)
		if err != nil {
			t.Fatalf("%s/%s: %v", tt.quantity, tt.unit, err)
		}
		if f != tt.factor {
			t.Errorf("%s/%s: Wanted %v, got %v", tt.quantity, tt.unit, tt.factor, f)
		}
	}
}

func TestRegistryStandardUnique(t *testing.T) {
	for q := range All() {
		if !IsLinear(q) {
			continue
		}
		ff, err := Factors(q)
		if err != nil {
			t.Fatalf("%s: %v", q, err)
		}
		var n int
		for _, f := range ff {
			if f.Value <= 0 {
				t.Errorf("%s/%s: factor %v is not positive", q, f.Unit, f.Value)
			}
			if f.Value == 1 {
				n++
			}
		}
		if n != 1 {
			t.Errorf("%s: Wanted exactly one standard unit, got %d", q, n)
		}
	}
}

func TestRegistryTemperature(t *testing.T) {
	uu, err := Units(Temperature)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"celsius", "fahrenheit", "kelvin"}; !slices.Equal(uu, want) {
		t.Errorf("Wanted %v, got %v", want, uu)
	}
	if _, err := FactorOf(Temperature, "celsius"); !errors.Is(err, ErrNotLinear) {
		t.Errorf("FactorOf: Wanted %v, got %v", ErrNotLinear, err)
	}
	if _, err := Factors(Temperature); !errors.Is(err, ErrNotLinear) {
		t.Errorf("Factors: Wanted %v, got %v", ErrNotLinear, err)
	}
	if std, _ := StandardUnit(Temperature); std != "celsius" {
		t.Errorf("StandardUnit: Wanted celsius, got %s", std)
	}
}

func TestRegistryLookupErrors(t *testing.T) {
	if _, err := Units("luminosity"); !errors.Is(err, ErrUnknownQuantity) {
		t.Errorf("Units: Wanted %v, got %v", ErrUnknownQuantity, err)
	}
	if _, err := FactorOf("luminosity", "lux"); !errors.Is(err, ErrUnknownQuantity) {
		t.Errorf("FactorOf: Wanted %v, got %v", ErrUnknownQuantity, err)
	}
	if _, err := FactorOf("length", "furlong"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("FactorOf: Wanted %v, got %v", ErrUnknownUnit, err)
	}
	if _, err := StandardUnit("luminosity"); !errors.Is(err, ErrUnknownQuantity) {
		t.Errorf("StandardUnit: Wanted %v, got %v", ErrUnknownQuantity, err)
	}
}

func TestRegistryReadOnly(t *testing.T) {
	qq := Quantities()
	qq[0] = "luminosity"
	if Quantities()[0] != "length" {
		t.Error("Quantities: registry modified through returned slice")
	}

	uu, _ := Units("length")
	uu[0] = "furlong"
	if uu, _ := Units("length"); uu[0] != "meter" {
		t.Error("Units: registry modified through returned slice")
	}

	ff, _ := Factors("length")
	ff[0].Value = 2
	if f, _ := FactorOf("length", "meter"); f != 1 {
		t.Error("Factors: registry modified through returned slice")
	}
}

func TestNewLinearConverterPanics(t *testing.T) {
	var tests = []struct {
		name    string
		factors []Factor
	}{
		{"no standard", []Factor{{"a", 2}, {"b", 3}}},
		{"standard not first", []Factor{{"a", 2}, {"b", 1}}},
		{"two standards", []Factor{{"a", 1}, {"b", 1}}},
		{"zero factor", []Factor{{"a", 1}, {"b", 0}}},
		{"negative factor", []Factor{{"a", 1}, {"b", -1}}},
		{"duplicate unit", []Factor{{"a", 1}, {"a", 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Wanted panic")
				}
			}()
			newLinearConverter("test", tt.factors)
		})
	}
}
