package units

// A Factor is the number of Unit that equal one of its quantity's standard unit,
// so that a value in Unit is the standard value multiplied by Value.
type Factor struct {
	Unit  string  `json:"unit" yaml:"unit"`
	Value float64 `json:"factor" yaml:"factor"`
}

// Factor tables in definition order. The first entry of each table is the
// standard unit and must have a factor of exactly 1.
var definitions = []struct {
	quantity string
	factors  []Factor
}{
	{"length", []Factor{
		{"meter", 1},
		{"kilometer", 0.001},
		{"centimeter", 100},
		{"millimeter", 1000},
		{"micrometer", 1e+6},
		{"nanometer", 1e+9},
		{"mile", 0.000621371},
		{"yard", 1.09361},
		{"foot", 3.28084},
		{"inch", 39.3701},
		{"nautical_mile", 0.000539957},
	}},
	{"area", []Factor{
		{"square_meter", 1},
		{"square_kilometer", 1e-6},
		{"square_mile", 3.861e-7},
		{"square_yard", 1.19599},
		{"square_foot", 10.7639},
		{"square_inch", 1550},
		{"hectare", 1e-4},
		{"acre", 0.000247105},
	}},
	{"volume", []Factor{
		{"liter", 1},
		{"milliliter", 1000},
		{"us_liquid_gallon", 0.264172},
		{"us_liquid_quart", 1.05569},
		{"us_liquid_pint", 2.11338},
		{"us_legal_cup", 4.16667},
		{"fluid_ounce", 33.814},
		{"us_tablespoon", 67.628},
		{"us_teaspoon", 202.884},
		{"cubic_meter", 0.001},
		{"imperial_gallon", 0.219969},
		{"imperial_quart", 0.879877},
		{"imperial_pint", 1.75975},
		{"imperial_cup", 3.51951},
		{"imperial_tablespoon", 56.3121},
		{"imperial_teaspoon", 168.936},
		{"cubic_foot", 0.0353147},
		{"cubic_inch", 61.0237},
	}},
	{"mass", []Factor{
		{"gram", 1},
		{"tonne", 1e-6},
		{"kilogram", 0.001},
		{"milligram", 1000},
		{"microgram", 1e+6},
		{"imperial_ton", 9.8421e-7},
		{"us_ton", 1.1023e-6},
		{"stone", 0.000157473},
		{"pound", 0.00220462},
		{"ounce", 0.035274},
	}},
	{"time", []Factor{
		{"second", 1},
		{"nanosecond", 1e+9},
		{"microsecond", 1e+6},
		{"millisecond", 1000},
		{"minute", 0.0166667},
		{"hour", 0.000277778},
		{"day", 1.1574e-5},
		{"week", 1.6534e-6},
		{"month", 3.8052e-7},
		{"calendar_year", 3.171e-8},
		{"decade", 3.171e-9},
		{"century", 3.171e-10},
	}},
	{"energy", []Factor{
		{"joule", 1},
		{"kilejoule", 0.001},
		{"gram_calorie", 0.239006},
		{"kilo_calorie", 0.000239006},
		{"watt_hour", 0.000277778},
		{"kilowatt_hour", 2.7778e-7},
		{"electronvolt", 6.242e+18},
		{"british_thermal_unit", 0.000947817},
		{"us_therm", 9.4804e-9},
		{"foot_pound", 0.737562},
	}},
	{"frequency", []Factor{
		{"hertz", 1},
		{"kilohertz", 0.001},
		{"megahertz", 1e-6},
		{"gigahertz", 1e-9},
	}},
	{"pressure", []Factor{
		{"pascal", 1},
		{"kilopascal", 0.001},
		{"millimeter_of_mercury", 0.007502},
		{"bar", 1e-5},
		{"pound_per_square_inch", 0.000145038},
		{"standard_atmosphere", 9.8692e-6},
		{"torr", 0.00750062},
	}},
	{"speed", []Factor{
		{"knot", 1},
		{"mach", 0.001512},
		{"miles_per_hour", 1.15078},
		{"foot_per_second", 1.68781},
		{"centimeter_per_second", 51.44},
		{"meter_per_second", 0.514444},
		{"kilometer_per_hour", 1.852},
	}},
	{"plane_angle", []Factor{
		{"degree", 1},
		{"radian", 0.0174533},
		{"gradian", 1.11111},
		{"milliradian", 17.4533},
		{"minute_of_arc", 60},
		{"second_of_arc", 3600},
	}},
	{"fuel_economy", []Factor{
		{"miles_per_gallon", 1},
		{"miles_per_gallon_(imperial)", 1.20095},
		{"kilometer_per_liter", 0.425144},
		{"liter_per_100_kilometers", 235.215},
	}},
	{"data_transfer_rate", []Factor{
		{"bit_per_second", 1},
		{"kilobit_per_second", 0.001},
		{"kilobyte_per_second", 0.000125},
		{"kibibit_per_second", 0.000976563},
		{"megabit_per_second", 1e-6},
		{"megabyte_per_second", 1.25e-7},
		{"mebibit_per_second", 9.5367e-7},
		{"gigabit_per_second", 1e-9},
		{"gigabyte_per_second", 1.25e-10},
		{"gibibit_per_second", 9.3132e-10},
		{"terabit_per_second", 1e-12},
		{"terabyte_per_second", 1.25e-13},
		{"tebibit_per_second", 9.0949e-13},
	}},
	{"digital_storage", []Factor{
		{"bit", 1},
		{"kilobit", 0.001},
		{"kibibit", 0.000976563},
		{"megabit", 1e-6},
		{"mebibit", 9.5367e-7},
		{"gigabit", 1e-9},
		{"gibibit", 9.3132e-10},
		{"terabit", 1e-12},
		{"tebibit", 9.0949e-13},
		{"petabit", 1e-15},
		{"pebibit", 8.8818e-16},
		{"byte", 0.125},
		{"kilobyte", 0.000125},
		{"kibibyte", 0.00012207},
		{"megabyte", 1.25e-7},
		{"mebibyte", 1.1921e-7},
		{"gigabyte", 1.25e-10},
		{"gibibyte", 1.1642e-10},
		{"terabyte", 1.25e-13},
		{"tebibyte", 1.1369e-13},
		{"petabyte", 1.25e-16},
		{"pebibyte", 1.1102e-16},
	}},
}
