package unitconv

import (
	"errors"
	"math"
	"testing"

	"github.com/lone-faerie/unitconv/units"
)

func TestRequestDo(t *testing.T) {
	var tests = []struct {
		req  Request
		prec int
		want float64
		code string
	}{
		{Request{Quantity: "length", Value: 1, From: "meter", To: "centimeter"}, -1, 100, ""},
		{Request{Quantity: "length", Value: 1, From: "mile", To: "meter"}, 1, 1609.3, ""},
		{Request{Quantity: "temperature", Value: 100, From: "celsius", To: "fahrenheit"}, -1, 212, ""},
		{Request{Quantity: "luminosity", Value: 1, From: "lux", To: "lux"}, -1, 0, CodeUnknownQuantity},
		{Request{Quantity: "length", Value: 1, From: "furlong", To: "meter"}, -1, 0, CodeUnknownUnit},
		{Request{Quantity: "length", Value: math.NaN(), From: "meter", To: "meter"}, -1, 0, CodeOutOfRange},
		{Request{Quantity: "energy", Value: math.MaxFloat64, From: "joule", To: "electronvolt"}, -1, 0, CodeOutOfRange},
	}
	for _, tt := range tests {
		res := tt.req.Do(tt.prec)
		if res.Code != tt.code {
			t.Errorf("%+v: Wanted code %q, got %q (%s)", tt.req, tt.code, res.Code, res.Error)
			continue
		}
		if tt.code != "" {
			if res.Result != nil {
				t.Errorf("%+v: Wanted no result, got %v", tt.req, *res.Result)
			}
			if res.Error == "" {
				t.Errorf("%+v: Wanted error message", tt.req)
			}
			continue
		}
		if res.Result == nil {
			t.Errorf("%+v: Wanted result, got nil", tt.req)
			continue
		}
		if *res.Result != tt.want {
			t.Errorf("%+v: Wanted %v, got %v", tt.req, tt.want, *res.Result)
		}
		if res.Quantity != tt.req.Quantity || res.From != tt.req.From || res.To != tt.req.To {
			t.Errorf("%+v: Result does not echo request: %+v", tt.req, res)
		}
	}
}

func TestErrorCode(t *testing.T) {
	var tests = []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&units.Error{Quantity: "x", Err: units.ErrUnknownQuantity}, CodeUnknownQuantity},
		{&units.Error{Quantity: "x", Unit: "y", Err: units.ErrUnknownUnit}, CodeUnknownUnit},
		{ErrOutOfRange, CodeOutOfRange},
		{errors.New("invalid character"), CodeBadRequest},
	}
	for _, tt := range tests {
		if got := ErrorCode(tt.err); got != tt.want {
			t.Errorf("%v: Wanted %q, got %q", tt.err, tt.want, got)
		}
	}
}

func TestCatalog(t *testing.T) {
	qq := Catalog()
	if len(qq) != len(units.Quantities()) {
		t.Fatalf("Wanted %d quantities, got %d", len(units.Quantities()), len(qq))
	}
	for i, name := range units.Quantities() {
		q := qq[i]
		if q.Name != name {
			t.Errorf("%d: Wanted %s, got %s", i, name, q.Name)
		}
		uu, _ := units.Units(name)
		if len(q.Units) != len(uu) {
			t.Errorf("%s: Wanted %d units, got %d", name, len(uu), len(q.Units))
		}
	}
	length := qq[0]
	if length.Label != "Length" || length.Standard != "meter" || !length.Linear {
		t.Errorf("length: %+v", length)
	}
	if u := length.Units[6]; u.Name != "mile" || u.Factor != 0.000621371 {
		t.Errorf("length: Wanted mile 0.000621371, got %+v", u)
	}
	temp := qq[len(qq)-1]
	if temp.Linear || temp.Standard != "celsius" || temp.Units[2].Label != "Kelvin" {
		t.Errorf("temperature: %+v", temp)
	}
	if _, err := Describe("luminosity"); !errors.Is(err, units.ErrUnknownQuantity) {
		t.Errorf("luminosity: Wanted %v, got %v", units.ErrUnknownQuantity, err)
	}
}
