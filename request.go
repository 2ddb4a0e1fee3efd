package unitconv

import (
	"errors"
	"math"

	"github.com/lone-faerie/unitconv/internal/format"
	"github.com/lone-faerie/unitconv/units"
)

// Error codes reported in [Result.Code].
const (
	CodeUnknownQuantity = "unknown_quantity"
	CodeUnknownUnit     = "unknown_unit"
	CodeOutOfRange      = "out_of_range"
	CodeBadRequest      = "bad_request"
)

// ErrOutOfRange is returned when a conversion overflows or is given a value
// that is not a finite number.
var ErrOutOfRange = errors.New("value out of range")

// Request is a single conversion of Value from one unit of Quantity to another.
type Request struct {
	ID       string  `json:"id,omitempty" yaml:"id,omitempty"`
	Quantity string  `json:"quantity" yaml:"quantity"`
	Value    float64 `json:"value" yaml:"value"`
	From     string  `json:"from" yaml:"from"`
	To       string  `json:"to" yaml:"to"`
	// ReplyTo is the (optional) MQTT topic the result is published to.
	ReplyTo string `json:"reply_to,omitempty" yaml:"-"`
}

// Result is the outcome of a [Request]. Exactly one of Result or Error is set.
type Result struct {
	ID       string   `json:"id,omitempty" yaml:"id,omitempty"`
	Quantity string   `json:"quantity" yaml:"quantity"`
	Value    float64  `json:"value" yaml:"value"`
	From     string   `json:"from" yaml:"from"`
	To       string   `json:"to" yaml:"to"`
	Result   *float64 `json:"result,omitempty" yaml:"result,omitempty"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
	Code     string   `json:"code,omitempty" yaml:"code,omitempty"`
}

// Convert converts the request, rounding the result to prec digits after
// the decimal point unless prec is negative.
func (r *Request) Convert(prec int) (float64, error) {
	if math.IsInf(r.Value, 0) || math.IsNaN(r.Value) {
		return 0, ErrOutOfRange
	}
	v, err := units.Convert(r.Quantity, r.Value, r.From, r.To)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrOutOfRange
	}
	return format.Round(v, prec), nil
}

// Do performs the request and reports the outcome as a Result.
func (r *Request) Do(prec int) Result {
	res := Result{
		ID:       r.ID,
		Quantity: r.Quantity,
		Value:    r.Value,
		From:     r.From,
		To:       r.To,
	}
	v, err := r.Convert(prec)
	if err != nil {
		res.Error = err.Error()
		res.Code = ErrorCode(err)
		return res
	}
	res.Result = &v
	return res
}

// ErrorCode returns the code reported in [Result.Code] for err.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, units.ErrUnknownQuantity):
		return CodeUnknownQuantity
	case errors.Is(err, units.ErrUnknownUnit):
		return CodeUnknownUnit
	case errors.Is(err, ErrOutOfRange):
		return CodeOutOfRange
	}
	return CodeBadRequest
}
