package taxlot

import "github.com/shopspring/decimal"

// dust is the threshold under which quantities are considered floating-point
// residue and snap to exactly zero.
var dust = decimal.New(1, -10) // 1e-10

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is an asset amount.
type Quantity struct {
	value decimal.Decimal
}

// Q creates a Quantity from a numeric constant or a decimal.
func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (t Quantity) Equal(p Quantity) bool        { return t.value.Equal(p.value) }
func (t Quantity) LessThan(p Quantity) bool     { return t.value.LessThan(p.value) }
func (t Quantity) GreaterThan(p Quantity) bool  { return t.value.GreaterThan(p.value) }
func (t Quantity) Div(p Quantity) Quantity      { return Quantity{value: t.value.Div(p.value)} }
func (t Quantity) Mul(p Quantity) Quantity      { return Quantity{value: t.value.Mul(p.value)} }
func (t Quantity) Add(p Quantity) Quantity      { return Quantity{value: t.value.Add(p.value)} }
func (t Quantity) Sub(p Quantity) Quantity      { return Quantity{value: t.value.Sub(p.value)} }
func (t Quantity) IsNegative() bool             { return t.value.IsNegative() }
func (t Quantity) IsPositive() bool             { return t.value.IsPositive() }
func (t Quantity) IsZero() bool                 { return t.value.IsZero() }
func (t Quantity) InexactFloat64() float64      { return t.value.InexactFloat64() }
func (q Quantity) String() string               { return q.value.String() }

// Min returns the smaller of t and p.
func (t Quantity) Min(p Quantity) Quantity {
	if t.value.LessThanOrEqual(p.value) {
		return t
	}
	return p
}

// Snap collapses sub-dust residue to exactly zero, neutralizing accumulated
// rounding drift after repeated partial consumptions.
func (t Quantity) Snap() Quantity {
	if t.value.Abs().LessThan(dust) {
		return Quantity{}
	}
	return t
}

// MarshalJSON implements the json.Marshaler interface for Quantity.
func (t Quantity) MarshalJSON() ([]byte, error) {
	return t.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Quantity.
func (t *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return t.value.UnmarshalJSON(decimalBytes)
}
