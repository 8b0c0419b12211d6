package billing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent represents a percentage such as a tax rate or a discount rate.
// The expected range is 0 to 100 but it is not enforced.
type Percent struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// ParsePercent parses a percentage like "10" or "7.5".
func ParsePercent(s string) (Percent, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Percent{}, err
	}
	return Percent{value: d}, nil
}

// Of returns p percent of the given amount, at full precision.
func (p Percent) Of(m Money) Money {
	return Money{value: m.value.Mul(p.value).Div(hundred)}
}

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool         { return p.value.IsZero() }

// String renders the rate without a unit, e.g. "10" or "7.5".
func (p Percent) String() string { return p.value.String() }

// Fixed renders the rate with two decimal places, the form used in the
// invoice metadata record.
func (p Percent) Fixed() string { return p.value.StringFixed(2) }
