package analytics

import "github.com/shopspring/decimal"

type Direction string

const (
	Positive Direction = "positive"
	Negative Direction = "negative"
	Neutral  Direction = "neutral"
)

// Polarity states which way an increase should be colored. Income cards want
// HigherIsBetter; expense cards want LowerIsBetter. The mapping belongs to
// the call site, not to the metric itself.
type Polarity int

const (
	HigherIsBetter Polarity = iota
	LowerIsBetter
)

// Classify compares a current value with its reference-period value and maps
// the change onto a display direction under the given polarity.
func Classify(current, reference decimal.Decimal, p Polarity) Direction {
	cmp := current.Cmp(reference)
	if cmp == 0 {
		return Neutral
	}

	increased := cmp > 0
	if p == LowerIsBetter {
		increased = !increased
	}
	if increased {
		return Positive
	}
	return Negative
}

// NoChange is the placeholder shown when a percentage change is undefined.
const NoChange = "—"

// UnboundedIncrease is shown when the reference value is zero but the
// current one is not: the relative change has no finite value.
const UnboundedIncrease = "+∞%"

// FormatDelta renders the signed percentage change of current against
// reference with one decimal place. A zero reference yields the unbounded
// marker when the current value is positive and the no-change dash
// otherwise.
func FormatDelta(current, reference decimal.Decimal) string {
	if reference.IsZero() {
		if current.IsPositive() {
			return UnboundedIncrease
		}
		return NoChange
	}

	delta := current.Sub(reference).
		Div(reference.Abs()).
		Mul(decimal.NewFromInt(100))

	s := delta.StringFixed(1)
	if delta.IsPositive() {
		s = "+" + s
	}
	return s + "%"
}
