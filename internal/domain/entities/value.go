package entities

import (
	"github.com/shopspring/decimal"
)

// ValueKind tags which side of the text-or-number union a Value holds.
type ValueKind string

const (
	ValueKindText   ValueKind = "text"
	ValueKindNumber ValueKind = "number"
)

// Value is the runtime form of the text-or-number union. The zero Value
// is the number zero.
type Value struct {
	kind   ValueKind
	text   string
	number decimal.Decimal
}

func Text(s string) Value {
	return Value{kind: ValueKindText, text: s}
}

func Number(d decimal.Decimal) Value {
	return Value{kind: ValueKindNumber, number: d}
}

func NumberFromInt(n int64) Value {
	return Number(decimal.NewFromInt(n))
}

func NumberFromFloat(f float64) Value {
	return Number(decimal.NewFromFloat(f))
}

func (v Value) Kind() ValueKind {
	if v.kind == "" {
		return ValueKindNumber
	}
	return v.kind
}

// Number returns the numeric payload; zero for text values.
func (v Value) Number() decimal.Decimal {
	return v.number
}

// String renders the value as text: the text payload as-is, the numeric
// payload via decimal formatting.
func (v Value) String() string {
	if v.Kind() == ValueKindText {
		return v.text
	}
	return v.number.String()
}

// Combine merges two union values: any text operand forces text
// concatenation (numbers converted to text), two numbers sum.
func Combine(a, b Value) Value {
	if a.Kind() == ValueKindText || b.Kind() == ValueKindText {
		return Text(a.String() + b.String())
	}
	return Number(a.number.Add(b.number))
}

// Combination is a request to combine two union values.
type Combination struct {
	A Value
	B Value
}

// Combinable mirrors Value at the type level for callers whose operand
// kinds are known statically.
type Combinable interface {
	string | int | int64 | float64
}

// Lift converts a statically-known operand into the runtime union.
func Lift[T Combinable](v T) Value {
	switch x := any(v).(type) {
	case string:
		return Text(x)
	case int:
		return NumberFromInt(int64(x))
	case int64:
		return NumberFromInt(x)
	default:
		return NumberFromFloat(any(v).(float64))
	}
}

// MergeStrings is the text-in-text-out narrowing of Combine.
func MergeStrings[T ~string](a, b T) T {
	return a + b
}

// MergeNumeric constrains MergeNumbers to the numeric side of Combinable.
type MergeNumeric interface {
	~int | ~int64 | ~float64
}

// MergeNumbers is the number-in-number-out narrowing of Combine.
func MergeNumbers[N MergeNumeric](a, b N) N {
	return a + b
}

// Merge is the untyped fallback for mixed operands; same algorithm as
// Combine.
func Merge(a, b Value) Value {
	return Combine(a, b)
}
