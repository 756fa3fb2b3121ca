package dataset

import (
	"cmp"
	"encoding/json"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	Numeric Kind = iota
	Text
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Value is a single observation that is either a number or a text label.
// The zero Value is the number 0.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Num returns a numeric Value.
func Num(f float64) Value {
	return Value{kind: Numeric, num: f}
}

// Label returns a text Value.
func Label(s string) Value {
	return Value{kind: Text, text: s}
}

// Floats converts numbers into Values.
func Floats(values ...float64) []Value {
	result := make([]Value, len(values))
	for i, v := range values {
		result[i] = Num(v)
	}
	return result
}

// Ints converts integers into numeric Values.
func Ints(values ...int) []Value {
	result := make([]Value, len(values))
	for i, v := range values {
		result[i] = Num(float64(v))
	}
	return result
}

// Strings converts strings into text Values.
func Strings(values ...string) []Value {
	result := make([]Value, len(values))
	for i, v := range values {
		result[i] = Label(v)
	}
	return result
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// Float returns the number held by v and whether v is numeric.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == Numeric
}

// Text returns the label held by v and whether v is text.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == Text
}

// IsNumeric reports whether v holds a number.
func (v Value) IsNumeric() bool {
	return v.kind == Numeric
}

func (v Value) String() string {
	if v.kind == Text {
		return v.text
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// MarshalJSON encodes numbers as JSON numbers and labels as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == Text {
		return json.Marshal(v.text)
	}
	return json.Marshal(v.num)
}

// Equal reports whether a and b hold the same variant and the same payload.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == Text {
		return a.text == b.text
	}
	return a.num == b.num
}

// Compare orders Values: numbers ascending, then text labels in byte order.
// Every number sorts before every label. It returns -1, 0 or +1.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	if a.kind == Text {
		return cmp.Compare(a.text, b.text)
	}
	return cmp.Compare(a.num, b.num)
}

// AllNumeric reports whether every value is a number.
func AllNumeric(values []Value) bool {
	for _, v := range values {
		if v.kind != Numeric {
			return false
		}
	}
	return true
}
