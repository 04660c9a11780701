package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Kind tags the scalar held by a Value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindNull
	KindText
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "absent"
	}
}

// Value is a single record field. The zero Value is Absent.
type Value struct {
	kind Kind
	text string
	num  float64
}

// Null returns an explicit null value.
func Null() Value { return Value{kind: KindNull} }

// Text wraps a string value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number wraps a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Kind reports which scalar the value holds.
func (v Value) Kind() Kind { return v.kind }

// Blank reports whether the value is absent, null, or exactly the empty string.
// Whitespace-only text is not blank.
func (v Value) Blank() bool {
	switch v.kind {
	case KindAbsent, KindNull:
		return true
	case KindText:
		return v.text == ""
	}
	return false
}

// Float converts the value to a finite number. Empty and whitespace-only text
// never convert, even though a lenient coercion would read them as zero.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return 0, false
		}
		return v.num, true
	case KindText:
		s := strings.TrimSpace(v.text)
		if s == "" {
			return 0, false
		}
		f, err := cast.ToFloat64E(s)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// String renders the value as display text. Absent and null render empty.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return formatNumber(v.num)
	}
	return ""
}

// formatNumber prints plain decimals for magnitudes in [1e-6, 1e21) and
// exponent form with an unpadded exponent ("1e+21", "1e-7") outside it.
func formatNumber(f float64) string {
	if a := math.Abs(f); a == 0 || (a >= 1e-6 && a < 1e21) {
		return cast.ToString(f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mant, sign, exp := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	return mant + "e" + string(sign) + exp
}
