package model

import (
	"strconv"
	"time"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindDate
	KindBool
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// DateLayout is the layout used when rendering date cells
const DateLayout = "2006-01-02 15:04:05"

// nullText is what a missing value renders as in sample rows
const nullText = "NaN"

// Value is a single cell value. The zero Value is Null.
type Value struct {
	kind Kind
	str  string
	num  float64
	date time.Time
	b    bool
}

// Null returns the empty value
func Null() Value { return Value{} }

// String wraps text. Empty text is treated as Null.
func String(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{kind: KindString, str: s}
}

// Number wraps a numeric cell
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Date wraps a date/time cell
func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }

// Bool wraps a boolean cell
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports the variant of v
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds no value
func (v Value) IsNull() bool { return v.kind == KindNull }

// Text returns the raw string for String values and "" otherwise
func (v Value) Text() string {
	if v.kind == KindString {
		return v.str
	}
	return ""
}

// String renders v for the report
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindDate:
		return v.date.Format(DateLayout)
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	default:
		return nullText
	}
}

// key identifies v for distinct counting; values of different kinds never collide.
func (v Value) key() string {
	return v.kind.String() + ":" + v.String()
}
