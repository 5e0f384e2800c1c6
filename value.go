package cliargs

import "strconv"

// Kind discriminates the variants a Value may hold. The set is closed:
// a flag's type is fixed by the Kind of its default value and never changes.
type Kind int

const (
	// KindInvalid is the Kind of the zero Value. A flag whose default was
	// never set carries it and trips the TypeMismatch guard during coercion.
	KindInvalid Kind = iota
	// KindInt holds a signed integer
	KindInt
	// KindBool holds a boolean
	KindBool
	// KindString holds free text
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	}

	return "invalid"
}

// Value is an immutable tagged union over int, bool and string. Construct
// one with Int, Bool or String and read it back with the matching accessor.
type Value struct {
	kind Kind
	num  int
	b    bool
	str  string
}

// Int wraps a signed integer in a Value
func Int(v int) Value {
	return Value{kind: KindInt, num: v}
}

// Bool wraps a boolean in a Value
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// String wraps free text in a Value
func String(v string) Value {
	return Value{kind: KindString, str: v}
}

// Kind returns the variant held by the Value
func (v Value) Kind() Kind {
	return v.kind
}

// AsInt returns the integer held by the Value. The second return value is
// false when the Value holds a different variant.
func (v Value) AsInt() (int, bool) {
	return v.num, v.kind == KindInt
}

// AsBool returns the boolean held by the Value. The second return value is
// false when the Value holds a different variant.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsString returns the text held by the Value. The second return value is
// false when the Value holds a different variant.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// String renders the Value for display purposes
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.str
	}

	return "<invalid>"
}
