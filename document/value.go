package document

import "github.com/arloliu/mgjson/format"

// Value is a tagged union over the three static property value kinds:
// integer, boolean, and string. Construct values with Int, Bool, or String;
// the zero Value has no kind and is rejected by AddProperty with
// ErrUnsupportedType.
type Value struct {
	kind format.ValueKind
	num  int64
	str  string
	b    bool
}

// Int creates an integer property value.
func Int(v int64) Value {
	return Value{kind: format.KindInteger, num: v}
}

// Bool creates a boolean property value.
func Bool(v bool) Value {
	return Value{kind: format.KindBoolean, b: v}
}

// String creates a string property value.
func String(v string) Value {
	return Value{kind: format.KindString, str: v}
}

// Kind returns the value kind of the union.
func (v Value) Kind() format.ValueKind {
	return v.kind
}
