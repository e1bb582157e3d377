package types

import "strconv"

// Value is either literal SQL text or a prebuilt Fragment.
// The zero Value is the empty literal.
type Value struct {
	node *Fragment
	text string
}

// Lit wraps literal SQL text. The text is emitted as is.
func Lit(text string) Value {
	return Value{text: text}
}

// Node wraps a prebuilt fragment. A nil fragment yields the empty literal.
func Node(f *Fragment) Value {
	return Value{node: f}
}

// IsNode reports whether the value holds a fragment.
func (v Value) IsNode() bool {
	return v.node != nil
}

// Text returns the literal text, or the rendered fragment.
func (v Value) Text() string {
	if v.node != nil {
		return v.node.Render()
	}
	return v.text
}

// Fragment returns the wrapped fragment, or a fresh leaf holding the literal.
func (v Value) Fragment() *Fragment {
	if v.node != nil {
		return v.node
	}
	return NewFragment(v.text)
}

// Operand is the set of Go types accepted wherever a Value is expected.
type Operand interface {
	string | int | int64 | float64 | *Fragment | Value
}

// ValueOf resolves an operand into a Value.
func ValueOf[T Operand](v T) Value {
	switch x := any(v).(type) {
	case Value:
		return x
	case *Fragment:
		return Node(x)
	case string:
		return Lit(x)
	case int:
		return Lit(strconv.Itoa(x))
	case int64:
		return Lit(strconv.FormatInt(x, 10))
	case float64:
		return Lit(strconv.FormatFloat(x, 'f', -1, 64))
	}
	return Value{}
}

// ValuesOf resolves a list of operands.
func ValuesOf[T Operand](vs ...T) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = ValueOf(v)
	}
	return out
}
