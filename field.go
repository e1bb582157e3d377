package fragql

import "github.com/zoobzio/fragql/internal/types"

// Field is a select-list or grouping expression with an optional alias.
type Field struct {
	Expr  Value
	Alias string
}

// F creates a field from a column name, literal expression or fragment.
// Only the first alias is used.
func F[T Operand](expr T, alias ...string) Field {
	f := Field{Expr: types.ValueOf(expr)}
	if len(alias) > 0 {
		f.Alias = alias[0]
	}
	return f
}

// Fields creates one unaliased field per name.
func Fields(names ...string) []Field {
	out := make([]Field, len(names))
	for i, name := range names {
		out[i] = Field{Expr: types.Lit(name)}
	}
	return out
}

// fragment renders as "expr" or "expr AS alias".
func (f Field) fragment() *Fragment {
	if f.Alias == "" {
		return f.Expr.Fragment()
	}
	return types.NewFragment("").
		AddChildren(groupSource, f.Expr.Fragment()).
		SetGroupFormat(groupSource, types.SuppressName(true)).
		AddChildren(groupAlias, types.NewFragment(f.Alias)).
		SetGroupFormat(groupAlias, types.GroupPrefix(" "), types.NameSeparator(" "))
}

// Assignment is a single "field = value" pair of an UPDATE.
type Assignment struct {
	Field string
	Value Value
}

// Assign creates an UPDATE assignment.
func Assign[T Operand](field string, value T) Assignment {
	return Assignment{Field: field, Value: types.ValueOf(value)}
}

// Order is a single ORDER BY item.
type Order struct {
	Expr      *Fragment
	Field     string
	Direction Direction
}

// O orders by a field in the given direction.
func O(field string, dir Direction) Order {
	return Order{Field: field, Direction: dir}
}

// OrderExpr orders by a prebuilt fragment, emitted verbatim.
func OrderExpr(expr *Fragment) Order {
	return Order{Expr: expr}
}

func (o Order) fragment() *Fragment {
	if o.Expr != nil {
		return o.Expr
	}
	if o.Direction == "" {
		return types.NewFragment(o.Field)
	}
	return types.NewFragment(o.Field).
		WithInnerPrefix(" ").
		AddChildren(groupOrder, types.NewFragment(string(o.Direction))).
		SetGroupFormat(groupOrder, types.SuppressName(true))
}

// Row collects the values of one INSERT tuple.
func Row[T Operand](values ...T) []Value {
	return types.ValuesOf(values...)
}

// tuple renders values as "(v1, v2, ...)".
func tuple(values []Value) *Fragment {
	items := make([]*Fragment, len(values))
	for i, v := range values {
		items[i] = v.Fragment()
	}
	return types.Framed("", "(", "", ")").
		AddChildren(groupItems, items...).
		SetGroupFormat(groupItems, types.Separator(", "), types.SuppressName(true))
}
