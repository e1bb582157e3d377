package fragql

import (
	"strconv"

	"github.com/zoobzio/fragql/internal/types"
)

// Helper functions for common SQL function calls. Each returns a fragment
// rendered as "NAME(arg1, arg2)" that can be used as a field, operand or rule.

const (
	groupArgs     = "args"
	groupDistinct = "DISTINCT"
)

// Func renders as "name(arg1, arg2, ...)".
func Func[T Operand](name string, args ...T) *Fragment {
	return call(name, fragments(args))
}

func call(name string, args []*Fragment) *Fragment {
	return types.Framed(name, "", "(", ")").
		AddChildren(groupArgs, args...).
		SetGroupFormat(groupArgs, types.Separator(", "), types.SuppressName(true))
}

// Sum creates a SUM aggregate expression.
func Sum[T Operand](expr T) *Fragment {
	return Func("SUM", expr)
}

// Avg creates an AVG aggregate expression.
func Avg[T Operand](expr T) *Fragment {
	return Func("AVG", expr)
}

// Min creates a MIN aggregate expression.
func Min[T Operand](expr T) *Fragment {
	return Func("MIN", expr)
}

// Max creates a MAX aggregate expression.
func Max[T Operand](expr T) *Fragment {
	return Func("MAX", expr)
}

// Count creates COUNT(*), or COUNT(expr) when an expression is given.
func Count(expr ...string) *Fragment {
	if len(expr) == 0 {
		return Func("COUNT", "*")
	}
	return Func("COUNT", expr[0])
}

// CountDistinct creates a COUNT(DISTINCT expr) aggregate expression.
func CountDistinct[T Operand](expr T) *Fragment {
	distinct := types.NewFragment("").
		AddChildren(groupDistinct, types.ValueOf(expr).Fragment()).
		SetGroupFormat(groupDistinct, types.NameSeparator(" "))
	return call("COUNT", []*Fragment{distinct})
}

// Coalesce creates a COALESCE expression that returns the first non-null value.
func Coalesce[T Operand](values ...T) *Fragment {
	return Func("COALESCE", values...)
}

// NullIf creates a NULLIF expression that returns NULL if two values are equal.
func NullIf[A, B Operand](a A, b B) *Fragment {
	return call("NULLIF", []*Fragment{types.ValueOf(a).Fragment(), types.ValueOf(b).Fragment()})
}

// Round creates a ROUND math expression.
func Round[T Operand](expr T, precision ...int) *Fragment {
	args := []*Fragment{types.ValueOf(expr).Fragment()}
	if len(precision) > 0 {
		args = append(args, types.NewFragment(strconv.Itoa(precision[0])))
	}
	return call("ROUND", args)
}

// Floor creates a FLOOR math expression.
func Floor[T Operand](expr T) *Fragment {
	return Func("FLOOR", expr)
}

// Ceil creates a CEIL math expression.
func Ceil[T Operand](expr T) *Fragment {
	return Func("CEIL", expr)
}

// Abs creates an ABS math expression.
func Abs[T Operand](expr T) *Fragment {
	return Func("ABS", expr)
}

// Power creates a POWER math expression.
func Power[T, E Operand](expr T, exponent E) *Fragment {
	return call("POWER", []*Fragment{types.ValueOf(expr).Fragment(), types.ValueOf(exponent).Fragment()})
}

// Sqrt creates a SQRT math expression.
func Sqrt[T Operand](expr T) *Fragment {
	return Func("SQRT", expr)
}

// Exists renders as "EXISTS query". Pass a Subquery so the query is parenthesized.
func Exists(query *Fragment) *Fragment {
	return prefixed("EXISTS", query)
}

// NotExists renders as "NOT EXISTS query".
func NotExists(query *Fragment) *Fragment {
	return prefixed("NOT EXISTS", query)
}

func prefixed(keyword string, f *Fragment) *Fragment {
	return types.NewFragment("").
		AddChildren(keyword, f).
		SetGroupFormat(keyword, types.NameSeparator(" "))
}

const (
	groupWhen = "when"
	groupCond = "cond"
	groupThen = "THEN"
	groupElse = "ELSE"
)

// CaseBuilder provides fluent API for building CASE expressions.
type CaseBuilder struct {
	expr *Fragment
}

// Case creates a new CASE expression builder.
func Case() *CaseBuilder {
	return &CaseBuilder{
		expr: types.NewFragment("CASE").
			WithPostfix(" END").
			SetGroupFormat(groupWhen,
				types.Separator(" "),
				types.GroupPrefix(" "),
				types.SuppressName(true),
			).
			SetGroupFormat(groupElse, types.GroupPrefix(" "), types.NameSeparator(" ")),
	}
}

// When adds a WHEN...THEN clause.
func (cb *CaseBuilder) When(condition *Fragment, result Value) *CaseBuilder {
	when := types.NewFragment("WHEN").
		WithInnerPrefix(" ").
		AddChildren(groupCond, condition).
		SetGroupFormat(groupCond, types.SuppressName(true)).
		AddChildren(groupThen, result.Fragment()).
		SetGroupFormat(groupThen, types.GroupPrefix(" "), types.NameSeparator(" "))
	cb.expr.AddChildren(groupWhen, when)
	return cb
}

// Else sets the ELSE clause, replacing any earlier one.
func (cb *CaseBuilder) Else(result Value) *CaseBuilder {
	cb.expr.Reorder(groupWhen)
	cb.expr.AddChildren(groupElse, result.Fragment())
	return cb
}

// Build returns the CASE expression.
func (cb *CaseBuilder) Build() *Fragment {
	return cb.expr.Reorder(groupWhen, groupElse)
}
