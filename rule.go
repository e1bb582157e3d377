package fragql

import "github.com/zoobzio/fragql/internal/types"

// Rule renders as "left op right".
func Rule[L, R Operand](left L, right R, op Operator) *Fragment {
	return types.NewFragment("").
		AddChildren(groupOperands, types.ValueOf(left).Fragment(), types.ValueOf(right).Fragment()).
		SetGroupFormat(groupOperands, types.Separator(" "+string(op)+" "), types.SuppressName(true))
}

// Equal renders as "left = right".
func Equal[L, R Operand](left L, right R) *Fragment {
	return Rule(left, right, EQ)
}

// NotEqual renders as "left <> right".
func NotEqual[L, R Operand](left L, right R) *Fragment {
	return Rule(left, right, NE)
}

// Less renders as "left < right".
func Less[L, R Operand](left L, right R) *Fragment {
	return Rule(left, right, LT)
}

// LessOrEqual renders as "left <= right".
func LessOrEqual[L, R Operand](left L, right R) *Fragment {
	return Rule(left, right, LE)
}

// More renders as "left > right".
func More[L, R Operand](left L, right R) *Fragment {
	return Rule(left, right, GT)
}

// MoreOrEqual renders as "left >= right".
func MoreOrEqual[L, R Operand](left L, right R) *Fragment {
	return Rule(left, right, GE)
}

// EqualRight renders as "= right", for use as the rule of a condition.
func EqualRight[R Operand](right R) *Fragment {
	return types.NewFragment("").
		AddChildren(string(EQ), types.ValueOf(right).Fragment()).
		SetGroupFormat(string(EQ), types.NameSeparator(" "))
}

// In renders as "left IN(v1, v2)".
//
// In, Like, Between, IsNull and IsNotNull attach their group to the left
// operand. When left is a *Fragment that fragment is modified and returned.
func In[L, R Operand](left L, values ...R) *Fragment {
	return types.ValueOf(left).Fragment().
		AddChildren(string(IN), fragments(values)...).
		SetGroupFormat(string(IN),
			types.Separator(", "),
			types.GroupPrefix(" "),
			types.NameSeparator("("),
			types.GroupPostfix(")"),
		)
}

// InRight renders as "IN(v1, v2)", for use as the rule of a condition.
func InRight[R Operand](values ...R) *Fragment {
	return types.NewFragment("").
		AddChildren(string(IN), fragments(values)...).
		SetGroupFormat(string(IN),
			types.Separator(", "),
			types.NameSeparator("("),
			types.GroupPostfix(")"),
		)
}

// Like renders as "left LIKE pattern".
func Like[L, R Operand](left L, pattern R) *Fragment {
	return types.ValueOf(left).Fragment().
		AddChildren(string(LIKE), types.ValueOf(pattern).Fragment()).
		SetGroupFormat(string(LIKE), types.GroupPrefix(" "), types.NameSeparator(" "))
}

// Between renders as "left BETWEEN start AND end".
func Between[L, S, E Operand](left L, start S, end E) *Fragment {
	return types.ValueOf(left).Fragment().
		AddChildren(string(BETWEEN), types.ValueOf(start).Fragment(), types.ValueOf(end).Fragment()).
		SetGroupFormat(string(BETWEEN),
			types.Separator(" AND "),
			types.GroupPrefix(" "),
			types.NameSeparator(" "),
		)
}

// Not renders as "NOT expr".
func Not[T Operand](expr T) *Fragment {
	return types.NewFragment("").
		AddChildren(string(NOT), types.ValueOf(expr).Fragment()).
		SetGroupFormat(string(NOT), types.NameSeparator(" "))
}

// IsNull renders as "left IS NULL".
func IsNull[L Operand](left L) *Fragment {
	return is(types.ValueOf(left), "NULL")
}

// IsNotNull renders as "left IS NOT NULL".
func IsNotNull[L Operand](left L) *Fragment {
	return is(types.ValueOf(left), "NOT NULL")
}

// And renders the rules as "(r1 AND r2)".
func And(rules ...*Fragment) *Fragment {
	return connective(AND, rules)
}

// Or renders the rules as "(r1 OR r2)".
func Or(rules ...*Fragment) *Fragment {
	return connective(OR, rules)
}

func is(left Value, what string) *Fragment {
	return left.Fragment().
		AddChildren(string(IS), types.NewFragment(what)).
		SetGroupFormat(string(IS), types.GroupPrefix(" "), types.NameSeparator(" "))
}

func connective(op Operator, rules []*Fragment) *Fragment {
	return types.Framed("", "(", "", ")").
		AddChildren(string(op), rules...).
		SetGroupFormat(string(op), types.Separator(" "+string(op)+" "), types.SuppressName(true))
}

func fragments[T Operand](values []T) []*Fragment {
	out := make([]*Fragment, len(values))
	for i, v := range values {
		out[i] = types.ValueOf(v).Fragment()
	}
	return out
}
