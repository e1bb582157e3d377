package fragql

import (
	"strings"

	"github.com/zoobzio/fragql/internal/types"
)

// Cond is one entry of a WHERE, HAVING, OR-WHERE or OR-HAVING clause.
//
// A literal rule renders as "field rule". A literal that does not start with an
// operator is taken as the right-hand side of an equality, so C("id", 5)
// renders "id = 5" while C("age", "> 18") renders "age > 18". A fragment rule
// is inserted verbatim and the field is ignored.
type Cond struct {
	Field string
	Rule  Value
}

// C creates a condition on a field.
func C[T Operand](field string, rule T) Cond {
	return Cond{Field: field, Rule: types.ValueOf(rule)}
}

// Raw creates a condition emitted exactly as given.
func Raw[T Operand](rule T) Cond {
	return Cond{Rule: types.ValueOf(rule)}
}

func (c Cond) fragment() *Fragment {
	if c.Field == "" || c.Rule.IsNode() {
		return c.Rule.Fragment()
	}
	rule := literalRule(c.Rule.Text())
	if rule == nil {
		return types.NewFragment(c.Field)
	}
	return types.NewFragment(c.Field).
		AddChildren(groupRule, rule).
		SetGroupFormat(groupRule, types.GroupPrefix(" "), types.SuppressName(true))
}

// JoinCond is one entry of a JOIN's condition list.
//
// Directive optionally switches the group this entry and all following
// entries are routed to: "OR" (any case) selects the OR group, any other
// non-empty directive selects the ON group, and an empty directive keeps the
// current one.
type JoinCond struct {
	Directive string
	Field     string
	Rule      Value
}

// On creates a join condition on a field.
func On[T Operand](field string, rule T) JoinCond {
	return JoinCond{Field: field, Rule: types.ValueOf(rule)}
}

// OrOn creates a join condition that switches routing to the OR group.
func OrOn[T Operand](field string, rule T) JoinCond {
	return JoinCond{Directive: string(OR), Field: field, Rule: types.ValueOf(rule)}
}

// AndOn creates a join condition that switches routing back to the ON group.
func AndOn[T Operand](field string, rule T) JoinCond {
	return JoinCond{Directive: string(AND), Field: field, Rule: types.ValueOf(rule)}
}

// OnRaw creates a join condition emitted exactly as given.
func OnRaw[T Operand](rule T) JoinCond {
	return JoinCond{Rule: types.ValueOf(rule)}
}

// fragment renders as "field rule"; unlike Cond, a fragment rule keeps the field.
func (c JoinCond) fragment() *Fragment {
	if c.Field == "" {
		return c.Rule.Fragment()
	}
	rule := c.Rule.Fragment()
	if !c.Rule.IsNode() {
		rule = literalRule(c.Rule.Text())
		if rule == nil {
			return types.NewFragment(c.Field)
		}
	}
	return types.NewFragment(c.Field).
		WithInnerPrefix(" ").
		AddChildren(groupRule, rule).
		SetGroupFormat(groupRule, types.SuppressName(true))
}

// joinRoute is the state of the ON/OR routing machine used while a JOIN's
// conditions are processed.
type joinRoute int

const (
	routeOn joinRoute = iota
	routeOr
)

func (r joinRoute) next(directive string) joinRoute {
	switch {
	case directive == "":
		return r
	case strings.EqualFold(strings.TrimSpace(directive), string(OR)):
		return routeOr
	default:
		return routeOn
	}
}

func (r joinRoute) group() string {
	if r == routeOr {
		return groupJoinOr
	}
	return groupJoinOn
}

// literalRule turns literal rule text into a fragment. Text without a leading
// operator becomes "= text". Empty text yields nil.
func literalRule(text string) *Fragment {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if hasOperatorPrefix(text) {
		return types.NewFragment(text)
	}
	return EqualRight(text)
}

var operatorWords = map[string]bool{
	string(IN):      true,
	string(NOT):     true,
	string(LIKE):    true,
	string(BETWEEN): true,
	string(IS):      true,
	"ILIKE":         true,
}

func hasOperatorPrefix(text string) bool {
	text = strings.TrimLeft(text, " ")
	if text == "" {
		return false
	}
	switch text[0] {
	case '=', '<', '>', '!':
		return true
	}
	word := text
	if i := strings.IndexAny(text, " ("); i != -1 {
		word = text[:i]
	}
	return operatorWords[strings.ToUpper(word)]
}
