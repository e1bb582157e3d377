package fragql

import "github.com/zoobzio/fragql/internal/types"

// Table is a FROM or JOIN source with an optional alias.
// The source is either a table name or a prebuilt fragment such as a subquery.
type Table struct {
	Source Value
	Alias  string
}

// T creates a table reference. Only the first alias is used.
func T[S Operand](source S, alias ...string) Table {
	t := Table{Source: types.ValueOf(source)}
	if len(alias) > 0 {
		t.Alias = alias[0]
	}
	return t
}

// fragment renders as "source" or "source alias".
// A fragment source is wrapped rather than modified.
func (t Table) fragment() *Fragment {
	if t.Alias == "" {
		return t.Source.Fragment()
	}
	return types.NewFragment("").
		AddChildren(groupSource, t.Source.Fragment()).
		SetGroupFormat(groupSource, types.SuppressName(true)).
		AddChildren(groupTableAlias, types.NewFragment(t.Alias)).
		SetGroupFormat(groupTableAlias, types.GroupPrefix(" "), types.SuppressName(true))
}
