package fragql

// Group names used on the statement root. The canonical clause order is
// expressed in these names.
const (
	groupSelectFields = "selectFields"
	groupFrom         = "FROM"
	groupUpdate       = "UPDATE"
	groupInsert       = "INSERT"
	groupInto         = "INTO"
	groupTable        = "table"
	groupFields       = "fields"
	groupValues       = "VALUES"
	groupSet          = "SET"
	groupJoin         = "join"
	groupWhere        = "WHERE"
	groupOrWhere      = "OR"
	groupGroupBy      = "GROUP BY"
	groupHaving       = "HAVING"
	groupOrHaving     = "ORHAVING"
	groupOrderBy      = "ORDER BY"
	groupLimit        = "LIMIT"
	groupOffset       = "OFFSET"
)

// Group names used inside sub-fragments.
const (
	groupRule       = "rule"
	groupAlias      = "AS"
	groupSource     = "source"
	groupOrder      = "order"
	groupOperands   = "operands"
	groupItems      = "items"
	groupJoinOn     = "ON"
	groupJoinOr     = "OR"
	groupSubquery   = "sub_expression"
	groupTableAlias = "as"
)

var clauseOrder = []string{
	groupSelectFields,
	groupFrom,
	groupUpdate,
	groupInsert,
	groupInto,
	groupTable,
	groupFields,
	groupValues,
	groupSet,
	groupJoin,
	groupWhere,
	groupOrWhere,
	groupGroupBy,
	groupHaving,
	groupOrHaving,
	groupOrderBy,
	groupLimit,
	groupOffset,
}

// ClauseOrder returns the group names of a statement root in the order they are
// rendered. Root groups missing from this list are dropped on finalization.
func ClauseOrder() []string {
	out := make([]string, len(clauseOrder))
	copy(out, clauseOrder)
	return out
}

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// JoinType is the keyword that opens a JOIN clause.
type JoinType string

const (
	PlainJoin JoinType = "JOIN"
	InnerJoin JoinType = "INNER JOIN"
	LeftJoin  JoinType = "LEFT JOIN"
	RightJoin JoinType = "RIGHT JOIN"
)
