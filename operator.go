package fragql

// Operator is the SQL text of a comparison or logical operator.
type Operator string

const (
	// Binary comparison operators.
	EQ Operator = "="
	NE Operator = "<>"
	LT Operator = "<"
	LE Operator = "<="
	GT Operator = ">"
	GE Operator = ">="

	// Operators rendered as named groups.
	IN      Operator = "IN"
	LIKE    Operator = "LIKE"
	BETWEEN Operator = "BETWEEN"
	NOT     Operator = "NOT"
	IS      Operator = "IS"

	// Logical connectives.
	AND Operator = "AND"
	OR  Operator = "OR"
)
