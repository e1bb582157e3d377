// Package fragql assembles SQL text from a tree of named, formattable fragments.
//
// The core is the Fragment: a node with literal framing text (prefix, name,
// inner prefix, postfix) and an ordered set of named child groups. Each group
// carries its own formatting policy (separator, prefix, name separator,
// postfix, name suppression). Rendering walks the tree depth-first and never
// changes it.
//
// # Basic Usage
//
// The Builder maps SQL clauses onto a root fragment:
//
//	sql := fragql.Select(fragql.F("id"), fragql.F("name")).
//		From(fragql.T("users")).
//		Where(fragql.C("id", 5)).
//		Render()
//	// SELECT id, name FROM users WHERE id = 5
//
// Clause methods may be called in any order; finalization always emits the
// clauses in canonical SQL order.
//
// # Rules
//
// Rule constructors build small fragments for comparison and logical
// operators that can be reused as WHERE, HAVING or JOIN conditions:
//
//	fragql.Between("age", 18, 30).Render()
//	// age BETWEEN 18 AND 30
//
// # Output Format
//
// Values are emitted verbatim. Nothing is escaped or bound as a parameter;
// callers are responsible for safe value encoding.
package fragql

import "github.com/zoobzio/fragql/internal/types"

// Fragment is a node of the rendering tree.
type Fragment = types.Fragment

// GroupFormat is the formatting policy of a named child group.
type GroupFormat = types.GroupFormat

// FormatOption changes one field of a GroupFormat.
type FormatOption = types.FormatOption

// Value is either literal SQL text or a prebuilt Fragment.
type Value = types.Value

// Operand is the set of Go types accepted wherever a Value is expected:
// string, int, int64, float64, *Fragment and Value.
type Operand = types.Operand

// NewFragment creates a node with the given name and no child groups.
func NewFragment(name string) *Fragment {
	return types.NewFragment(name)
}

// Framed creates a node with name, prefix, inner prefix and postfix set.
func Framed(name, prefix, innerPrefix, postfix string) *Fragment {
	return types.Framed(name, prefix, innerPrefix, postfix)
}

// Lit wraps literal SQL text.
func Lit(text string) Value {
	return types.Lit(text)
}

// Node wraps a prebuilt fragment.
func Node(f *Fragment) Value {
	return types.Node(f)
}

// V resolves any operand into a Value.
func V[T Operand](v T) Value {
	return types.ValueOf(v)
}

// Separator sets the text joining sibling children of a group.
func Separator(s string) FormatOption { return types.Separator(s) }

// GroupPrefix sets the text emitted before a group.
func GroupPrefix(s string) FormatOption { return types.GroupPrefix(s) }

// NameSeparator sets the text emitted between a group name and its children.
func NameSeparator(s string) FormatOption { return types.NameSeparator(s) }

// GroupPostfix sets the text emitted after a group.
func GroupPostfix(s string) FormatOption { return types.GroupPostfix(s) }

// SuppressName controls whether a group name is left out of the output.
func SuppressName(suppress bool) FormatOption { return types.SuppressName(suppress) }
