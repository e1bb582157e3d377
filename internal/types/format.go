package types

// GroupFormat is the formatting policy of one named child group.
// Every field defaults to empty/false.
type GroupFormat struct {
	Separator     string // joins sibling children
	Prefix        string // before the group name
	NameSeparator string // between the group name and its children
	Postfix       string // after the last child
	SuppressName  bool   // omit the group name, keep the children
}

// FormatOption changes a single field of a GroupFormat.
type FormatOption func(*GroupFormat)

// Separator sets the text joining sibling children.
func Separator(s string) FormatOption {
	return func(f *GroupFormat) { f.Separator = s }
}

// GroupPrefix sets the text emitted before the group.
func GroupPrefix(s string) FormatOption {
	return func(f *GroupFormat) { f.Prefix = s }
}

// NameSeparator sets the text emitted between the group name and its children.
func NameSeparator(s string) FormatOption {
	return func(f *GroupFormat) { f.NameSeparator = s }
}

// GroupPostfix sets the text emitted after the group.
func GroupPostfix(s string) FormatOption {
	return func(f *GroupFormat) { f.Postfix = s }
}

// SuppressName controls whether the group name is left out of the output.
func SuppressName(suppress bool) FormatOption {
	return func(f *GroupFormat) { f.SuppressName = suppress }
}
