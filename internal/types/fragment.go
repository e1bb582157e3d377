package types

import (
	"strings"

	"github.com/elliotchance/orderedmap/v3"
	"github.com/zoobzio/fragql/internal/render"
)

// Fragment is a node of the rendering tree.
// It carries literal framing text and an ordered set of named child groups,
// each with its own GroupFormat.
//
// Output is always Prefix + Name + InnerPrefix + groups + Postfix, where the
// groups are rendered in their current order.
type Fragment struct {
	Name        string
	Prefix      string
	InnerPrefix string
	Postfix     string

	groups  *orderedmap.OrderedMap[string, []*Fragment]
	formats map[string]GroupFormat
}

// NewFragment creates a node with the given name and no child groups.
func NewFragment(name string) *Fragment {
	return &Fragment{Name: name}
}

// Framed creates a node with all four framing fields set.
func Framed(name, prefix, innerPrefix, postfix string) *Fragment {
	return &Fragment{
		Name:        name,
		Prefix:      prefix,
		InnerPrefix: innerPrefix,
		Postfix:     postfix,
	}
}

// WithPrefix sets the text emitted before the name.
func (f *Fragment) WithPrefix(prefix string) *Fragment {
	f.Prefix = prefix
	return f
}

// WithInnerPrefix sets the text emitted between the name and the groups.
func (f *Fragment) WithInnerPrefix(innerPrefix string) *Fragment {
	f.InnerPrefix = innerPrefix
	return f
}

// WithPostfix sets the text emitted after the groups.
func (f *Fragment) WithPostfix(postfix string) *Fragment {
	f.Postfix = postfix
	return f
}

// AddChildren appends children to the named group.
// The group is created at the end of the current order on first use, even when
// no children are given. Nil children are skipped.
func (f *Fragment) AddChildren(group string, children ...*Fragment) *Fragment {
	if f.groups == nil {
		f.groups = orderedmap.NewOrderedMap[string, []*Fragment]()
	}
	existing, _ := f.groups.Get(group)
	for _, child := range children {
		if child != nil {
			existing = append(existing, child)
		}
	}
	f.groups.Set(group, existing)
	return f
}

// SetGroupFormat updates the named group's policy with the given options.
// Fields not touched by an option keep their previous value. The group does not
// need to exist yet.
func (f *Fragment) SetGroupFormat(group string, opts ...FormatOption) *Fragment {
	if f.formats == nil {
		f.formats = make(map[string]GroupFormat)
	}
	format := f.formats[group]
	for _, opt := range opts {
		opt(&format)
	}
	f.formats[group] = format
	return f
}

// Reorder replaces the group order with names, keeping only groups that exist
// and have children.
//
// Groups missing from names are dropped from the node for good, so callers
// must list every group they want to keep.
func (f *Fragment) Reorder(names ...string) *Fragment {
	next := orderedmap.NewOrderedMap[string, []*Fragment]()
	for _, name := range names {
		if children := f.Children(name); len(children) > 0 {
			next.Set(name, children)
		}
	}
	f.groups = next
	return f
}

// Groups returns the group names in their current order.
func (f *Fragment) Groups() []string {
	if f == nil || f.groups == nil {
		return nil
	}
	names := make([]string, 0, f.groups.Len())
	for el := f.groups.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// Children returns the children of the named group.
func (f *Fragment) Children(group string) []*Fragment {
	if f == nil || f.groups == nil {
		return nil
	}
	children, _ := f.groups.Get(group)
	return children
}

// Format returns the policy of the named group.
func (f *Fragment) Format(group string) GroupFormat {
	if f == nil {
		return GroupFormat{}
	}
	return f.formats[group]
}

// Render returns the node and all of its descendants as a string.
// It never changes the tree, so repeated calls return the same text.
func (f *Fragment) Render() string {
	if f == nil {
		return ""
	}
	var sb strings.Builder
	f.writeTo(&sb)
	return sb.String()
}

// String implements fmt.Stringer.
func (f *Fragment) String() string {
	return f.Render()
}

func (f *Fragment) writeTo(w *strings.Builder) {
	frame := render.Frame{
		Prefix:      f.Prefix,
		Name:        f.Name,
		InnerPrefix: f.InnerPrefix,
		Postfix:     f.Postfix,
	}
	frame.Write(w, f.writeGroups)
}

func (f *Fragment) writeGroups(w *strings.Builder) {
	if f.groups == nil {
		return
	}
	for el := f.groups.Front(); el != nil; el = el.Next() {
		children := el.Value
		f.policy(el.Key).Write(w, len(children), func(w *strings.Builder, i int) {
			children[i].writeTo(w)
		})
	}
}

func (f *Fragment) policy(group string) render.Group {
	format := f.formats[group]
	label := group
	if format.SuppressName {
		label = ""
	}
	return render.Group{
		Label:         label,
		Separator:     format.Separator,
		Prefix:        format.Prefix,
		NameSeparator: format.NameSeparator,
		Postfix:       format.Postfix,
	}
}
