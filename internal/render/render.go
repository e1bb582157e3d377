// Package render holds the string assembly shared by fragment rendering.
// Everything here is pure: it only writes to the builder it is given.
package render

import "strings"

// Frame is the literal text surrounding a node's rendered groups.
type Frame struct {
	Prefix      string
	Name        string
	InnerPrefix string
	Postfix     string
}

// Write emits prefix, name and inner prefix, then the body, then the postfix.
func (f Frame) Write(w *strings.Builder, body func(w *strings.Builder)) {
	w.WriteString(f.Prefix)
	w.WriteString(f.Name)
	w.WriteString(f.InnerPrefix)
	if body != nil {
		body(w)
	}
	w.WriteString(f.Postfix)
}

// Group is the resolved output policy of one named child group.
// Label is the text emitted in place of the group name; it is empty when the
// name is suppressed.
type Group struct {
	Label         string
	Separator     string
	Prefix        string
	NameSeparator string
	Postfix       string
}

// Write emits the group around n children, calling child for each index in order.
// A group without children writes nothing at all, policy text included.
func (g Group) Write(w *strings.Builder, n int, child func(w *strings.Builder, i int)) {
	if n <= 0 {
		return
	}
	w.WriteString(g.Prefix)
	w.WriteString(g.Label)
	w.WriteString(g.NameSeparator)
	for i := 0; i < n; i++ {
		if i > 0 {
			w.WriteString(g.Separator)
		}
		child(w, i)
	}
	w.WriteString(g.Postfix)
}

// Join renders parts as a single group and returns the result.
func (g Group) Join(parts []string) string {
	var sb strings.Builder
	g.Write(&sb, len(parts), func(w *strings.Builder, i int) {
		w.WriteString(parts[i])
	})
	return sb.String()
}
