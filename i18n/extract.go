package i18n

import (
	"iter"
	"slices"
)

// Node is one node of a parsed template document. Any front end can
// participate in extraction by implementing it; leaf nodes return an
// empty slice.
type Node interface {
	Children() []Node
}

// Marker is a document node that marks a translatable string. Plural
// reports false when the marker carries no plural section.
type Marker interface {
	Node
	Line() int
	Singular() string
	Plural() (string, bool)
}

// Translation is one translatable string found in a document, with the
// 1-based source line of its marker. Plural is empty when the marker had
// no plural form.
type Translation struct {
	Line     int
	Singular string
	Plural   string
}

// Extract walks the document depth-first and yields a Translation for
// every Marker it encounters, including markers nested inside other
// markers. The walk is lazy; breaking out of the loop stops it.
//
// The sequence is single-use per call but Extract can be called again
// to restart from the root.
func Extract(root Node) iter.Seq[Translation] {
	return func(yield func(Translation) bool) {
		if root == nil {
			return
		}
		stack := []Node{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if m, ok := n.(Marker); ok {
				t := Translation{Line: m.Line(), Singular: m.Singular()}
				if plural, ok := m.Plural(); ok {
					t.Plural = plural
				}
				if !yield(t) {
					return
				}
			}
			for _, c := range n.Children() {
				if c != nil {
					stack = append(stack, c)
				}
			}
		}
	}
}

// Collect extracts every translation in the document into a slice. It
// returns nil when the document has no markers.
func Collect(root Node) []Translation {
	return slices.Collect(Extract(root))
}
