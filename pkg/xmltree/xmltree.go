// Package xmltree renders an in-memory element tree as an XML document.
//
// The package is deliberately not a general XML library. The feed writer
// only ever emits one root element, one channel element, and flat item
// elements with flat sub-fields, so there is no support for namespaces,
// entity decoding, or mixed content. What it does guarantee is byte-exact
// output: a fixed declaration line, a two-space indent per nesting level,
// and deterministic attribute order, so the emitted document is stable
// across runs and safe to diff.
//
// Attribute values are written verbatim. Callers supply identifier-like
// values only; escaping is their responsibility.
package xmltree

import (
	"strings"

	"github.com/tylerneylon/rss/pkg/errors"
)

// Header is the declaration line emitted before the root element.
const Header = "<?xml version='1.0' encoding='utf-8'?>\n"

// indentStep is the indentation added per nesting level.
const indentStep = "  "

// Attr is a single name/value attribute pair. Attributes render in slice
// order, which keeps output deterministic without a sorted map.
type Attr struct {
	Name  string
	Value string
}

// Node is one element in the tree. A node carries either Text or Children,
// never both: a node with children renders each child nested and indented,
// a node with only text renders the text inline on one line, and a node
// with neither renders as an empty tag pair.
//
// The caller builds and owns the tree; Render only reads it.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// Element creates a node with the given tag and child nodes.
func Element(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// Text creates a leaf node with the given tag and text payload.
func Text(tag, text string) *Node {
	return &Node{Tag: tag, Text: text}
}

// WithAttr appends an attribute and returns the node for chaining.
func (n *Node) WithAttr(name, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// Append adds child nodes and returns the node for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Render produces the complete document: the declaration header followed
// by the recursive rendering of root. Rendering is a pure function of the
// tree; equal trees yield byte-identical output.
//
// Render returns a STRUCTURAL_TREE error if any node has an empty tag or
// declares both a text payload and children. Nothing is silently dropped.
func Render(root *Node) (string, error) {
	var b strings.Builder
	b.WriteString(Header)
	if err := renderNode(&b, root, ""); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderNode writes a single node at the given indentation prefix.
// Each nesting level adds indentStep to the prefix.
func renderNode(b *strings.Builder, n *Node, prefix string) error {
	if n == nil {
		return errors.New(errors.ErrCodeStructuralTree, "nil node in tree")
	}
	if n.Tag == "" {
		return errors.New(errors.ErrCodeStructuralTree, "node has empty tag")
	}
	if n.Text != "" && len(n.Children) > 0 {
		return errors.New(errors.ErrCodeStructuralTree,
			"node %q has both a text payload and child nodes", n.Tag)
	}

	b.WriteString(prefix)
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if len(n.Children) > 0 {
		b.WriteByte('\n')
		for _, child := range n.Children {
			if err := renderNode(b, child, prefix+indentStep); err != nil {
				return err
			}
		}
		b.WriteString(prefix)
	} else if n.Text != "" {
		b.WriteString(n.Text)
	}

	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">\n")
	return nil
}
