package motn

import (
	"encoding/xml"
	"io"
)

// Attr is one element attribute. Order is preserved on output.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the document tree.
type Node struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// Elem returns a new element with the given attribute name/value pairs.
// A trailing unpaired name is ignored.
func Elem(name string, attrs ...string) *Node {
	n := &Node{Name: name}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr(attrs[i], attrs[i+1])
	}
	return n
}

// Attr appends an attribute and returns n.
func (n *Node) Attr(name, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// Add appends children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// SetText sets the character data of a leaf element and returns n.
func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

// Attribute looks up an attribute value by name.
func (n *Node) Attribute(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first direct child with the given element name and,
// when attrName is not empty, the given name attribute.
func (n *Node) Child(element, nameAttr string) *Node {
	for _, c := range n.Children {
		if c.Name != element {
			continue
		}
		if nameAttr == "" {
			return c
		}
		if v, _ := c.Attribute("name"); v == nameAttr {
			return c
		}
	}
	return nil
}

// Encode writes n and its subtree with tab indentation.
func (n *Node) Encode(w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := n.encode(enc); err != nil {
		return err
	}
	return enc.Flush()
}

func (n *Node) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
