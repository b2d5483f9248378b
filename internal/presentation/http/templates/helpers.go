package templates

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(value string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: value}
}

func withChildren(parent *html.Node, children ...*html.Node) *html.Node {
	for _, child := range children {
		parent.AppendChild(child)
	}
	return parent
}

// renderDocument wraps head and body nodes in a full HTML document and writes it.
func renderDocument(w io.Writer, head, body []*html.Node) error {
	headNode := withChildren(element(atom.Head), append([]*html.Node{
		element(atom.Meta, attr("charset", "utf-8")),
		element(atom.Meta, attr("name", "viewport"), attr("content", "width=device-width, initial-scale=1")),
	}, head...)...)

	doc := withChildren(&html.Node{Type: html.DocumentNode},
		&html.Node{Type: html.DoctypeNode, Data: "html"},
		withChildren(element(atom.Html, attr("lang", "en")),
			headNode,
			withChildren(element(atom.Body), body...),
		),
	)

	if err := html.Render(w, doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
