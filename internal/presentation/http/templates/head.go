package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"pellerex/site/internal/domain/seo"
)

// Head renders the page head tags in order, followed by the structured-data script.
func Head(head seo.Head) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for _, node := range headNodes(head) {
			if err := html.Render(w, node); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

func headNodes(head seo.Head) []*html.Node {
	nodes := make([]*html.Node, 0, len(head.Tags)+1)

	for _, tag := range head.Tags {
		switch tag.Kind {
		case seo.TagKindTitle:
			nodes = append(nodes, withChildren(element(atom.Title), text(tag.Content)))
		case seo.TagKindMeta:
			nodes = append(nodes, element(atom.Meta, attr(tag.Attr, tag.Key), attr("content", tag.Content)))
		}
	}

	if head.StructuredData.Body != "" {
		script := element(atom.Script, attr("type", head.StructuredData.Type))
		// Script children are written verbatim; the JSON encoder already escapes '<' and '>'.
		nodes = append(nodes, withChildren(script, text(head.StructuredData.Body)))
	}

	return nodes
}
