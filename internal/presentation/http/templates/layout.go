package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const stylesheetPath = "/static/site.css"

// Page renders a full document whose head carries the supplied SEO tags.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		head := append(headNodes(data.Head), stylesheet())

		article := withChildren(element(atom.Article), withChildren(element(atom.H1), text(data.Heading)))
		if data.Byline != "" {
			article.AppendChild(withChildren(element(atom.P, attr("class", "byline")), text(data.Byline)))
		}
		article.AppendChild(withChildren(element(atom.P, attr("class", "lede")), text(data.Description)))

		footer := data.FooterNote
		if footer == "" {
			footer = DefaultFooterNote
		}

		return renderDocument(w, head, []*html.Node{
			siteHeader(data.SiteName),
			withChildren(element(atom.Main), article),
			siteFooter(footer),
		})
	})
}

// ErrorPage renders a minimal document for failed requests. Error pages are never indexed.
func ErrorPage(data ErrorPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		head := []*html.Node{
			element(atom.Meta, attr("name", "robots"), attr("content", "noindex")),
			withChildren(element(atom.Title), text(data.Title)),
			stylesheet(),
		}

		return renderDocument(w, head, []*html.Node{
			siteHeader(data.SiteName),
			withChildren(element(atom.Main, attr("class", "error")),
				withChildren(element(atom.H1), text(data.StatusLabel)),
				withChildren(element(atom.P), text(data.Message)),
			),
			siteFooter(DefaultFooterNote),
		})
	})
}

func stylesheet() *html.Node {
	return element(atom.Link, attr("rel", "stylesheet"), attr("href", stylesheetPath))
}

func siteHeader(siteName string) *html.Node {
	return withChildren(element(atom.Header, attr("class", "site-header")),
		withChildren(element(atom.A, attr("href", "/")), text(siteName)),
	)
}

func siteFooter(note string) *html.Node {
	return withChildren(element(atom.Footer), withChildren(element(atom.P), text(note)))
}
