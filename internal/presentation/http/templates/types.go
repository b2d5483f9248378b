package templates

import "pellerex/site/internal/domain/seo"

// DefaultFooterNote is shown in the shared layout when a page does not supply custom text.
const DefaultFooterNote = "Pellerex helps teams ship secure cloud products faster."

// PageData contains the dynamic values rendered on a content page.
type PageData struct {
	Head        seo.Head
	SiteName    string
	Heading     string
	Byline      string
	Description string
	FooterNote  string
}

// ErrorPageData holds information for rendering an error view.
type ErrorPageData struct {
	Title       string
	SiteName    string
	StatusLabel string
	Message     string
}
