package seo

import (
	"strings"

	"github.com/rotisserie/eris"
)

// ContentType discriminates article pages from every other page on the site.
type ContentType string

const (
	ContentTypeArticle ContentType = "Article"
	ContentTypeWebsite ContentType = "Website"
)

var (
	// ErrLocationRequired indicates a page input without a location path.
	ErrLocationRequired = eris.New("location is required")
	// ErrInvalidContentType indicates a type discriminator other than Article or Website.
	ErrInvalidContentType = eris.New("invalid content type")
)

// ParseContentType maps a raw discriminator onto a ContentType, ignoring case.
func ParseContentType(raw string) (ContentType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "article":
		return ContentTypeArticle, nil
	case "website":
		return ContentTypeWebsite, nil
	default:
		return "", eris.Wrapf(ErrInvalidContentType, "unsupported type %q", raw)
	}
}

// IsArticle reports whether the page is rendered as a news article.
func (t ContentType) IsArticle() bool {
	return t == ContentTypeArticle
}

// Config is the site-wide SEO configuration. It is loaded once at startup and
// treated as read-only afterwards.
type Config struct {
	Domain             string         `koanf:"domain"             json:"domain"             validate:"required,url"`
	SiteName           string         `koanf:"siteName"           json:"siteName"           validate:"required"`
	LegalName          string         `koanf:"legalName"          json:"legalName"          validate:"required"`
	Logo               string         `koanf:"logo"               json:"logo"               validate:"required,url"`
	DefaultTitle       string         `koanf:"defaultTitle"       json:"defaultTitle"       validate:"required"`
	DefaultAuthor      string         `koanf:"defaultAuthor"      json:"defaultAuthor"      validate:"required"`
	DefaultDescription string         `koanf:"defaultDescription" json:"defaultDescription" validate:"required"`
	TitlePrefix        string         `koanf:"titlePrefix"        json:"titlePrefix"`
	Locale             string         `koanf:"locale"             json:"locale"             validate:"required"`
	SocialLinks        SocialLinks    `koanf:"socialLinks"        json:"socialLinks"`
	Address            Address        `koanf:"address"            json:"address"`
	Contact            Contact        `koanf:"contact"            json:"contact"`
	Geo                *Geo           `koanf:"geo"                json:"geo,omitempty"      validate:"omitempty"`
	OpeningHours       []OpeningHours `koanf:"openingHours"       json:"openingHours"       validate:"dive"`
}

// SocialLinks holds the social account identifiers used by the share tags.
type SocialLinks struct {
	FacebookAppID                string `koanf:"facebookAppId"                json:"facebookAppId"                validate:"required"`
	Twitter                      string `koanf:"twitter"                      json:"twitter"                      validate:"required"`
	DefaultAuthorTwitterUserName string `koanf:"defaultAuthorTwitterUserName" json:"defaultAuthorTwitterUserName" validate:"required"`
}

// Address is the postal address of the business.
type Address struct {
	StreetAddress   string `koanf:"streetAddress"   json:"streetAddress"   validate:"required"`
	AddressLocality string `koanf:"addressLocality" json:"addressLocality" validate:"required"`
	AddressRegion   string `koanf:"addressRegion"   json:"addressRegion"   validate:"required"`
	PostalCode      string `koanf:"postalCode"      json:"postalCode"      validate:"required"`
	AddressCountry  string `koanf:"addressCountry"  json:"addressCountry"  validate:"required"`
}

// Contact holds business contact details.
type Contact struct {
	Phone string `koanf:"phone" json:"phone" validate:"required"`
}

// Geo locates the business on a map.
type Geo struct {
	Latitude  float64 `koanf:"latitude"  json:"latitude"  validate:"min=-90,max=90"`
	Longitude float64 `koanf:"longitude" json:"longitude" validate:"min=-180,max=180"`
}

// OpeningHours describes one weekly opening window.
type OpeningHours struct {
	DayOfWeek []string `koanf:"dayOfWeek" json:"dayOfWeek" validate:"required,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Opens     string   `koanf:"opens"     json:"opens"     validate:"required"`
	Closes    string   `koanf:"closes"    json:"closes"    validate:"required"`
}

// PageInput carries the per-page values a caller supplies. Only Location and
// Type are required; every other field falls back to the site configuration.
type PageInput struct {
	Location              string
	Type                  ContentType
	Title                 string
	Description           string
	Author                string
	DatePublished         string
	DateModified          string
	AuthorTwitterUserName string
	Covers                []string
	ReadTime              float64
}

// Resolved holds the final values of a single head build.
type Resolved struct {
	Title          string
	Author         string
	Description    string
	TwitterCreator string
	URL            string
	Images         []string
}

// PrimaryImage returns the image used for the share previews.
func (r Resolved) PrimaryImage() string {
	if len(r.Images) == 0 {
		return ""
	}
	return r.Images[0]
}

// TagKind names the element a head tag renders to.
type TagKind string

const (
	TagKindTitle TagKind = "title"
	TagKindMeta  TagKind = "meta"
)

// Tag describes one head element. Meta tags are keyed either by the `name`
// or the `property` attribute, recorded in Attr.
type Tag struct {
	Kind    TagKind `json:"kind"`
	Attr    string  `json:"attr,omitempty"`
	Key     string  `json:"key,omitempty"`
	Content string  `json:"content"`
}

// Script is the structured-data payload embedded alongside the tags.
type Script struct {
	Type string `json:"type"`
	Body string `json:"body"`
}

// Head is the ordered set of head elements produced for a page.
type Head struct {
	Type           ContentType `json:"type"`
	Tags           []Tag       `json:"tags"`
	StructuredData Script      `json:"structuredData"`
}

// Title returns the content of the title element.
func (h Head) Title() string {
	for _, tag := range h.Tags {
		if tag.Kind == TagKindTitle {
			return tag.Content
		}
	}
	return ""
}

// Lookup finds the first meta tag with the given name or property.
func (h Head) Lookup(key string) (Tag, bool) {
	for _, tag := range h.Tags {
		if tag.Kind == TagKindMeta && tag.Key == key {
			return tag, true
		}
	}
	return Tag{}, false
}
