package seo

import (
	"encoding/json"

	"github.com/rotisserie/eris"
)

const schemaContext = "https://schema.org"

// NewsArticle is the schema.org document emitted for article pages.
type NewsArticle struct {
	Context          string       `json:"@context"`
	Type             string       `json:"@type"`
	MainEntityOfPage WebPage      `json:"mainEntityOfPage"`
	Headline         string       `json:"headline"`
	Image            []string     `json:"image"`
	DatePublished    string       `json:"datePublished,omitempty"`
	DateModified     string       `json:"dateModified,omitempty"`
	Author           Person       `json:"author"`
	Publisher        Organization `json:"publisher"`
}

// LocalBusiness is the schema.org document emitted for every non-article page.
type LocalBusiness struct {
	Context                   string                      `json:"@context"`
	Type                      string                      `json:"@type"`
	Image                     []string                    `json:"image"`
	ID                        string                      `json:"@id"`
	Name                      string                      `json:"name"`
	Address                   PostalAddress               `json:"address"`
	Geo                       *GeoCoordinates             `json:"geo,omitempty"`
	URL                       string                      `json:"url"`
	Telephone                 string                      `json:"telephone,omitempty"`
	OpeningHoursSpecification []OpeningHoursSpecification `json:"openingHoursSpecification,omitempty"`
}

type WebPage struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type Organization struct {
	Type string      `json:"@type"`
	Name string      `json:"name"`
	Logo ImageObject `json:"logo"`
}

type ImageObject struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
	AddressCountry  string `json:"addressCountry"`
}

type GeoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type OpeningHoursSpecification struct {
	Type      string   `json:"@type"`
	DayOfWeek []string `json:"dayOfWeek"`
	Opens     string   `json:"opens"`
	Closes    string   `json:"closes"`
}

// BuildStructuredData serializes the JSON-LD document matching the page type.
// Dates and URLs are passed through as supplied.
func BuildStructuredData(cfg Config, in PageInput, resolved Resolved) (string, error) {
	var document any
	if in.Type.IsArticle() {
		document = newNewsArticle(cfg, in, resolved)
	} else {
		document = newLocalBusiness(cfg, resolved)
	}

	payload, err := json.Marshal(document)
	if err != nil {
		return "", eris.Wrap(err, "encoding structured data")
	}
	return string(payload), nil
}

func newNewsArticle(cfg Config, in PageInput, resolved Resolved) NewsArticle {
	return NewsArticle{
		Context: schemaContext,
		Type:    "NewsArticle",
		MainEntityOfPage: WebPage{
			Type: "WebPage",
			ID:   resolved.URL,
		},
		Headline:      resolved.Title,
		Image:         resolved.Images,
		DatePublished: in.DatePublished,
		DateModified:  in.DateModified,
		Author: Person{
			Type: "Person",
			Name: resolved.Author,
		},
		Publisher: Organization{
			Type: "Organization",
			Name: cfg.LegalName,
			Logo: ImageObject{Type: "ImageObject", URL: cfg.Logo},
		},
	}
}

func newLocalBusiness(cfg Config, resolved Resolved) LocalBusiness {
	business := LocalBusiness{
		Context: schemaContext,
		Type:    "LocalBusiness",
		Image:   resolved.Images,
		ID:      cfg.Domain,
		Name:    cfg.LegalName,
		Address: PostalAddress{
			Type:            "PostalAddress",
			StreetAddress:   cfg.Address.StreetAddress,
			AddressLocality: cfg.Address.AddressLocality,
			AddressRegion:   cfg.Address.AddressRegion,
			PostalCode:      cfg.Address.PostalCode,
			AddressCountry:  cfg.Address.AddressCountry,
		},
		URL:       cfg.Domain,
		Telephone: cfg.Contact.Phone,
	}

	if cfg.Geo != nil {
		business.Geo = &GeoCoordinates{
			Type:      "GeoCoordinates",
			Latitude:  cfg.Geo.Latitude,
			Longitude: cfg.Geo.Longitude,
		}
	}

	for _, hours := range cfg.OpeningHours {
		business.OpeningHoursSpecification = append(business.OpeningHoursSpecification, OpeningHoursSpecification{
			Type:      "OpeningHoursSpecification",
			DayOfWeek: hours.DayOfWeek,
			Opens:     hours.Opens,
			Closes:    hours.Closes,
		})
	}

	return business
}
