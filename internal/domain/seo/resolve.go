package seo

import "strings"

// Resolve applies the override-or-default rule to every optional field of the
// page input. It never fails: missing values resolve to the configured default.
func Resolve(cfg Config, in PageInput) Resolved {
	title := cfg.DefaultTitle
	if hasValue(in.Title) {
		title = cfg.TitlePrefix + in.Title
	}

	images := []string{cfg.Logo}
	if len(in.Covers) > 0 {
		images = append([]string(nil), in.Covers...)
	}

	return Resolved{
		Title:          title,
		Author:         orDefault(in.Author, cfg.DefaultAuthor),
		Description:    orDefault(in.Description, cfg.DefaultDescription),
		TwitterCreator: orDefault(in.AuthorTwitterUserName, cfg.SocialLinks.DefaultAuthorTwitterUserName),
		URL:            PageURL(cfg.Domain, in.Location),
		Images:         images,
	}
}

// PageURL joins the site domain and a location path with exactly one slash.
func PageURL(domain, location string) string {
	return strings.TrimRight(domain, "/") + "/" + strings.TrimLeft(location, "/")
}

func orDefault(value, fallback string) string {
	if hasValue(value) {
		return value
	}
	return fallback
}

// hasValue treats only the empty string as absent; whitespace is kept as supplied.
func hasValue(value string) bool {
	return value != ""
}
