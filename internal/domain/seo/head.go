package seo

import "strconv"

const (
	// RobotsDirectives is sent on every page.
	RobotsDirectives   = "index, follow, max-image-preview:large, max-snippet:-1, max-video-preview:-1"
	TwitterCardType    = "summary_large_image"
	StructuredDataType = "application/ld+json"
)

type tagRule struct {
	when func(ContentType) bool
	tag  Tag
}

func always(ContentType) bool { return true }

func articleOnly(t ContentType) bool { return t.IsArticle() }

// BuildHead resolves the page input against cfg and returns the ordered head
// tags together with the structured-data script.
func BuildHead(cfg Config, in PageInput) (Head, error) {
	resolved := Resolve(cfg, in)

	structured, err := BuildStructuredData(cfg, in, resolved)
	if err != nil {
		return Head{}, err
	}

	rules := headRules(cfg, in, resolved)
	tags := make([]Tag, 0, len(rules))
	for _, rule := range rules {
		if rule.when(in.Type) {
			tags = append(tags, rule.tag)
		}
	}

	return Head{
		Type: in.Type,
		Tags: tags,
		StructuredData: Script{
			Type: StructuredDataType,
			Body: structured,
		},
	}, nil
}

func headRules(cfg Config, in PageInput, r Resolved) []tagRule {
	ogType := "website"
	if in.Type.IsArticle() {
		ogType = "article"
	}

	return []tagRule{
		{always, nameMeta("robots", RobotsDirectives)},
		{always, Tag{Kind: TagKindTitle, Content: r.Title}},
		{always, nameMeta("description", r.Description)},
		{always, propertyMeta("og:site_name", cfg.SiteName)},
		{always, propertyMeta("og:locale", cfg.Locale)},
		{always, propertyMeta("og:url", r.URL)},
		{always, propertyMeta("og:type", ogType)},
		{always, propertyMeta("og:title", r.Title)},
		{always, propertyMeta("og:description", r.Description)},
		{always, propertyMeta("og:image", r.PrimaryImage())},
		{always, propertyMeta("fb:app_id", cfg.SocialLinks.FacebookAppID)},
		{always, nameMeta("twitter:card", TwitterCardType)},
		{always, propertyMeta("article:published_time", in.DatePublished)},
		{articleOnly, propertyMeta("article:modified_time", in.DateModified)},
		{articleOnly, nameMeta("twitter:label1", "Written by")},
		{articleOnly, nameMeta("twitter:data1", r.Author)},
		{articleOnly, nameMeta("twitter:label2", "Est. reading time")},
		{articleOnly, nameMeta("twitter:data2", readingTime(in.ReadTime))},
		{always, nameMeta("author", r.Author)},
		{always, nameMeta("twitter:creator", r.TwitterCreator)},
		{always, nameMeta("twitter:site", cfg.SocialLinks.Twitter)},
		{always, nameMeta("twitter:domain", cfg.Domain)},
		{always, nameMeta("twitter:title", r.Title)},
		{always, nameMeta("twitter:description", r.Description)},
		{always, nameMeta("twitter:image", r.PrimaryImage())},
	}
}

func nameMeta(name, content string) Tag {
	return Tag{Kind: TagKindMeta, Attr: "name", Key: name, Content: content}
}

func propertyMeta(property, content string) Tag {
	return Tag{Kind: TagKindMeta, Attr: "property", Key: property, Content: content}
}

func readingTime(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', -1, 64) + " min read"
}
