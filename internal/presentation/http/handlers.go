package http

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/getsentry/sentry-go"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"pellerex/site/internal/domain/seo"
	"pellerex/site/internal/presentation/http/templates"
)

const (
	htmlContentType      = "text/html; charset=utf-8"
	homeLocation         = "/"
	errorFallbackMessage = "We couldn't process your request right now."
)

type htmlResponse struct {
	Status      int
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type previewInput struct {
	Location              string   `query:"location" doc:"Page path relative to the site domain, e.g. blog/post-1"`
	Type                  string   `query:"type" doc:"Content type discriminator: Article or Website"`
	Title                 string   `query:"title"`
	Description           string   `query:"description"`
	Author                string   `query:"author"`
	DatePublished         string   `query:"datePublished" doc:"Passed through verbatim, e.g. 2015-02-05T08:00:00+08:00"`
	DateModified          string   `query:"dateModified"`
	AuthorTwitterUserName string   `query:"authorTwitterUserName"`
	Covers                []string `query:"covers" doc:"Comma separated cover image URLs"`
	ReadTime              float64  `query:"readTime" minimum:"0"`
}

type pageInputBody struct {
	Location              string   `json:"location" minLength:"1" doc:"Page path relative to the site domain"`
	Type                  string   `json:"type" enum:"Article,Website" doc:"Content type discriminator"`
	Title                 string   `json:"title,omitempty"`
	Description           string   `json:"description,omitempty"`
	Author                string   `json:"author,omitempty"`
	DatePublished         string   `json:"datePublished,omitempty"`
	DateModified          string   `json:"dateModified,omitempty"`
	AuthorTwitterUserName string   `json:"authorTwitterUserName,omitempty"`
	Covers                []string `json:"covers,omitempty"`
	ReadTime              float64  `json:"readTime,omitempty" minimum:"0"`
}

type headRequest struct {
	Body pageInputBody
}

type headResponseBody struct {
	Type           seo.ContentType `json:"type"`
	Tags           []seo.Tag       `json:"tags"`
	StructuredData seo.Script      `json:"structuredData"`
	HTML           string          `json:"html" doc:"Rendered head fragment"`
}

type headResponse struct {
	Body headResponseBody
}

type healthResponse struct {
	Status int
	Body   struct {
		Status string `json:"status"`
		Site   string `json:"site"`
	}
}

func (s *Server) registerHomeRoute() {
	huma.Get(s.api, "/", s.homeHandler, htmlOperation("Pellerex home", stdhttp.StatusInternalServerError))
}

func (s *Server) registerPreviewRoute() {
	huma.Get(s.api, "/preview", s.previewHandler, htmlOperation(
		"Preview a page with its SEO head",
		stdhttp.StatusBadRequest,
		stdhttp.StatusInternalServerError,
	))
}

func (s *Server) registerHeadRoute() {
	huma.Post(s.api, "/api/head", s.headHandler, func(op *huma.Operation) {
		op.Summary = "Build the SEO head for a page"
	})
}

func (s *Server) registerHealthRoute() {
	huma.Get(s.api, "/healthz", s.healthHandler, func(op *huma.Operation) {
		op.Summary = "Health check"
	})
}

func (s *Server) homeHandler(ctx context.Context, _ *struct{}) (*htmlResponse, error) {
	head, err := s.heads.BuildHead(ctx, seo.PageInput{Location: homeLocation, Type: seo.ContentTypeWebsite})
	if err != nil {
		s.recordError(ctx, err, "building home page head", nil)
		return s.renderErrorResponse(ctx, stdhttp.StatusInternalServerError, "We couldn't load Pellerex right now.")
	}

	cfg := s.heads.Config()
	return s.renderPage(ctx, templates.PageData{
		Head:        *head,
		SiteName:    cfg.SiteName,
		Heading:     cfg.SiteName,
		Description: metaContent(head, "description"),
	})
}

func (s *Server) previewHandler(ctx context.Context, input *previewInput) (*htmlResponse, error) {
	in := seo.PageInput{
		Location:              input.Location,
		Type:                  seo.ContentType(strings.TrimSpace(input.Type)),
		Title:                 input.Title,
		Description:           input.Description,
		Author:                input.Author,
		DatePublished:         input.DatePublished,
		DateModified:          input.DateModified,
		AuthorTwitterUserName: input.AuthorTwitterUserName,
		Covers:                nonEmpty(input.Covers),
		ReadTime:              input.ReadTime,
	}

	head, err := s.heads.BuildHead(ctx, in)
	if err != nil {
		status, message := classifyError(err)
		s.reportFailure(ctx, status, err, "building preview head", logrus.Fields{"location": input.Location, "type": input.Type})
		return s.renderErrorResponse(ctx, status, message)
	}

	data := templates.PageData{
		Head:        *head,
		SiteName:    s.heads.Config().SiteName,
		Heading:     head.Title(),
		Description: metaContent(head, "description"),
	}
	if head.Type.IsArticle() {
		data.Byline = fmt.Sprintf("By %s · %s", metaContent(head, "author"), metaContent(head, "twitter:data2"))
	}

	return s.renderPage(ctx, data)
}

func (s *Server) headHandler(ctx context.Context, input *headRequest) (*headResponse, error) {
	body := input.Body
	head, err := s.heads.BuildHead(ctx, seo.PageInput{
		Location:              body.Location,
		Type:                  seo.ContentType(body.Type),
		Title:                 body.Title,
		Description:           body.Description,
		Author:                body.Author,
		DatePublished:         body.DatePublished,
		DateModified:          body.DateModified,
		AuthorTwitterUserName: body.AuthorTwitterUserName,
		Covers:                body.Covers,
		ReadTime:              body.ReadTime,
	})
	if err != nil {
		status, message := classifyError(err)
		s.reportFailure(ctx, status, err, "building head", logrus.Fields{"location": body.Location, "type": body.Type})
		return nil, huma.NewError(status, message)
	}

	fragment, err := renderComponent(ctx, templates.Head(*head))
	if err != nil {
		s.recordError(ctx, err, "rendering head fragment", logrus.Fields{"location": body.Location})
		return nil, huma.Error500InternalServerError(errorFallbackMessage)
	}

	return &headResponse{Body: headResponseBody{
		Type:           head.Type,
		Tags:           head.Tags,
		StructuredData: head.StructuredData,
		HTML:           string(fragment),
	}}, nil
}

func (s *Server) healthHandler(_ context.Context, _ *struct{}) (*healthResponse, error) {
	resp := &healthResponse{Status: stdhttp.StatusOK}
	resp.Body.Status = "ok"
	resp.Body.Site = s.heads.Config().Domain
	return resp, nil
}

func (s *Server) renderPage(ctx context.Context, data templates.PageData) (*htmlResponse, error) {
	body, err := renderComponent(ctx, templates.Page(data))
	if err != nil {
		s.recordError(ctx, err, "rendering page", logrus.Fields{"heading": data.Heading})
		return s.renderErrorResponse(ctx, stdhttp.StatusInternalServerError, "We couldn't render this page.")
	}

	return newHTMLResponse(stdhttp.StatusOK, body), nil
}

func newHTMLResponse(status int, body []byte) *htmlResponse {
	return &htmlResponse{
		Status:      status,
		ContentType: htmlContentType,
		Body:        body,
	}
}

func htmlOperation(summary string, statuses ...int) func(op *huma.Operation) {
	return func(op *huma.Operation) {
		if summary != "" {
			op.Summary = summary
		}
		if op.Responses == nil {
			op.Responses = map[string]*huma.Response{}
		}

		statusCodes := append([]int{stdhttp.StatusOK}, statuses...)
		for _, status := range statusCodes {
			code := strconv.Itoa(status)
			op.Responses[code] = &huma.Response{
				Description: stdhttp.StatusText(status),
				Content: map[string]*huma.MediaType{
					htmlContentType: {
						Schema: &huma.Schema{Type: "string"},
					},
				},
			}
		}
	}
}

func classifyError(err error) (int, string) {
	switch {
	case err == nil:
		return stdhttp.StatusInternalServerError, errorFallbackMessage
	case eris.Is(err, seo.ErrLocationRequired):
		return stdhttp.StatusBadRequest, "A page location is required."
	case eris.Is(err, seo.ErrInvalidContentType):
		return stdhttp.StatusBadRequest, "The page type must be Article or Website."
	default:
		return stdhttp.StatusInternalServerError, errorFallbackMessage
	}
}

func (s *Server) renderErrorResponse(ctx context.Context, status int, message string) (*htmlResponse, error) {
	siteName := s.heads.Config().SiteName
	label := fmt.Sprintf("%d %s", status, stdhttp.StatusText(status))
	template := templates.ErrorPage(templates.ErrorPageData{
		Title:       fmt.Sprintf("%s • %s", label, siteName),
		SiteName:    siteName,
		StatusLabel: label,
		Message:     message,
	})

	body, err := renderComponent(ctx, template)
	if err != nil {
		s.recordError(ctx, err, "rendering error page", logrus.Fields{"status": status})
		fallback := []byte(fmt.Sprintf("<html><body><h1>%s</h1><p>%s</p></body></html>", label, message))
		return newHTMLResponse(status, fallback), nil
	}

	return newHTMLResponse(status, body), nil
}

// reportFailure records server-side failures and only logs rejected input.
func (s *Server) reportFailure(ctx context.Context, status int, err error, message string, fields logrus.Fields) {
	if status >= stdhttp.StatusInternalServerError {
		s.recordError(ctx, err, message, fields)
		return
	}

	if s.logger != nil {
		entry := s.logger.WithError(err).WithFields(fields)
		if requestID := RequestIDFromContext(ctx); requestID != "" {
			entry = entry.WithField("request_id", requestID)
		}
		entry.Info("rejected page input")
	}
}

// recordError logs err and sends it to sentry once, on the request hub when present.
func (s *Server) recordError(ctx context.Context, err error, message string, fields logrus.Fields) {
	if err == nil {
		return
	}

	if s.logger != nil {
		entry := s.logger.WithField("error", err.Error())
		if fields != nil {
			entry = entry.WithFields(fields)
		}
		if requestID := RequestIDFromContext(ctx); requestID != "" {
			entry = entry.WithField("request_id", requestID)
		}
		entry.Error(message)
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
		return
	}
	if s.sentry != nil {
		s.sentry.CaptureException(err)
	}
}

func metaContent(head *seo.Head, key string) string {
	tag, _ := head.Lookup(key)
	return tag.Content
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}
