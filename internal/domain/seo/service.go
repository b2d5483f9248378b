package seo

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
)

// Service builds page heads against the site configuration loaded at startup.
type Service interface {
	BuildHead(ctx context.Context, in PageInput) (*Head, error)
	Config() Config
}

// Recorder receives one observation per successfully built head.
type Recorder interface {
	ObserveHead(contentType string)
}

type service struct {
	cfg      Config
	recorder Recorder
	logger   *logrus.Logger
}

var _ Service = (*service)(nil)

// NewService wires the head service with its dependencies. The recorder and
// logger are optional. Failures are returned to the caller, which owns error
// reporting.
func NewService(cfg Config, recorder Recorder, logger *logrus.Logger) (Service, error) {
	if strings.TrimSpace(cfg.Domain) == "" {
		return nil, eris.New("site domain is required")
	}

	return &service{
		cfg:      cfg,
		recorder: recorder,
		logger:   logger,
	}, nil
}

func (s *service) Config() Config {
	return s.cfg
}

func (s *service) BuildHead(ctx context.Context, in PageInput) (*Head, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in.Location = strings.TrimSpace(in.Location)
	if in.Location == "" {
		return nil, ErrLocationRequired
	}

	if in.Type != ContentTypeArticle && in.Type != ContentTypeWebsite {
		parsed, err := ParseContentType(string(in.Type))
		if err != nil {
			return nil, err
		}
		in.Type = parsed
	}

	head, err := BuildHead(s.cfg, in)
	if err != nil {
		return nil, eris.Wrapf(err, "building head for %s", in.Location)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"location": in.Location,
			"type":     in.Type,
			"tags":     len(head.Tags),
		}).Debug("page head built")
	}

	if s.recorder != nil {
		s.recorder.ObserveHead(string(in.Type))
	}

	return &head, nil
}
