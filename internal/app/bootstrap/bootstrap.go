package bootstrap

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"pellerex/site/internal/domain/seo"
	"pellerex/site/internal/platform/config"
	"pellerex/site/internal/platform/metrics"
	presentationhttp "pellerex/site/internal/presentation/http"
)

type Dependencies struct {
	Config    config.Config
	Site      *seo.Config
	Logger    *logrus.Logger
	SentryHub *sentry.Hub
}

type Result struct {
	HeadService seo.Service
	HTTPServer  *presentationhttp.Server
	Metrics     *metrics.Metrics
	Cleanup     func() error
}

// Build composes the Pellerex site layers and returns the constructed components.
// When deps.Site is nil the site config is read from deps.Config.SiteConfigPath.
func Build(ctx context.Context, deps Dependencies) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, eris.Wrap(err, "bootstrap cancelled")
	}

	var site seo.Config
	if deps.Site != nil {
		if err := config.ValidateSite(*deps.Site); err != nil {
			return Result{}, eris.Wrap(err, "validating site config")
		}
		site = *deps.Site
	} else {
		loaded, err := config.LoadSite(deps.Config.SiteConfigPath)
		if err != nil {
			return Result{}, eris.Wrap(err, "loading site config")
		}
		site = loaded
	}

	recorder := metrics.New()

	headService, err := seo.NewService(site, recorder, deps.Logger)
	if err != nil {
		return Result{}, eris.Wrap(err, "creating head service")
	}

	httpServer, err := presentationhttp.NewServer(presentationhttp.Options{
		HeadService: headService,
		Metrics:     recorder,
		Logger:      deps.Logger,
		SentryHub:   deps.SentryHub,
		RateLimiter: presentationhttp.RateLimiterSettings{
			Burst:             deps.Config.RateLimit.Burst,
			RequestsPerSecond: deps.Config.RateLimit.RequestsPerSecond,
			ClientTTL:         deps.Config.RateLimit.ClientTTL,
		},
	})
	if err != nil {
		return Result{}, eris.Wrap(err, "initialising http server")
	}

	if deps.Logger != nil {
		deps.Logger.WithFields(logrus.Fields{
			"domain":    site.Domain,
			"site_name": site.SiteName,
		}).Info("site config loaded")
	}

	cleanup := func() error {
		httpServer.Close()
		return nil
	}

	return Result{
		HeadService: headService,
		HTTPServer:  httpServer,
		Metrics:     recorder,
		Cleanup:     cleanup,
	}, nil
}
