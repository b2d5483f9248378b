package bootstrap

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pellerex/site/internal/domain/seo"
	"pellerex/site/internal/platform/config"
	applog "pellerex/site/internal/platform/log"
)

const siteJSON = `{
  "seo": {
    "domain": "https://pellerex.com",
    "siteName": "Pellerex",
    "legalName": "Pellerex Pty Ltd",
    "logo": "https://pellerex.com/logo.png",
    "defaultTitle": "Pellerex | Cloud platform",
    "defaultAuthor": "Jane",
    "defaultDescription": "Ship faster with Pellerex.",
    "socialLinks": {
      "facebookAppId": "1234567890",
      "twitter": "@pellerex",
      "defaultAuthorTwitterUserName": "@jane"
    },
    "address": {
      "streetAddress": "1 George St",
      "addressLocality": "Sydney",
      "addressRegion": "NSW",
      "postalCode": "2000",
      "addressCountry": "AU"
    },
    "contact": { "phone": "+61 2 0000 0000" }
  }
}`

func runtimeConfig(sitePath string) config.Config {
	return config.Config{
		ServerPort:     8080,
		LogLevel:       "info",
		Environment:    "test",
		SiteConfigPath: sitePath,
		ShutdownGrace:  time.Second,
		RateLimit: config.RateLimitConfig{
			Burst:             5,
			RequestsPerSecond: 5,
			ClientTTL:         time.Minute,
		},
	}
}

func TestBuildLoadsSiteConfigFromPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(siteJSON), 0o600); err != nil {
		t.Fatalf("writing site config: %v", err)
	}

	result, err := Build(context.Background(), Dependencies{
		Config: runtimeConfig(path),
		Logger: applog.Discard(),
	})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	t.Cleanup(func() {
		if err := result.Cleanup(); err != nil {
			t.Errorf("cleanup returned error: %v", err)
		}
	})

	if got := result.HeadService.Config().TitlePrefix; got != "Pellerex | " {
		t.Fatalf("expected default title prefix, got %q", got)
	}

	head, err := result.HeadService.BuildHead(context.Background(), seo.PageInput{
		Location: "pricing",
		Type:     seo.ContentTypeWebsite,
	})
	if err != nil {
		t.Fatalf("BuildHead returned error: %v", err)
	}
	if tag, _ := head.Lookup("og:url"); tag.Content != "https://pellerex.com/pricing" {
		t.Fatalf("unexpected og:url %q", tag.Content)
	}

	rec := httptest.NewRecorder()
	result.HTTPServer.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(rec.Body.String(), `pellerex_site_heads_built_total{type="Website"} 1`) {
		t.Fatalf("expected the server to expose the service's metrics")
	}
}

func TestBuildRejectsInvalidSiteConfig(t *testing.T) {
	t.Parallel()

	site := seo.Config{Domain: "https://pellerex.com"}
	_, err := Build(context.Background(), Dependencies{
		Config: runtimeConfig(""),
		Site:   &site,
		Logger: applog.Discard(),
	})
	if err == nil {
		t.Fatalf("expected validation error, got nil")
	}

	if !strings.Contains(err.Error(), "seo.siteName is required") {
		t.Fatalf("expected missing key in error, got %v", err)
	}
}

func TestBuildRejectsInvalidRateLimit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(siteJSON), 0o600); err != nil {
		t.Fatalf("writing site config: %v", err)
	}

	cfg := runtimeConfig(path)
	cfg.RateLimit.Burst = 0

	if _, err := Build(context.Background(), Dependencies{Config: cfg, Logger: applog.Discard()}); err == nil {
		t.Fatalf("expected rate limiter error, got nil")
	}
}
