package config

import (
	"errors"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rotisserie/eris"

	"pellerex/site/internal/domain/seo"
)

const siteConfigRoot = "seo"

// siteDefaults returns the values applied before the site config file is read.
func siteDefaults() map[string]any {
	return map[string]any{
		"seo.titlePrefix": "Pellerex | ",
		"seo.locale":      "en_AU",
		"seo.openingHours": []any{
			map[string]any{
				"dayOfWeek": []any{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
				"opens":     "09:00",
				"closes":    "17:00",
			},
		},
	}
}

// LoadSite reads the SEO site configuration from a JSON or YAML document whose
// values live under the `seo` key, then validates it. JSON documents are read
// through the YAML parser.
func LoadSite(path string) (seo.Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(siteDefaults(), "."), nil); err != nil {
		return seo.Config{}, eris.Wrap(err, "loading site config defaults")
	}

	if path == "" {
		return seo.Config{}, eris.New("site config path is required")
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return seo.Config{}, eris.Wrapf(err, "site config not found: %s", path)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return seo.Config{}, eris.Wrapf(err, "reading site config %s", path)
	}

	var cfg seo.Config
	if err := k.Unmarshal(siteConfigRoot, &cfg); err != nil {
		return seo.Config{}, eris.Wrap(err, "decoding site config")
	}

	if err := ValidateSite(cfg); err != nil {
		return seo.Config{}, err
	}

	return cfg, nil
}
