package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var (
	ErrInvalidConfig     = errors.New("invalid site configuration")
	ErrUnknownField      = errors.New("unknown configuration field")
	ErrUndefinedVariable = errors.New("undefined environment variable")
)

// Loader builds a SiteConfig from a YAML file, or from Default when Path is
// empty, resolving environment references through Env.
type Loader struct {
	Path string
	Env  Env
}

func NewLoader(path string, env Env) *Loader {
	return &Loader{Path: path, Env: env}
}

func (l *Loader) env() Env {
	if l.Env == nil {
		return MapEnv{}
	}
	return l.Env
}

// Load returns a validated configuration or the first stage that failed.
func (l *Loader) Load() (*SiteConfig, error) {
	if l.Path == "" {
		return finish(Default(), l.env())
	}

	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", l.Path)
	}

	cfg, err := Parse(data, l.env())
	if err != nil {
		return nil, errors.WithMessage(err, l.Path)
	}
	return cfg, nil
}

// Parse decodes a YAML configuration, rejecting unknown fields.
func Parse(data []byte, env Env) (*SiteConfig, error) {
	if env == nil {
		env = MapEnv{}
	}

	data, err := interpolate(data, env)
	if err != nil {
		return nil, err
	}

	var cfg SiteConfig
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		if isUnknownField(err) {
			return nil, errors.Wrap(ErrUnknownField, err.Error())
		}
		return nil, errors.Wrap(err, "decoding config")
	}

	return finish(&cfg, env)
}

func finish(cfg *SiteConfig, env Env) (*SiteConfig, error) {
	applyOverrides(cfg, env)
	normalize(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func normalize(cfg *SiteConfig) {
	if cfg.Redirects == nil {
		cfg.Redirects = []Redirect{}
	}
	if len(cfg.Locales) == 0 {
		cfg.Locales = append([]string{}, defaultLocales...)
	}
	if cfg.Theme == nil {
		cfg.Theme = map[string]string{}
	}
	cfg.Metadata.SiteURL = strings.TrimSuffix(cfg.Metadata.SiteURL, "/")
}

// yaml.v2 reports strict-mode violations as "field X not found in type Y".
func isUnknownField(err error) bool {
	var te *yaml.TypeError
	if !errors.As(err, &te) {
		return false
	}
	for _, msg := range te.Errors {
		if strings.Contains(msg, "not found in type") {
			return true
		}
	}
	return false
}
