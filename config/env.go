package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Env resolves environment variables. Loading code takes an Env instead of
// reading the process environment so it can be exercised in isolation.
type Env interface {
	Lookup(key string) (string, bool)
}

type EnvFunc func(key string) (string, bool)

func (f EnvFunc) Lookup(key string) (string, bool) { return f(key) }

type MapEnv map[string]string

func (m MapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// OSEnv reads the process environment.
var OSEnv Env = EnvFunc(os.LookupEnv)

type layeredEnv []Env

func (l layeredEnv) Lookup(key string) (string, bool) {
	for _, e := range l {
		if e == nil {
			continue
		}
		if v, ok := e.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// Layered consults each Env in turn; the first one defining key wins.
func Layered(envs ...Env) Env {
	return layeredEnv(envs)
}

// ReadDotenv parses a dotenv file without touching the process environment.
// A missing file yields an empty map.
func ReadDotenv(path string) (MapEnv, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return MapEnv{}, nil
		}
		return nil, errors.Wrapf(err, "reading env file %s", path)
	}
	return MapEnv(vars), nil
}

// LoadDotenv loads a dotenv file into the process environment. Variables
// that are already set are left alone. A missing file is not an error.
func LoadDotenv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "loading env file %s", path)
	}
	return nil
}

// Variables that override the configuration after decoding.
const (
	EnvSiteTitle          = "SITE_TITLE"
	EnvSiteURL            = "SITE_URL"
	EnvTrackingID         = "GA_TRACKING_ID"
	EnvDocSearchAppID     = "DOCSEARCH_APP_ID"
	EnvDocSearchAPIKey    = "DOCSEARCH_API_KEY"
	EnvDocSearchIndexName = "DOCSEARCH_INDEX_NAME"
)

func applyOverrides(cfg *SiteConfig, env Env) {
	set := func(dst *string, key string) {
		if v, ok := env.Lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(&cfg.Metadata.Title, EnvSiteTitle)
	set(&cfg.Metadata.SiteURL, EnvSiteURL)
	set(&cfg.TrackingID, EnvTrackingID)
	set(&cfg.DocSearch.AppID, EnvDocSearchAppID)
	set(&cfg.DocSearch.APIKey, EnvDocSearchAPIKey)
	set(&cfg.DocSearch.IndexName, EnvDocSearchIndexName)
}

var varPattern = regexp.MustCompile(`\$\$|\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// interpolate resolves ${NAME} references inside string values of the YAML
// document. Keys and comments are left alone, and substituted values stay
// plain strings whatever characters they contain. $$ is a literal $.
func interpolate(src []byte, env Env) ([]byte, error) {
	if !varPattern.Match(src) {
		return src, nil
	}

	var doc yaml.MapSlice
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	r := &resolver{env: env}
	tree := r.walk(doc)
	if len(r.missing) > 0 {
		return nil, errors.Wrap(ErrUndefinedVariable, strings.Join(r.missing, ", "))
	}
	if !r.changed {
		return src, nil
	}

	out, err := yaml.Marshal(tree)
	if err != nil {
		return nil, errors.Wrap(err, "encoding interpolated config")
	}
	return out, nil
}

type resolver struct {
	env     Env
	missing []string
	changed bool
}

func (r *resolver) walk(node interface{}) interface{} {
	switch n := node.(type) {
	case yaml.MapSlice:
		for i := range n {
			n[i].Value = r.walk(n[i].Value)
		}
		return n
	case []interface{}:
		for i := range n {
			n[i] = r.walk(n[i])
		}
		return n
	case string:
		return r.expand(n)
	default:
		return node
	}
}

func (r *resolver) expand(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(m string) string {
		r.changed = true
		if m == "$$" {
			return "$"
		}
		name := m[2 : len(m)-1]
		v, ok := r.env.Lookup(name)
		if !ok {
			r.missing = append(r.missing, name)
			return m
		}
		return v
	})
}
