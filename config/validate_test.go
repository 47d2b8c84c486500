package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *SiteConfig)
		wantErr string
	}{
		{
			name:   "default is valid",
			mutate: func(c *SiteConfig) {},
		},
		{
			name:    "relative site url",
			mutate:  func(c *SiteConfig) { c.Metadata.SiteURL = "opensumi.com" },
			wantErr: "not an absolute http(s) URL",
		},
		{
			name:    "bad locale",
			mutate:  func(c *SiteConfig) { c.Locales = []string{"en", "not a locale"} },
			wantErr: `"not a locale" is not a valid language tag`,
		},
		{
			name:    "duplicate locale",
			mutate:  func(c *SiteConfig) { c.Locales = []string{"en", "en"} },
			wantErr: `"en" listed twice`,
		},
		{
			name:    "empty title text",
			mutate:  func(c *SiteConfig) { c.Docs[4].Title["zh"] = "" },
			wantErr: "docs[4].title is missing locales zh",
		},
		{
			name:    "leading slash slug",
			mutate:  func(c *SiteConfig) { c.Navs[1].Slug = "/docs/develop" },
			wantErr: "must not start with /",
		},
		{
			name:    "duplicate nav slug",
			mutate:  func(c *SiteConfig) { c.Navs[1].Slug = c.Navs[0].Slug },
			wantErr: "navs[1].slug",
		},
		{
			name: "search without credentials",
			mutate: func(c *SiteConfig) {
				c.Features.ShowSearch = true
				c.DocSearch = DocSearch{AppID: "app", IndexName: "docs"}
			},
			wantErr: "features.show_search requires docsearch",
		},
		{
			name: "search with credentials",
			mutate: func(c *SiteConfig) {
				c.Features.ShowSearch = true
				c.DocSearch = DocSearch{AppID: "app", APIKey: "key", IndexName: "docs"}
			},
		},
		{
			name: "redirect to itself",
			mutate: func(c *SiteConfig) {
				c.Redirects = []Redirect{{From: "/docs", To: "/docs"}}
			},
			wantErr: `redirects[0] redirects "/docs" to itself`,
		},
		{
			name: "redirect relative from",
			mutate: func(c *SiteConfig) {
				c.Redirects = []Redirect{{From: "docs", To: "/docs/integrate/overview"}}
			},
			wantErr: "redirects[0].from",
		},
		{
			name: "redirect to external url",
			mutate: func(c *SiteConfig) {
				c.Redirects = []Redirect{{From: "/github", To: "https://github.com/opensumi/core", Permanent: true}}
			},
		},
		{
			name: "duplicate redirect source",
			mutate: func(c *SiteConfig) {
				c.Redirects = []Redirect{{From: "/a", To: "/b"}, {From: "/a", To: "/c"}}
			},
			wantErr: `redirects[1].from "/a" is redirected twice`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.True(t, errors.Is(err, ErrInvalidConfig))
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDefault_Shape(t *testing.T) {
	cfg := Default()
	for _, d := range cfg.Docs {
		assert.NotEmpty(t, d.Slug)
		assert.GreaterOrEqual(t, d.Order, 0)
		assert.NotEmpty(t, d.Title["en"], d.Slug)
		assert.NotEmpty(t, d.Title["zh"], d.Slug)
	}
	for _, n := range cfg.Navs {
		assert.NotEmpty(t, n.Title["en"], n.Slug)
		assert.NotEmpty(t, n.Title["zh"], n.Slug)
	}
	assert.NotNil(t, cfg.Redirects)
}
