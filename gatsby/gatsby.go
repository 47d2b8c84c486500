package gatsby

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/gobuffalo/plush"
	"github.com/opensumi/sumi-site/config"
	"github.com/opensumi/sumi-site/javascript"
	"github.com/pkg/errors"
)

const ThemePackage = "@opensumi/gatsby-theme"

const configTemplate = `require('dotenv').config();

module.exports = {
  plugins: [
    {
      resolve: <%= resolve %>,
      options: {
        GATrackingId: <%= trackingId %>,
        theme: <%= theme %>,
        pwa: <%= pwa %>,
        cname: <%= cname %>,
        codeSplit: <%= codeSplit %>
      }
    }
  ],
  siteMetadata: {
    title: <%= title %>,
    description: <%= description %>,
    siteUrl: <%= siteUrl %>,
    logo: <%= logo %>,
    logoUrl: <%= logoUrl %>,
    githubUrl: <%= githubUrl %>,
    docsUrl: <%= docsUrl %>,
    navs: <%= navs %>,
    docs: <%= docs %>,
    showDingTalkQRCode: <%= showDingTalkQRCode %>,
<%= if (hasDingTalkQRCode) { %>    dingTalkQRCode: <%= dingTalkQRCode %>,
<% } %>    showSearch: <%= showSearch %>,
    showChinaMirror: <%= showChinaMirror %>,
    showLanguageSwitcher: <%= showLanguageSwitcher %>,
    showGithubCorner: <%= showGithubCorner %>,
    docsearchOptions: {
      appId: process.env.<%= appIdEnv %> || <%= appId %>,
      apiKey: process.env.<%= apiKeyEnv %>,
      indexName: process.env.<%= indexNameEnv %> || <%= indexName %>
    },
    redirects: <%= redirects %>
  }
};
`

type RenderOptions struct {
	Minify bool
}

type navEntry struct {
	Slug  string               `json:"slug"`
	Title config.LocalizedText `json:"title"`
}

type docEntry struct {
	Slug  string               `json:"slug"`
	Title config.LocalizedText `json:"title"`
	Order int                  `json:"order"`
}

// Render produces the gatsby-config.js consumed by the theme. Search
// credentials are referenced through process.env and never inlined.
func Render(cfg *config.SiteConfig, opts RenderOptions) ([]byte, error) {
	navs := make([]navEntry, 0, len(cfg.Navs))
	for _, n := range cfg.Navs {
		navs = append(navs, navEntry{Slug: n.Slug, Title: n.Title})
	}
	docs := make([]docEntry, 0, len(cfg.Docs))
	for _, d := range cfg.SortedDocs() {
		docs = append(docs, docEntry{Slug: d.Slug, Title: d.Title, Order: d.Order})
	}

	plugin := map[string]interface{}{
		"resolve":    ThemePackage,
		"trackingId": cfg.TrackingID,
		"theme":      cfg.Theme,
		"pwa":        cfg.Features.PWA,
		"cname":      cfg.Features.CNAME,
		"codeSplit":  cfg.Features.CodeSplit,
	}
	metadata := map[string]interface{}{
		"title":                cfg.Metadata.Title,
		"description":          cfg.Metadata.Description,
		"siteUrl":              cfg.Metadata.SiteURL,
		"logo":                 cfg.Metadata.Logo,
		"logoUrl":              cfg.Metadata.Logo.Img,
		"githubUrl":            cfg.Metadata.GithubURL,
		"docsUrl":              cfg.Metadata.DocsURL,
		"navs":                 navs,
		"docs":                 docs,
		"showDingTalkQRCode":   cfg.Features.ShowDingTalkQRCode,
		"dingTalkQRCode":       cfg.Metadata.DingTalkQRCode,
		"showSearch":           cfg.Features.ShowSearch,
		"showChinaMirror":      cfg.Features.ShowChinaMirror,
		"showLanguageSwitcher": cfg.Features.ShowLanguageSwitcher,
		"showGithubCorner":     cfg.Features.ShowGithubCorner,
		"appId":                cfg.DocSearch.AppID,
		"indexName":            cfg.DocSearch.IndexName,
		"redirects":            cfg.Redirects,
	}

	ctx := plush.NewContext()
	if err := setLiterals(ctx, plugin, "      "); err != nil {
		return nil, err
	}
	if err := setLiterals(ctx, metadata, "    "); err != nil {
		return nil, err
	}
	ctx.Set("hasDingTalkQRCode", cfg.Metadata.DingTalkQRCode != "")
	ctx.Set("appIdEnv", config.EnvDocSearchAppID)
	ctx.Set("apiKeyEnv", config.EnvDocSearchAPIKey)
	ctx.Set("indexNameEnv", config.EnvDocSearchIndexName)

	out, err := plush.Render(configTemplate, ctx)
	if err != nil {
		return nil, errors.Wrap(err, "rendering gatsby config")
	}

	code, err := javascript.Transform([]byte(out), javascript.Options{
		Name:   "gatsby-config.js",
		Minify: opts.Minify,
	})
	if err != nil {
		return nil, err
	}
	if opts.Minify {
		return code, nil
	}
	return []byte(out), nil
}

// RenderJSON emits the resolved configuration with secrets masked.
func RenderJSON(cfg *config.SiteConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg.Redacted()); err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

// literal encodes v as a JavaScript expression. JSON is valid JS, and the
// result is marked safe so plush does not escape it.
func literal(v interface{}, indent string) (template.HTML, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(indent, "  ")
	if err := enc.Encode(v); err != nil {
		return "", errors.WithStack(err)
	}
	return template.HTML(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func setLiterals(ctx *plush.Context, values map[string]interface{}, indent string) error {
	for k, v := range values {
		lit, err := literal(v, indent)
		if err != nil {
			return errors.Wrapf(err, "encoding %s", k)
		}
		ctx.Set(k, lit)
	}
	return nil
}
