package utils

import (
	"encoding/xml"
	"os"
	"path"
	"time"

	"github.com/opensumi/sumi-site/config"
	"github.com/pkg/errors"
)

const sitemapXmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Routes lists every path the site exposes for the configured navs and docs.
// The default locale is served unprefixed, others under /<locale>.
func Routes(cfg *config.SiteConfig) []string {
	seen := map[string]bool{}
	var routes []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			routes = append(routes, p)
		}
	}

	for _, locale := range cfg.Locales {
		prefix := "/"
		if locale != cfg.DefaultLocale() {
			prefix = "/" + locale
		}
		add(path.Clean(prefix + "/"))
		for _, n := range cfg.Navs {
			add(path.Join(prefix, n.Slug))
		}
		for _, d := range cfg.SortedDocs() {
			add(path.Join(prefix, "docs", d.Slug))
		}
	}
	return routes
}

func GenerateSitemap(cfg *config.SiteConfig, dest string, now time.Time) error {
	xmlOutput, err := GenerateSitemapContent(cfg, now)
	if err != nil {
		return err
	}

	xmlFile, err := os.Create(dest)
	if err != nil {
		return errors.WithStack(err)
	}

	for _, chunk := range []string{xml.Header, xmlOutput} {
		if _, err := xmlFile.Write([]byte(chunk)); err != nil {
			xmlFile.Close()
			return errors.WithStack(err)
		}
	}

	if err := xmlFile.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", dest)
	}

	return nil
}

func GenerateSitemapContent(cfg *config.SiteConfig, now time.Time) (string, error) {
	sitemap := Sitemap{
		Xmlns: sitemapXmlns,
	}

	lastMod := now.Format("2006-01-02")
	for _, route := range Routes(cfg) {
		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     cfg.Metadata.SiteURL + route,
			LastMod: lastMod,
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(xmlOutput), nil
}
