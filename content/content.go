// Package content checks a documentation tree against the site
// configuration: every configured page needs a markdown source per locale.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"github.com/opensumi/sumi-site/config"
	"github.com/pkg/errors"
)

type Problem string

const (
	MissingSource Problem = "missing source"
	NoHeading     Problem = "no heading"
)

type Finding struct {
	Slug    string
	Title   string
	Locale  string
	Path    string
	Problem Problem
}

func (f Finding) String() string {
	if f.Path == "" {
		return fmt.Sprintf("%s [%s] %q: %s", f.Slug, f.Locale, f.Title, f.Problem)
	}
	return fmt.Sprintf("%s [%s] %q: %s (%s)", f.Slug, f.Locale, f.Title, f.Problem, f.Path)
}

// Candidates returns the paths a page source may live at, in lookup order.
func Candidates(dir, slug, locale string) []string {
	return []string{
		filepath.Join(dir, filepath.FromSlash(slug)+"."+locale+".md"),
		filepath.Join(dir, filepath.FromSlash(slug), locale+".md"),
	}
}

// Check walks the configured pages in display order. Missing sources and
// documents without a heading are reported as findings; I/O failures other
// than a missing file are returned as errors.
func Check(cfg *config.SiteConfig, dir string) ([]Finding, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("content path %s is not a directory", dir)
	}

	var findings []Finding
	for _, doc := range cfg.SortedDocs() {
		for _, locale := range cfg.Locales {
			title := doc.Title.Get(locale, cfg.DefaultLocale())
			src, err := locate(dir, doc.Slug, locale)
			if err != nil {
				return nil, err
			}
			if src == "" {
				findings = append(findings, Finding{Slug: doc.Slug, Title: title, Locale: locale, Problem: MissingSource})
				continue
			}

			data, err := os.ReadFile(src)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			if !hasHeading(stripFrontmatter(data)) {
				findings = append(findings, Finding{Slug: doc.Slug, Title: title, Locale: locale, Path: src, Problem: NoHeading})
			}
		}
	}
	return findings, nil
}

func locate(dir, slug, locale string) (string, error) {
	for _, p := range Candidates(dir, slug, locale) {
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", errors.WithStack(err)
		}
	}
	return "", nil
}

func stripFrontmatter(data []byte) []byte {
	s := string(data)
	if !strings.HasPrefix(s, "---\n") {
		return data
	}
	parts := strings.SplitN(s[len("---\n"):], "\n---\n", 2)
	if len(parts) != 2 {
		return data
	}
	return []byte(parts[1])
}

func hasHeading(md []byte) bool {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := markdown.Parse(md, p)

	found := false
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if _, ok := node.(*ast.Heading); ok && entering {
			found = true
			return ast.Terminate
		}
		return ast.GoToNext
	})
	return found
}
