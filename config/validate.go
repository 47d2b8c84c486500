package config

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Validate reports every problem found in the configuration at once. The
// returned error matches ErrInvalidConfig.
func (c *SiteConfig) Validate() error {
	var errs *multierror.Error

	if c.Metadata.Title == "" {
		errs = multierror.Append(errs, errors.New("metadata.title is required"))
	}
	if c.Metadata.SiteURL == "" {
		errs = multierror.Append(errs, errors.New("metadata.site_url is required"))
	} else if err := checkAbsoluteURL(c.Metadata.SiteURL); err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, "metadata.site_url"))
	}

	errs = multierror.Append(errs, c.validateLocales()...)
	errs = multierror.Append(errs, c.validateNavs()...)
	errs = multierror.Append(errs, c.validateDocs()...)
	errs = multierror.Append(errs, c.validateRedirects()...)

	if c.Features.ShowSearch && !c.DocSearch.Configured() {
		errs = multierror.Append(errs, errors.New("features.show_search requires docsearch app_id, api_key and index_name"))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

func checkAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Errorf("%q is not an absolute http(s) URL", raw)
	}
	return nil
}

func (c *SiteConfig) validateLocales() []error {
	var errs []error
	if len(c.Locales) == 0 {
		return []error{errors.New("locales must list at least one locale")}
	}
	seen := make(map[string]bool, len(c.Locales))
	for _, l := range c.Locales {
		if _, err := language.Parse(l); err != nil {
			errs = append(errs, errors.Errorf("locales: %q is not a valid language tag", l))
		}
		if seen[l] {
			errs = append(errs, errors.Errorf("locales: %q listed twice", l))
		}
		seen[l] = true
	}
	return errs
}

func (c *SiteConfig) validateNavs() []error {
	var errs []error
	seen := make(map[string]int, len(c.Navs))
	for i, n := range c.Navs {
		field := fmt.Sprintf("navs[%d]", i)
		errs = append(errs, checkSlug(field, n.Slug, seen, i)...)
		errs = append(errs, c.checkTitle(field, n.Title)...)
	}
	return errs
}

func (c *SiteConfig) validateDocs() []error {
	var errs []error
	seen := make(map[string]int, len(c.Docs))
	for i, d := range c.Docs {
		field := fmt.Sprintf("docs[%d]", i)
		errs = append(errs, checkSlug(field, d.Slug, seen, i)...)
		errs = append(errs, c.checkTitle(field, d.Title)...)
		if d.Order < 0 {
			errs = append(errs, errors.Errorf("%s.order must not be negative, got %d", field, d.Order))
		}
	}
	return errs
}

func checkSlug(field, slug string, seen map[string]int, idx int) []error {
	if slug == "" {
		return []error{errors.Errorf("%s.slug is required", field)}
	}
	var errs []error
	if strings.HasPrefix(slug, "/") {
		errs = append(errs, errors.Errorf("%s.slug %q must not start with /", field, slug))
	}
	if prev, ok := seen[slug]; ok {
		errs = append(errs, errors.Errorf("%s.slug %q duplicates entry %d", field, slug, prev))
	} else {
		seen[slug] = idx
	}
	return errs
}

func (c *SiteConfig) checkTitle(field string, title LocalizedText) []error {
	if len(title) == 0 {
		return []error{errors.Errorf("%s.title is required", field)}
	}
	var missing []string
	for _, l := range c.Locales {
		if title[l] == "" {
			missing = append(missing, l)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return []error{errors.Errorf("%s.title is missing locales %s", field, strings.Join(missing, ", "))}
}

func (c *SiteConfig) validateRedirects() []error {
	var errs []error
	seen := make(map[string]bool, len(c.Redirects))
	for i, r := range c.Redirects {
		field := fmt.Sprintf("redirects[%d]", i)
		if !strings.HasPrefix(r.From, "/") {
			errs = append(errs, errors.Errorf("%s.from %q must be an absolute path", field, r.From))
		}
		if !strings.HasPrefix(r.To, "/") && checkAbsoluteURL(r.To) != nil {
			errs = append(errs, errors.Errorf("%s.to %q must be an absolute path or URL", field, r.To))
		}
		if r.From != "" && r.From == r.To {
			errs = append(errs, errors.Errorf("%s redirects %q to itself", field, r.From))
		}
		if seen[r.From] {
			errs = append(errs, errors.Errorf("%s.from %q is redirected twice", field, r.From))
		}
		seen[r.From] = true
	}
	return errs
}
