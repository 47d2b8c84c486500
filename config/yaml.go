package config

// config/yaml.go

import "sort"

type SiteConfig struct {
	TrackingID string            `yaml:"tracking_id" json:"trackingId,omitempty"`
	Theme      map[string]string `yaml:"theme" json:"theme,omitempty"`
	Features   FeatureFlags      `yaml:"features" json:"features"`
	Metadata   Metadata          `yaml:"metadata" json:"metadata"`
	Locales    []string          `yaml:"locales" json:"locales"`
	Navs       []NavItem         `yaml:"navs" json:"navs"`
	Docs       []DocPage         `yaml:"docs" json:"docs"`
	DocSearch  DocSearch         `yaml:"docsearch" json:"docsearch"`
	Redirects  []Redirect        `yaml:"redirects" json:"redirects"`
}

type FeatureFlags struct {
	PWA                  bool `yaml:"pwa" json:"pwa"`
	CodeSplit            bool `yaml:"code_split" json:"codeSplit"`
	CNAME                bool `yaml:"cname" json:"cname"`
	ShowSearch           bool `yaml:"show_search" json:"showSearch"`
	ShowChinaMirror      bool `yaml:"show_china_mirror" json:"showChinaMirror"`
	ShowLanguageSwitcher bool `yaml:"show_language_switcher" json:"showLanguageSwitcher"`
	ShowGithubCorner     bool `yaml:"show_github_corner" json:"showGithubCorner"`
	ShowDingTalkQRCode   bool `yaml:"show_dingtalk_qrcode" json:"showDingTalkQRCode"`
}

type Metadata struct {
	Title          string `yaml:"title" json:"title"`
	Description    string `yaml:"description" json:"description"`
	SiteURL        string `yaml:"site_url" json:"siteUrl"`
	Logo           Logo   `yaml:"logo" json:"logo"`
	GithubURL      string `yaml:"github_url" json:"githubUrl"`
	DocsURL        string `yaml:"docs_url" json:"docsUrl"`
	DingTalkQRCode string `yaml:"dingtalk_qrcode" json:"dingTalkQRCode,omitempty"`
}

type Logo struct {
	Img  string `yaml:"img" json:"img"`
	Link string `yaml:"link" json:"link"`
}

// LocalizedText maps a locale code to its display string.
type LocalizedText map[string]string

// Get returns the text for locale, then for fallback, then the empty string.
func (t LocalizedText) Get(locale, fallback string) string {
	if s, ok := t[locale]; ok && s != "" {
		return s
	}
	return t[fallback]
}

type NavItem struct {
	Slug  string        `yaml:"slug" json:"slug"`
	Title LocalizedText `yaml:"title" json:"title"`
}

type DocPage struct {
	Slug  string        `yaml:"slug" json:"slug"`
	Title LocalizedText `yaml:"title" json:"title"`
	Order int           `yaml:"order" json:"order"`
}

type DocSearch struct {
	AppID     string `yaml:"app_id" json:"appId"`
	APIKey    string `yaml:"api_key" json:"apiKey"`
	IndexName string `yaml:"index_name" json:"indexName"`
}

// Configured reports whether all three credentials are present.
func (d DocSearch) Configured() bool {
	return d.AppID != "" && d.APIKey != "" && d.IndexName != ""
}

type Redirect struct {
	From      string `yaml:"from" json:"fromPath"`
	To        string `yaml:"to" json:"toPath"`
	Permanent bool   `yaml:"permanent" json:"isPermanent"`
}

// DefaultLocale is the first supported locale, served without a path prefix.
func (c *SiteConfig) DefaultLocale() string {
	if len(c.Locales) == 0 {
		return "en"
	}
	return c.Locales[0]
}

// SortedDocs returns the documentation pages ordered by Order. Pages sharing
// an order keep the sequence they were declared in.
func (c *SiteConfig) SortedDocs() []DocPage {
	docs := make([]DocPage, len(c.Docs))
	copy(docs, c.Docs)
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Order < docs[j].Order
	})
	return docs
}

const redactedValue = "********"

// Redacted returns a deep copy that is safe to print or serve.
func (c *SiteConfig) Redacted() *SiteConfig {
	out := *c

	out.Theme = make(map[string]string, len(c.Theme))
	for k, v := range c.Theme {
		out.Theme[k] = v
	}
	out.Locales = append([]string{}, c.Locales...)
	out.Redirects = append([]Redirect{}, c.Redirects...)

	out.Navs = make([]NavItem, len(c.Navs))
	for i, n := range c.Navs {
		out.Navs[i] = NavItem{Slug: n.Slug, Title: copyText(n.Title)}
	}
	out.Docs = make([]DocPage, len(c.Docs))
	for i, d := range c.Docs {
		out.Docs[i] = DocPage{Slug: d.Slug, Title: copyText(d.Title), Order: d.Order}
	}

	if out.DocSearch.APIKey != "" {
		out.DocSearch.APIKey = redactedValue
	}
	return &out
}

func copyText(t LocalizedText) LocalizedText {
	if t == nil {
		return nil
	}
	out := make(LocalizedText, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
