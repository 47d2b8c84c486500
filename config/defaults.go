package config

const (
	logoImage     = "https://img.alicdn.com/imgextra/i2/O1CN01dqjQei1tpbj9z9VPH_!!6000000005951-55-tps-87-78.svg"
	dingTalkImage = "https://img.alicdn.com/imgextra/i1/O1CN01k3gCmL1HWPjLchVv7_!!6000000000765-0-tps-200-199.jpg"
)

var defaultLocales = []string{"en", "zh"}

// Default returns the OpenSumi site configuration. Search credentials are
// left empty and must come from the environment.
func Default() *SiteConfig {
	return &SiteConfig{
		TrackingID: "G-63DR4G0WD7",
		Theme: map[string]string{
			"primary-color": "#9f5fdb",
		},
		Features: FeatureFlags{
			PWA:                  true,
			CodeSplit:            true,
			CNAME:                false,
			ShowSearch:           false,
			ShowChinaMirror:      false,
			ShowLanguageSwitcher: true,
			ShowGithubCorner:     true,
			ShowDingTalkQRCode:   true,
		},
		Metadata: Metadata{
			Title:       "OpenSumi",
			Description: "一款帮助你快速搭建本地和云端 IDE 的框架 - A framework helps you quickly build Cloud or Desktop IDE products.",
			SiteURL:     "https://opensumi.com",
			Logo: Logo{
				Img:  logoImage,
				Link: "https://opensumi.com",
			},
			GithubURL:      "https://github.com/opensumi/core",
			DocsURL:        "https://github.com/opensumi/docs",
			DingTalkQRCode: dingTalkImage,
		},
		Locales: append([]string{}, defaultLocales...),
		Navs: []NavItem{
			{Slug: "docs/integrate/overview", Title: LocalizedText{"en": "Documentation", "zh": "集成文档"}},
			{Slug: "docs/develop/how-to-contribute", Title: LocalizedText{"en": "Development", "zh": "开发文档"}},
		},
		Docs: []DocPage{
			{Slug: "integrate/quick-start", Title: LocalizedText{"zh": "快速开始", "en": "Quick Start"}, Order: 1},
			{Slug: "integrate/universal-integrate-case", Title: LocalizedText{"zh": "常见集成场景", "en": "Integrate Case"}, Order: 2},
			{Slug: "develop/basic-design", Title: LocalizedText{"zh": "基础设计", "en": "Basic Design"}, Order: 2},
			{Slug: "develop/module-apis", Title: LocalizedText{"zh": "模块 API", "en": "Modules API"}, Order: 3},
			{Slug: "develop/sample", Title: LocalizedText{"zh": "经典案例", "en": "Sample"}, Order: 5},
		},
		DocSearch: DocSearch{
			IndexName: "docs",
		},
		Redirects: []Redirect{},
	}
}
