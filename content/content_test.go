package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opensumi/sumi-site/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Docs = []config.DocPage{
		{Slug: "integrate/quick-start", Title: config.LocalizedText{"en": "Quick Start", "zh": "快速开始"}, Order: 1},
		{Slug: "develop/sample", Title: config.LocalizedText{"en": "Sample", "zh": "经典案例"}, Order: 5},
	}

	writeFile(t, filepath.Join(dir, "integrate", "quick-start.en.md"), "---\ntitle: Quick Start\n---\n# Quick Start\n\nhello\n")
	writeFile(t, filepath.Join(dir, "integrate", "quick-start", "zh.md"), "## 快速开始\n")
	writeFile(t, filepath.Join(dir, "develop", "sample.en.md"), "no heading here\n")

	findings, err := Check(cfg, dir)
	require.NoError(t, err)

	assert.Equal(t, []Finding{
		{Slug: "develop/sample", Title: "Sample", Locale: "en", Path: filepath.Join(dir, "develop", "sample.en.md"), Problem: NoHeading},
		{Slug: "develop/sample", Title: "经典案例", Locale: "zh", Problem: MissingSource},
	}, findings)
	assert.Equal(t, `develop/sample [zh] "经典案例": missing source`, findings[1].String())
}

func TestCheck_TitleFallsBackToDefaultLocale(t *testing.T) {
	cfg := config.Default()
	cfg.Docs = []config.DocPage{
		{Slug: "develop/sample", Title: config.LocalizedText{"en": "Sample", "zh": ""}, Order: 5},
	}

	findings, err := Check(cfg, t.TempDir())
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, "Sample", findings[1].Title)
	assert.Equal(t, "zh", findings[1].Locale)
}

func TestCheck_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "docs")
	writeFile(t, file, "")

	_, err := Check(config.Default(), file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestHasHeading(t *testing.T) {
	assert.True(t, hasHeading([]byte("Title\n=====\n")))
	assert.True(t, hasHeading([]byte("text\n\n### Deep\n")))
	assert.False(t, hasHeading([]byte("just a paragraph\n")))
}

func TestStripFrontmatter(t *testing.T) {
	assert.Equal(t, "body\n", string(stripFrontmatter([]byte("---\ntitle: x\n---\nbody\n"))))
	assert.Equal(t, "# plain\n", string(stripFrontmatter([]byte("# plain\n"))))
}
