package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/opensumi/sumi-site/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes(t *testing.T) {
	cfg := config.Default()
	cfg.Docs = cfg.Docs[:2]

	assert.Equal(t, []string{
		"/",
		"/docs/integrate/overview",
		"/docs/develop/how-to-contribute",
		"/docs/integrate/quick-start",
		"/docs/integrate/universal-integrate-case",
		"/zh",
		"/zh/docs/integrate/overview",
		"/zh/docs/develop/how-to-contribute",
		"/zh/docs/integrate/quick-start",
		"/zh/docs/integrate/universal-integrate-case",
	}, Routes(cfg))
}

func TestGenerateSitemapContent(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	out, err := GenerateSitemapContent(config.Default(), now)
	require.NoError(t, err)

	var sm Sitemap
	require.NoError(t, xml.Unmarshal([]byte(out), &sm))
	assert.Len(t, sm.Urls, 2*(1+2+5))
	assert.Equal(t, "https://opensumi.com/", sm.Urls[0].Loc)
	assert.Equal(t, "2026-10-19", sm.Urls[0].LastMod)
}

func TestGenerateSitemap(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "sitemap.xml")
	require.NoError(t, GenerateSitemap(config.Default(), dest, time.Now()))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), xml.Header))
	assert.Contains(t, string(data), "<loc>https://opensumi.com/zh/docs/develop/sample</loc>")
}

func TestGenerateSitemap_UnwritableDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "missing", "sitemap.xml")
	err := GenerateSitemap(config.Default(), dest, time.Now())
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)), "got %v", err)
}
