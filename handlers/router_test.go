package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opensumi/sumi-site/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.DocSearch.APIKey = "secret"
	var logs bytes.Buffer
	return SetupRouter(cfg, zerolog.New(&logs)), &logs
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	h, logs := newTestRouter(t)
	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Contains(t, logs.String(), `"path":"/healthz"`)
	assert.Contains(t, logs.String(), `"status":200`)
}

func TestRouter_ConfigJSON(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(t, h, "/config.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")

	var cfg config.SiteConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, "OpenSumi", cfg.Metadata.Title)
	assert.Len(t, cfg.Docs, 5)
}

func TestRouter_GatsbyConfig(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(t, h, "/gatsby-config.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/javascript; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "@opensumi/gatsby-theme")
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestRouter_Sitemap(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(t, h, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<loc>https://opensumi.com/docs/develop/sample</loc>")
}

func TestRouter_NotFound(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(t, h, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found","path":"/nope"}`, rec.Body.String())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/config.json", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
