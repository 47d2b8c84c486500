package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/opensumi/sumi-site/config"
	"github.com/opensumi/sumi-site/gatsby"
	"github.com/opensumi/sumi-site/utils"
	"github.com/rs/zerolog"
)

// SetupRouter serves the resolved configuration and the artifacts derived
// from it. cfg is read-only for the lifetime of the router.
func SetupRouter(cfg *config.SiteConfig, logger zerolog.Logger) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(Custom404Handler)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)
	router.Use(logRequests(logger))

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	router.HandleFunc("/config.json", func(w http.ResponseWriter, r *http.Request) {
		body, err := gatsby.RenderJSON(cfg)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(body)
	}).Methods(http.MethodGet)

	router.HandleFunc("/gatsby-config.js", func(w http.ResponseWriter, r *http.Request) {
		body, err := gatsby.Render(cfg, gatsby.RenderOptions{Minify: r.URL.Query().Get("minify") == "1"})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		w.Write(body)
	}).Methods(http.MethodGet)

	router.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		sitemap, err := utils.GenerateSitemapContent(cfg, time.Now())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.Write([]byte(sitemap))
	}).Methods(http.MethodGet)

	return router
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(logger zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
