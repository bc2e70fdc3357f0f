package server

import (
	"bytes"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"form-palette/internal/palette"
	"form-palette/internal/render"
	"form-palette/internal/ui"
)

// Handler serves the palette over HTTP
type Handler struct {
	mux           *http.ServeMux
	limiter       *RateLimiter
	defaultFormat render.Format
	trustProxy    bool
}

// HandlerOption configures a Handler
type HandlerOption func(*Handler)

// WithTrustedProxyHeaders makes X-Forwarded-For and X-Real-IP identify the
// client. Only enable it behind a reverse proxy that overwrites them.
func WithTrustedProxyHeaders(trust bool) HandlerOption {
	return func(h *Handler) {
		h.trustProxy = trust
	}
}

// NewHandler creates a palette handler. Responses use defaultFormat unless
// the request asks for another one with ?format=.
func NewHandler(defaultFormat render.Format, limiter *RateLimiter, opts ...HandlerOption) *Handler {
	if limiter == nil {
		limiter = NewRateLimiter(0)
	}
	h := &Handler{
		mux:           http.NewServeMux(),
		limiter:       limiter,
		defaultFormat: defaultFormat,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.mux.HandleFunc("GET /palette", h.instrument("/palette", h.servePalette))
	h.mux.HandleFunc("GET /palette/{name}", h.instrument("/palette/{name}", h.serveColor))
	h.mux.HandleFunc("GET /palette.css", h.instrument("/palette.css", h.serveCSS))
	h.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	return h
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// instrument applies rate limiting, metrics and request logging to a route
func (h *Handler) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		clientIP := getClientIP(r, h.trustProxy)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		if h.limiter.Allow(clientIP) {
			next(rec, r)
		} else {
			MetricRateLimited.Inc()
			ui.LogStatus("warning", "Rate limited: "+clientIP)
			http.Error(rec, "Too Many Requests", http.StatusTooManyRequests)
		}

		elapsed := time.Since(start)
		MetricRequests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		MetricDuration.Observe(elapsed.Seconds())
		ui.LogRequest(r.Method, r.URL.Path, clientIP, rec.status, elapsed)
	}
}

// requestFormat resolves ?format=, falling back to the handler default
func (h *Handler) requestFormat(r *http.Request) (render.Format, error) {
	q := r.URL.Query().Get("format")
	if q == "" {
		return h.defaultFormat, nil
	}
	return render.ParseFormat(q)
}

func (h *Handler) servePalette(w http.ResponseWriter, r *http.Request) {
	f, err := h.requestFormat(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.write(w, f, palette.All())
}

func (h *Handler) serveColor(w http.ResponseWriter, r *http.Request) {
	name, err := palette.ParseName(r.PathValue("name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	f, err := h.requestFormat(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	MetricLookups.WithLabelValues(name.String()).Inc()
	h.write(w, f, []palette.Entry{{Name: name, Color: palette.MustLookup(name)}})
}

func (h *Handler) serveCSS(w http.ResponseWriter, r *http.Request) {
	h.write(w, render.FormatCSS, palette.All())
}

// write renders into a buffer first so encoding errors become a clean 500.
// HTTP bodies never carry terminal escape codes.
func (h *Handler) write(w http.ResponseWriter, f render.Format, entries []palette.Entry) {
	var buf bytes.Buffer
	if err := render.WritePlain(&buf, f, entries); err != nil {
		ui.LogStatus("error", "Render failed: "+err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	// The palette never changes while the process runs
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// getClientIP extracts the client IP from request. Forwarding headers are
// client-controlled, so they are consulted only when trustProxy is set.
func getClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		// Take the first IP in the chain
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			parts := strings.Split(forwarded, ",")
			return strings.TrimSpace(parts[0])
		}
		if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
			return realIP
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
