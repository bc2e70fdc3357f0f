package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"form-palette/internal/render"
	"form-palette/internal/ui"
)

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPaletteJSON(t *testing.T) {
	h := NewHandler(render.FormatJSON, nil)
	rec := get(t, h, "/palette")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc render.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Len(t, doc.Colors, 6)
	assert.Equal(t, "default-apple-gray", doc.Colors[0].Name)
	assert.Equal(t, "shadow-purple", doc.Colors[5].Name)
}

func TestPaletteFormatQuery(t *testing.T) {
	h := NewHandler(render.FormatJSON, nil)

	rec := get(t, h, "/palette?format=hex")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "placeholder-purple #9933ccff\n")

	rec = get(t, h, "/palette?format=yaml")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSingleColor(t *testing.T) {
	h := NewHandler(render.FormatHex, nil)
	before := testutil.ToFloat64(MetricLookups.WithLabelValues("border-purple"))

	rec := get(t, h, "/palette/borderPurple")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "border-purple #663399ff\n", rec.Body.String())
	assert.Equal(t, before+1, testutil.ToFloat64(MetricLookups.WithLabelValues("border-purple")))

	rec = get(t, h, "/palette/hot-pink")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCSSRoute(t *testing.T) {
	h := NewHandler(render.FormatJSON, nil)
	rec := get(t, h, "/palette.css")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), ":root {"))
	assert.Contains(t, rec.Body.String(), "--deep-pink-purple:")
}

func TestHealthz(t *testing.T) {
	rec := get(t, NewHandler(render.FormatJSON, nil), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	h := NewHandler(render.FormatJSON, nil)
	req := httptest.NewRequest(http.MethodPost, "/palette", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRateLimitedRequests(t *testing.T) {
	h := NewHandler(render.FormatJSON, NewRateLimiter(1)) // burst of 10
	before := testutil.ToFloat64(MetricRateLimited)

	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, get(t, h, "/palette").Code, "request %d", i)
	}
	rec := get(t, h, "/palette")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(MetricRateLimited))

	// a different peer has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/palette", nil)
	req.RemoteAddr = "198.51.100.20:4000"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitIgnoresForwardedHeadersByDefault(t *testing.T) {
	h := NewHandler(render.FormatJSON, NewRateLimiter(1))

	limited := 0
	for i := 0; i < 100; i++ {
		req := httptest.NewRequest(http.MethodGet, "/palette", nil)
		req.RemoteAddr = "192.0.2.50:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.1.%d.%d", i/256, i%256))
		req.Header.Set("X-Real-IP", fmt.Sprintf("10.2.%d.%d", i/256, i%256))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 90, limited)
}

func TestRateLimitTrustedProxyHeaders(t *testing.T) {
	h := NewHandler(render.FormatJSON, NewRateLimiter(1), WithTrustedProxyHeaders(true))

	send := func(xff string) int {
		req := httptest.NewRequest(http.MethodGet, "/palette", nil)
		req.RemoteAddr = "10.0.0.1:8000"
		req.Header.Set("X-Forwarded-For", xff)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, send("203.0.113.9"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.9, 10.0.0.1"))
	// same proxy, different forwarded client
	assert.Equal(t, http.StatusOK, send("203.0.113.10"))
}

func TestTextFormatsHaveNoEscapeCodes(t *testing.T) {
	ui.SetRich(true)
	defer ui.SetRich(false)

	h := NewHandler(render.FormatText, nil)
	for _, target := range []string{"/palette", "/palette?format=text", "/palette?format=swatch", "/palette/shadow-purple?format=swatch"} {
		rec := get(t, h, target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.NotContains(t, rec.Body.String(), "\x1b", target)
		assert.Contains(t, rec.Body.String(), "▓", target)
	}
}

func TestRequestMetrics(t *testing.T) {
	h := NewHandler(render.FormatJSON, nil)
	c := MetricRequests.WithLabelValues("/palette/{name}", "404")
	before := testutil.ToFloat64(c)

	get(t, h, "/palette/nope")
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	assert.Equal(t, "192.0.2.1", getClientIP(req, false))
	assert.Equal(t, "192.0.2.1", getClientIP(req, true))

	req.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "192.0.2.1", getClientIP(req, false))
	assert.Equal(t, "198.51.100.7", getClientIP(req, true))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "192.0.2.1", getClientIP(req, false))
	assert.Equal(t, "203.0.113.9", getClientIP(req, true))
}
