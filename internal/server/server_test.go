package server

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/json"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/mattbratos/warhol/www/internal/config"
	"github.com/mattbratos/warhol/www/internal/utils/ioutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, configYaml string) *SiteServer {
	cfg, err := config.ParseConfig([]byte(configYaml))
	require.NoError(t, err)
	s, err := NewSiteServer(cfg)
	require.NoError(t, err)
	t.Cleanup(s.Shutdown)
	return s
}

func doRequest(s *SiteServer, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	return w
}

// decodeBody decodes with the reference decoders, so the wire format is checked as a client sees it
func decodeBody(t *testing.T, body []byte, encoding string) string {
	var reader io.Reader
	switch encoding {
	case ioutils.EncodingGzip:
		gz, err := gzip.NewReader(bytes.NewReader(body))
		require.NoError(t, err)
		reader = gz
	case ioutils.EncodingDeflate:
		zr, err := zlib.NewReader(bytes.NewReader(body))
		require.NoError(t, err)
		reader = zr
	case ioutils.EncodingBrotli:
		reader = brotli.NewReader(bytes.NewReader(body))
	case ioutils.EncodingZstd:
		zr, err := zstd.NewReader(bytes.NewReader(body))
		require.NoError(t, err)
		defer zr.Close()
		reader = zr
	default:
		reader = bytes.NewReader(body)
	}
	decoded, err := io.ReadAll(reader)
	require.NoError(t, err)
	return string(decoded)
}

func TestHomePage(t *testing.T) {
	s := newTestServer(t, "")

	w := doRequest(s, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.NotEmpty(t, w.Header().Get("ETag"))
	assert.Equal(t, "Accept-Encoding", w.Header().Get("Vary"))

	body := w.Body.String()
	assert.Contains(t, body, `<h1 class="home-title">warhol</h1>`)
	assert.Contains(t, body, "A CLI for generating images in a consistent visual style.")
	assert.Contains(t, body, `href="/docs/getting-started"`)
	assert.Contains(t, body, `href="/docs/cli"`)
	assert.Contains(t, body, `href="https://github.com/mattbratos/warhol"`)
}

func TestHomeLinksAreServed(t *testing.T) {
	s := newTestServer(t, "")

	for _, path := range []string{"/docs/getting-started", "/docs/cli", "/docs/profiles", "/docs/cli/"} {
		w := doRequest(s, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `aria-current="page"`, path)
	}
}

func TestHomeHeadingIgnoresConfiguredTitle(t *testing.T) {
	s := newTestServer(t, "site: {title: mirror}")

	w := doRequest(s, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<h1 class="home-title">warhol</h1>`)
	assert.NotContains(t, w.Body.String(), `<h1 class="home-title">mirror</h1>`)
}

func TestDocsRedirect(t *testing.T) {
	s := newTestServer(t, "")

	w := doRequest(s, http.MethodGet, "/docs", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/docs/getting-started", w.Header().Get("Location"))
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t, "")

	for _, path := range []string{"/docs/nope", "/nope", "/apiary"} {
		w := doRequest(s, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "Not Found", path)
	}

	w := doRequest(s, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Not Found"}`, w.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, "")

	for _, path := range []string{"/", "/api/layout", "/static/site.css"} {
		w := doRequest(s, http.MethodPost, path, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, path)
	}
}

func TestHeadRequest(t *testing.T) {
	s := newTestServer(t, "")

	w := doRequest(s, http.MethodHead, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("Content-Length"))
	assert.Empty(t, w.Body.Bytes())
}

func TestCompression(t *testing.T) {
	s := newTestServer(t, "compression: {min_size: 0}")

	plain := doRequest(s, http.MethodGet, "/docs/cli", nil)
	require.Equal(t, http.StatusOK, plain.Code)

	for _, encoding := range ioutils.SupportedEncodings {
		t.Run(encoding, func(t *testing.T) {
			w := doRequest(s, http.MethodGet, "/docs/cli", map[string]string{"Accept-Encoding": encoding})
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, encoding, w.Header().Get("Content-Encoding"))
			assert.NotEqual(t, plain.Header().Get("ETag"), w.Header().Get("ETag"))

			assert.Equal(t, plain.Body.String(), decodeBody(t, w.Body.Bytes(), encoding))
		})
	}
}

func TestCompressionDisabled(t *testing.T) {
	s := newTestServer(t, "compression: {enabled: false}")

	w := doRequest(s, http.MethodGet, "/", map[string]string{"Accept-Encoding": "gzip, br"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Contains(t, w.Body.String(), "warhol")
}

func TestETagNotModified(t *testing.T) {
	s := newTestServer(t, "")

	w := doRequest(s, http.MethodGet, "/docs/getting-started", nil)
	require.Equal(t, http.StatusOK, w.Code)
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)

	w = doRequest(s, http.MethodGet, "/docs/getting-started", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = doRequest(s, http.MethodGet, "/docs/getting-started", map[string]string{"If-None-Match": `"stale"`})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLayoutApi(t *testing.T) {
	s := newTestServer(t, "")

	w := doRequest(s, http.MethodGet, "/api/layout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"nav":{"title":"warhol"},"githubUrl":"https://github.com/mattbratos/warhol"}`, w.Body.String())
}

func TestLayoutApiFollowsConfig(t *testing.T) {
	s := newTestServer(t, "site: {title: docs, git: {user: someone, repo: fork}}")

	w := doRequest(s, http.MethodGet, "/api/layout/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"nav":{"title":"docs"},"githubUrl":"https://github.com/someone/fork"}`, w.Body.String())
}

func TestDocsApi(t *testing.T) {
	s := newTestServer(t, "")

	w := doRequest(s, http.MethodGet, "/api/docs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "getting-started", entries[0]["slug"])
	assert.Equal(t, "/docs/getting-started", entries[0]["path"])
	assert.True(t, strings.HasPrefix(entries[0]["editUrl"], "https://github.com/mattbratos/warhol/blob/main/"))
	assert.Equal(t, "/docs/cli", entries[1]["path"])
}

func TestStatic(t *testing.T) {
	s := newTestServer(t, "")

	w := doRequest(s, http.MethodGet, "/static/site.css", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
	assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))

	for _, path := range []string{"/static/", "/static", "/static/missing.js", "/static/../go.mod"} {
		w = doRequest(s, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"), path)
		assert.Contains(t, w.Body.String(), "Not Found", path)
		assert.Empty(t, w.Header().Get("Cache-Control"), path)
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, "")

	w := doRequest(s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, "resource_limit: {request_per_minute: 2}")

	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(s, http.MethodGet, "/healthz", nil).Code)
}

func TestRateLimitPerClientBehindTrustedProxy(t *testing.T) {
	s := newTestServer(t, `
server: {trusted_proxy_ips: ["192.0.2.0/24"]}
resource_limit: {request_per_minute: 1}
`)
	// httptest requests come from 192.0.2.1
	clientA := map[string]string{"X-Forwarded-For": "203.0.113.1"}
	clientB := map[string]string{"X-Forwarded-For": "203.0.113.2"}

	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodGet, "/healthz", clientA).Code)
	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodGet, "/healthz", clientB).Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(s, http.MethodGet, "/healthz", clientA).Code)
}

func TestUntrustedProxyHeaderIgnored(t *testing.T) {
	s := newTestServer(t, "resource_limit: {request_per_minute: 1}")

	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodGet, "/healthz", map[string]string{"X-Forwarded-For": "203.0.113.1"}).Code)
	// a spoofed header does not give a fresh bucket
	assert.Equal(t, http.StatusTooManyRequests, doRequest(s, http.MethodGet, "/healthz", map[string]string{"X-Forwarded-For": "203.0.113.2"}).Code)
}

func TestCreateRequestContext(t *testing.T) {
	s := newTestServer(t, `server: {trusted_proxy_ips: ["*"]}`)

	r := httptest.NewRequest(http.MethodGet, "http://docs.example.com:8010/", nil)
	r.Header.Set("CF-Connecting-IP", "198.51.100.7")
	ctx := s.createRequestContext(r)
	assert.Equal(t, "docs.example.com", ctx.Host)
	assert.Equal(t, "198.51.100.7", ctx.ClientAddr)
	assert.Len(t, ctx.RequestId, 10)
}
