package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTMXMarksFragmentRequests(t *testing.T) {
	var seen HTMXRequest
	var partial bool
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = HTMXFromContext(r.Context())
		partial = IsHTMX(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/partials/testimonials?i=2", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "testimonials")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.True(t, partial)
	require.Equal(t, "testimonials", seen.Target)
	require.Contains(t, rr.Header().Values("Vary"), "HX-Request")

	req = httptest.NewRequest(http.MethodGet, "/services", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Boosted", "true")
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.False(t, partial)
}

func TestAssetsWithCacheETag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{margin:0}"), 0o644))

	h := AssetsWithCache(dir, false)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "body{margin:0}", rr.Body.String())
	require.Equal(t, assetCacheControl, rr.Header().Get("Cache-Control"))
	etag := rr.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotModified, rr.Code)
}

func TestAssetsWithCacheDevMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.js")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	h := AssetsWithCache(dir, true)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets/app.js", nil))
	first := rr.Header().Get("ETag")
	require.Equal(t, devCacheControl, rr.Header().Get("Cache-Control"))

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets/app.js", nil))
	require.NotEqual(t, first, rr.Header().Get("ETag"))
}

func TestRedirects(t *testing.T) {
	h := Redirects(LegacyRedirects)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	cases := []struct {
		path string
		code int
		loc  string
	}{
		{"/", http.StatusTeapot, ""},
		{"/about-us", http.StatusMovedPermanently, "/about"},
		{"/blog/", http.StatusMovedPermanently, "/blog"},
		{"/services/web-design/", http.StatusMovedPermanently, "/services/website-design"},
		{"/news?page=2", http.StatusMovedPermanently, "/blog?page=2"},
		{"/services/seo", http.StatusTeapot, ""},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.Equal(t, tc.code, rr.Code, tc.path)
		require.Equal(t, tc.loc, rr.Header().Get("Location"), tc.path)
	}
}

func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders(true)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	require.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	require.Contains(t, rr.Header().Get("Content-Security-Policy"), "frame-ancestors 'none'")
	require.NotEmpty(t, rr.Header().Get("Strict-Transport-Security"))

	h = SecurityHeaders(false)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Empty(t, rr.Header().Get("Strict-Transport-Security"))
}

func TestWriteErrorForHTMX(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/partials/nav/unknown", nil)
	req = req.WithContext(WithHTMX(req.Context(), HTMXRequest{Target: "nav"}))
	rr := httptest.NewRecorder()
	WriteError(rr, req, http.StatusNotFound, "not found")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "none", rr.Header().Get("HX-Reswap"))
	require.JSONEq(t, `{"site:error":{"status":404}}`, rr.Header().Get("HX-Trigger"))
}

func TestCSRFIssuesTokenOnSafeRequests(t *testing.T) {
	var token string
	h := CSRF(true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = CSRFToken(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/contact", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, csrfCookieName, cookies[0].Name)
	require.Equal(t, token, cookies[0].Value)
	require.True(t, cookies[0].Secure)
	require.Len(t, token, 32)

	// An existing cookie is reused, not rotated.
	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req.AddCookie(cookies[0])
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Empty(t, rr.Result().Cookies())
	require.Equal(t, cookies[0].Value, token)
}

func TestCSRFRejectsMismatchedTokens(t *testing.T) {
	called := false
	h := CSRF(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	const good = "00112233445566778899aabbccddeeff"
	cookie := &http.Cookie{Name: csrfCookieName, Value: good}

	post := func(body string, header string, withCookie bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if header != "" {
			req.Header.Set(CSRFHeader, header)
		}
		if withCookie {
			req.AddCookie(cookie)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	require.Equal(t, http.StatusForbidden, post("name=x", "", true).Code)
	require.Equal(t, http.StatusForbidden, post("csrf_token="+good, "", false).Code)
	require.Equal(t, http.StatusForbidden, post("csrf_token=ffeeddccbbaa99887766554433221100", "", true).Code)
	require.False(t, called)

	require.Equal(t, http.StatusOK, post("csrf_token="+good, "", true).Code)
	require.True(t, called)

	called = false
	require.Equal(t, http.StatusOK, post("name=x", good, true).Code)
	require.True(t, called)
}

func TestCSRFRejectionForHTMXKeepsFragment(t *testing.T) {
	h := HTMX(CSRF(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})))
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, "none", rr.Header().Get("HX-Reswap"))
	require.Contains(t, rr.Header().Get("HX-Trigger"), "403")
}
