package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/train-booking-api/internal/config"
)

func cacheTestConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		TTL:          time.Minute,
		Prefix:       "cache",
		MaxBodyBytes: 1024,
	}
}

// serveCached runs a GET through the cache middleware into a counting
// handler so tests can tell whether the handler was reached.
func serveCached(mw echo.MiddlewareFunc, hits *int) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/api/promotions", func(c echo.Context) error {
		*hits++
		return c.JSON(http.StatusOK, []string{"weekend deal"})
	}, mw)

	req := httptest.NewRequest(http.MethodGet, "/api/promotions", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCacheDisabledIsPassThrough(t *testing.T) {
	cfg := cacheTestConfig()
	cfg.Enabled = false

	hits := 0
	rec := serveCached(NewResponseCache(cfg, nil), &hits)
	if rec.Code != http.StatusOK || hits != 1 {
		t.Fatalf("got code %d, hits %d; want 200 and 1", rec.Code, hits)
	}
}

func TestCacheWithoutRedisIsPassThrough(t *testing.T) {
	hits := 0
	rec := serveCached(NewResponseCache(cacheTestConfig(), nil), &hits)
	if rec.Code != http.StatusOK || hits != 1 {
		t.Fatalf("got code %d, hits %d; want 200 and 1", rec.Code, hits)
	}
}

func TestCacheUnreachableRedisFallsBackToHandler(t *testing.T) {
	// A client nothing listens on: every Get/Set errors at request time
	// and the middleware must still serve the handler's response.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer rdb.Close()

	hits := 0
	mw := NewResponseCache(cacheTestConfig(), rdb)
	for i := 0; i < 2; i++ {
		rec := serveCached(mw, &hits)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: got %d, want 200", i, rec.Code)
		}
	}
	if hits != 2 {
		t.Fatalf("handler hits = %d, want 2 (no caching without redis)", hits)
	}
}

func TestCaptureWriterRecordsBodyAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 16}

	cw.WriteHeader(http.StatusNotFound)
	if _, err := cw.Write([]byte("short")); err != nil {
		t.Fatal(err)
	}
	if cw.status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", cw.status)
	}
	if cw.buf.String() != "short" {
		t.Fatalf("buffered %q, want %q", cw.buf.String(), "short")
	}
	if rec.Body.String() != "short" {
		t.Fatal("body must still reach the client")
	}
}

func TestCaptureWriterDropsOversizedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}

	if _, err := cw.Write([]byte("longer than the cap")); err != nil {
		t.Fatal(err)
	}
	if cw.buf.Len() != 0 {
		t.Fatalf("oversized body must not be buffered, got %q", cw.buf.String())
	}
	if rec.Body.String() != "longer than the cap" {
		t.Fatal("client response must be unaffected by the cap")
	}
}

func TestCacheKeyVariesWithQuery(t *testing.T) {
	e := echo.New()
	ctxFor := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/api/trains/search")
		return c
	}

	a := cacheKey("cache", ctxFor("/api/trains/search?from=Moscow"))
	b := cacheKey("cache", ctxFor("/api/trains/search?from=Kazan"))
	if a == b {
		t.Fatal("different queries must map to different keys")
	}
	if again := cacheKey("cache", ctxFor("/api/trains/search?from=Moscow")); again != a {
		t.Fatal("same route and query must map to the same key")
	}
}
