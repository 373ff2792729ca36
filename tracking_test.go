package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

func TestHashIPStable(t *testing.T) {
	tracker, err := newVisitTracker(hclog.NewNullLogger())
	if err != nil {
		t.Fatalf("newVisitTracker: %v", err)
	}

	a := tracker.hashIP("203.0.113.7")
	if a != tracker.hashIP("203.0.113.7") {
		t.Errorf("hash should be stable within a process")
	}
	if len(a) != 16 {
		t.Errorf("expected 16 hex chars, got %q", a)
	}
	if a == tracker.hashIP("203.0.113.8") {
		t.Errorf("different IPs should hash differently")
	}

	other, _ := newVisitTracker(hclog.NewNullLogger())
	if other.hashIP("203.0.113.7") == a {
		t.Errorf("salt should differ between trackers")
	}
}

func TestSkipTracking(t *testing.T) {
	for path, want := range map[string]bool{
		"/static/site.css":  true,
		"/favicon.ico":      true,
		"/healthz":          true,
		"/":                 false,
		"/section/projects": false,
	} {
		if got := skipTracking(path); got != want {
			t.Errorf("skipTracking(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestTrackingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Info})
	tracker, err := newVisitTracker(logger)
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.Use(tracker.middleware())
	r.GET("/*path", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve := func(path string, dnt bool) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "198.51.100.4:1234"
		if dnt {
			req.Header.Set("DNT", "1")
		}
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	serve("/", false)
	serve("/static/site.css", false)
	serve("/section/about", true)

	out := buf.String()
	if n := strings.Count(out, "visit:"); n != 1 {
		t.Fatalf("expected exactly one visit line, got %d:\n%s", n, out)
	}
	if strings.Contains(out, "198.51.100.4") {
		t.Errorf("raw IP must not be logged")
	}
	if !strings.Contains(out, tracker.hashIP("198.51.100.4")) {
		t.Errorf("expected hashed visitor id in log")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Port != "8080" || cfg.StaticDir != "./static" || !cfg.TrackVisitors {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("TRACK_VISITORS", "false")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Port != "9090" || !cfg.LogJSON || cfg.TrackVisitors {
		t.Errorf("unexpected config %+v", cfg)
	}

	t.Setenv("LOG_JSON", "maybe")
	if _, err := loadConfig(); err == nil {
		t.Errorf("expected parse error for bad bool")
	}
}

func TestLocaleFromEnv(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "zh_CN.UTF-8")
	if got := localeFromEnv(); got != "zh-CN" {
		t.Errorf("got %q", got)
	}
	t.Setenv("LANG", "C")
	if got := localeFromEnv(); got != "" {
		t.Errorf("got %q", got)
	}
}
