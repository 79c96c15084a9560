package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""), WithClock(fixedClock))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Addr() != ":8080" {
		t.Errorf("unexpected addr %s", cfg.Server.Addr())
	}
	if cfg.Site.BaseURL != defaultBaseURL {
		t.Errorf("unexpected base url %s", cfg.Site.BaseURL)
	}
	if cfg.Content.CacheTTL != 5*time.Minute {
		t.Errorf("unexpected content ttl %s", cfg.Content.CacheTTL)
	}
	if cfg.Content.Dir != "content/blog" {
		t.Errorf("unexpected content dir %s", cfg.Content.Dir)
	}
	if !cfg.Site.HTTPS() {
		t.Errorf("expected default base url to be https")
	}
	if !cfg.Content.Watch {
		t.Errorf("expected content watch enabled by default")
	}
	if cfg.Generator.MaxRuntime != 6*time.Hour {
		t.Errorf("unexpected max runtime %s", cfg.Generator.MaxRuntime)
	}
	if cfg.Generator.Delay != 3*time.Minute {
		t.Errorf("unexpected delay %s", cfg.Generator.Delay)
	}
	if cfg.Generator.MaxPosts != 1000 {
		t.Errorf("unexpected max posts %d", cfg.Generator.MaxPosts)
	}
	if cfg.Generator.LogInterval != 5 {
		t.Errorf("unexpected log interval %d", cfg.Generator.LogInterval)
	}
	if cfg.Generator.LogFile != "overnight-blog-generation.log" {
		t.Errorf("unexpected log file %s", cfg.Generator.LogFile)
	}
	if cfg.Generator.OnCollision != "skip" {
		t.Errorf("expected skip collision policy, got %s", cfg.Generator.OnCollision)
	}
	if cfg.Generator.Year != 2025 {
		t.Errorf("expected year from clock, got %d", cfg.Generator.Year)
	}
	if cfg.Leads.StorePath != "data/leads.db" || cfg.Leads.Topic != "" {
		t.Errorf("unexpected leads config %+v", cfg.Leads)
	}
	if cfg.Leads.RateLimit != 5 || cfg.Leads.RateWindow != 15*time.Minute {
		t.Errorf("unexpected leads rate %d per %s", cfg.Leads.RateLimit, cfg.Leads.RateWindow)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"PORT":             "9000",
		"WEB_PORT":         "9090",
		"WEB_BASE_URL":     "https://staging.webvello.com/",
		"WEB_DEV":          "yes",
		"WEB_CONTENT_DIR":  "/srv/content",
		"GEN_MAX_RUNTIME":  "30m",
		"GEN_DELAY":        "10s",
		"GEN_MAX_POSTS":    "25",
		"GEN_ON_COLLISION": "OVERWRITE",
		"GEN_YEAR":         "2024",
		"GEN_SINK":         "gcs",
		"GEN_BUCKET":       "webvello-content",
		"GCP_PROJECT_ID":   "webvello-prod",
		"GEN_PUBSUB_TOPIC": "posts",
	}

	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected WEB_PORT to win, got %s", cfg.Server.Port)
	}
	if cfg.Site.BaseURL != "https://staging.webvello.com" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Site.BaseURL)
	}
	if !cfg.Server.DevMode {
		t.Errorf("expected dev mode")
	}
	if cfg.Content.Dir != "/srv/content" {
		t.Errorf("unexpected content dir %s", cfg.Content.Dir)
	}
	if cfg.Generator.MaxRuntime != 30*time.Minute || cfg.Generator.Delay != 10*time.Second {
		t.Errorf("unexpected generator timings %s/%s", cfg.Generator.MaxRuntime, cfg.Generator.Delay)
	}
	if cfg.Generator.MaxPosts != 25 {
		t.Errorf("unexpected max posts %d", cfg.Generator.MaxPosts)
	}
	if cfg.Generator.OnCollision != "overwrite" {
		t.Errorf("expected overwrite policy, got %s", cfg.Generator.OnCollision)
	}
	if cfg.Generator.Year != 2024 {
		t.Errorf("unexpected year %d", cfg.Generator.Year)
	}
	if cfg.Generator.Sink != "gcs" || cfg.Generator.Bucket != "webvello-content" {
		t.Errorf("unexpected sink config %+v", cfg.Generator)
	}
	if cfg.PubSub.Topic != "posts" || cfg.PubSub.ProjectID != "webvello-prod" {
		t.Errorf("unexpected pubsub config %+v", cfg.PubSub)
	}
}

func TestLoadValidation(t *testing.T) {
	env := map[string]string{
		"WEB_BASE_URL":     "webvello.com",
		"GEN_ON_COLLISION": "rename",
		"GEN_SINK":         "gcs",
		"GEN_PUBSUB_TOPIC": "posts",
		"GEN_MAX_POSTS":    "0",
	}

	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""), WithClock(fixedClock))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	want := map[string]bool{
		"Site.BaseURL":          true,
		"Generator.OnCollision": true,
		"Generator.Bucket":      true,
		"PubSub.ProjectID":      true,
		"Generator.MaxPosts":    true,
	}
	fields := verr.Fields()
	if len(fields) != len(want) {
		t.Fatalf("unexpected fields %v", fields)
	}
	for _, f := range fields {
		if !want[f] {
			t.Errorf("unexpected field %s", f)
		}
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# local overrides\nexport WEB_SITE_NAME=\"Web Vello Staging\"\nGEN_DELAY=1s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := Load(WithEnvFile(path), WithoutSystemEnv(), WithEnvMap(map[string]string{"GEN_DELAY": "2s"}), WithClock(fixedClock))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.Name != "Web Vello Staging" {
		t.Errorf("expected name from .env, got %s", cfg.Site.Name)
	}
	if cfg.Generator.Delay != 2*time.Second {
		t.Errorf("expected env map to override .env, got %s", cfg.Generator.Delay)
	}
}

func TestLoadLeadsValidation(t *testing.T) {
	env := map[string]string{
		"WEB_LEADS_TOPIC":      "leads",
		"WEB_LEADS_RATE_LIMIT": "-1",
	}

	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""), WithClock(fixedClock))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := verr.Fields()
	if len(fields) != 2 || fields[0] != "PubSub.ProjectID" || fields[1] != "Leads.RateLimit" {
		t.Fatalf("unexpected fields %v", fields)
	}

	env["GCP_PROJECT_ID"] = "webvello-prod"
	env["WEB_LEADS_RATE_LIMIT"] = "10"
	env["WEB_LEADS_RATE_WINDOW"] = "1h"
	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""), WithClock(fixedClock))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Leads.Topic != "leads" || cfg.Leads.RateLimit != 10 || cfg.Leads.RateWindow != time.Hour {
		t.Errorf("unexpected leads config %+v", cfg.Leads)
	}
}
