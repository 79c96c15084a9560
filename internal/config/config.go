package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile        = ".env"
	defaultPort           = "8080"
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultTemplatesDir   = "templates"
	defaultPublicDir      = "public"
	defaultSiteName       = "Web Vello"
	defaultBaseURL        = "https://www.webvello.com"
	defaultPhone          = "+1-530-553-8883"
	defaultEmail          = "hello@webvello.com"
	defaultContentDir     = "content/blog"
	defaultContentTTL     = 5 * time.Minute
	defaultTrustTTL       = 10 * time.Minute
	defaultMaxRuntime     = 6 * time.Hour
	defaultDelay          = 3 * time.Minute
	defaultMaxPosts       = 1000
	defaultLogInterval    = 5
	defaultGeneratorLog   = "overnight-blog-generation.log"
	defaultRegistryPath   = "overnight-blog-registry.db"
	defaultCollision      = "skip"
	defaultSink           = "file"
	defaultPublishedTopic = ""
	defaultLeadsStore     = "data/leads.db"
	defaultLeadsLimit     = 5
	defaultLeadsWindow    = 15 * time.Minute
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Content   ContentConfig
	Trust     TrustConfig
	Generator GeneratorConfig
	PubSub    PubSubConfig
	Leads     LeadsConfig
	Analytics AnalyticsConfig
}

// ServerConfig configures the HTTP server and template locations.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TemplatesDir string
	PublicDir    string
	DevMode      bool
}

// SiteConfig holds the brand details rendered into pages and JSON-LD.
type SiteConfig struct {
	Name    string
	BaseURL string
	Phone   string
	Email   string
}

// ContentConfig points at the markdown blog directory shared with the generator.
type ContentConfig struct {
	Dir      string
	CacheTTL time.Duration
	Watch    bool
}

// TrustConfig configures the optional remote social-proof endpoint.
type TrustConfig struct {
	Endpoint string
	CacheTTL time.Duration
}

// GeneratorConfig drives the overnight blog generator.
type GeneratorConfig struct {
	MaxRuntime   time.Duration
	Delay        time.Duration
	MaxPosts     int
	LogInterval  int
	LogFile      string
	RegistryPath string
	OnCollision  string
	Year         int
	Sink         string
	Bucket       string
}

// PubSubConfig names the topic notified when posts are generated.
type PubSubConfig struct {
	ProjectID string
	Topic     string
}

// LeadsConfig configures contact-form capture. Topic reuses PubSub.ProjectID.
type LeadsConfig struct {
	StorePath  string
	Topic      string
	RateLimit  int
	RateWindow time.Duration
}

// AnalyticsConfig holds client instrumentation ids surfaced to templates.
type AnalyticsConfig struct {
	GA4MeasurementID string
	GTMContainerID   string
	Debug            bool
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
	now          func() time.Time
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.Getenv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// WithClock overrides the clock used to default the generator year.
func WithClock(now func() time.Time) Option {
	return func(o *loaderOptions) {
		o.now = now
	}
}

// Load assembles the application configuration by combining defaults, .env overrides
// and environment variables.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	// Cloud Run injects PORT; WEB_PORT wins when both are set.
	port := stringWithDefault(lookup, "PORT", defaultPort)
	port = stringWithDefault(lookup, "WEB_PORT", port)

	cfg := Config{
		Server: ServerConfig{
			Port:         port,
			ReadTimeout:  durationWithDefault(lookup, "WEB_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "WEB_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "WEB_IDLE_TIMEOUT", defaultIdleTimeout),
			TemplatesDir: stringWithDefault(lookup, "WEB_TEMPLATES_DIR", defaultTemplatesDir),
			PublicDir:    stringWithDefault(lookup, "WEB_PUBLIC_DIR", defaultPublicDir),
			DevMode:      boolWithDefault(lookup, "WEB_DEV", false),
		},
		Site: SiteConfig{
			Name:    stringWithDefault(lookup, "WEB_SITE_NAME", defaultSiteName),
			BaseURL: strings.TrimRight(stringWithDefault(lookup, "WEB_BASE_URL", defaultBaseURL), "/"),
			Phone:   stringWithDefault(lookup, "WEB_SITE_PHONE", defaultPhone),
			Email:   stringWithDefault(lookup, "WEB_SITE_EMAIL", defaultEmail),
		},
		Content: ContentConfig{
			Dir:      stringWithDefault(lookup, "WEB_CONTENT_DIR", defaultContentDir),
			CacheTTL: durationWithDefault(lookup, "WEB_CONTENT_CACHE_TTL", defaultContentTTL),
			Watch:    boolWithDefault(lookup, "WEB_CONTENT_WATCH", true),
		},
		Trust: TrustConfig{
			Endpoint: stringWithDefault(lookup, "WEB_TRUST_ENDPOINT", ""),
			CacheTTL: durationWithDefault(lookup, "WEB_TRUST_CACHE_TTL", defaultTrustTTL),
		},
		Generator: GeneratorConfig{
			MaxRuntime:   durationWithDefault(lookup, "GEN_MAX_RUNTIME", defaultMaxRuntime),
			Delay:        durationWithDefault(lookup, "GEN_DELAY", defaultDelay),
			MaxPosts:     intWithDefault(lookup, "GEN_MAX_POSTS", defaultMaxPosts),
			LogInterval:  intWithDefault(lookup, "GEN_LOG_INTERVAL", defaultLogInterval),
			LogFile:      stringWithDefault(lookup, "GEN_LOG_FILE", defaultGeneratorLog),
			RegistryPath: stringWithDefault(lookup, "GEN_REGISTRY", defaultRegistryPath),
			OnCollision:  strings.ToLower(stringWithDefault(lookup, "GEN_ON_COLLISION", defaultCollision)),
			Year:         intWithDefault(lookup, "GEN_YEAR", options.now().Year()),
			Sink:         strings.ToLower(stringWithDefault(lookup, "GEN_SINK", defaultSink)),
			Bucket:       stringWithDefault(lookup, "GEN_BUCKET", ""),
		},
		PubSub: PubSubConfig{
			ProjectID: stringWithDefault(lookup, "GCP_PROJECT_ID", ""),
			Topic:     stringWithDefault(lookup, "GEN_PUBSUB_TOPIC", defaultPublishedTopic),
		},
		Leads: LeadsConfig{
			StorePath:  stringWithDefault(lookup, "WEB_LEADS_DB", defaultLeadsStore),
			Topic:      stringWithDefault(lookup, "WEB_LEADS_TOPIC", ""),
			RateLimit:  intWithDefault(lookup, "WEB_LEADS_RATE_LIMIT", defaultLeadsLimit),
			RateWindow: durationWithDefault(lookup, "WEB_LEADS_RATE_WINDOW", defaultLeadsWindow),
		},
		Analytics: AnalyticsConfig{
			GA4MeasurementID: stringWithDefault(lookup, "WEB_GA_MEASUREMENT_ID", ""),
			GTMContainerID:   stringWithDefault(lookup, "WEB_GTM_CONTAINER_ID", ""),
			Debug:            boolWithDefault(lookup, "WEB_ANALYTICS_DEBUG", false),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// HTTPS reports whether the public base URL is served over TLS.
func (c SiteConfig) HTTPS() bool {
	return strings.HasPrefix(strings.ToLower(c.BaseURL), "https://")
}

// Addr returns the listen address for the configured port.
func (c ServerConfig) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func validateConfig(cfg Config) error {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "Server.Port")
	}
	if cfg.Site.BaseURL == "" || !strings.HasPrefix(cfg.Site.BaseURL, "http") {
		missing = append(missing, "Site.BaseURL")
	}
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		missing = append(missing, "Content.Dir")
	}
	if cfg.Content.CacheTTL <= 0 {
		missing = append(missing, "Content.CacheTTL")
	}
	if cfg.Generator.MaxRuntime <= 0 {
		missing = append(missing, "Generator.MaxRuntime")
	}
	if cfg.Generator.Delay < 0 {
		missing = append(missing, "Generator.Delay")
	}
	if cfg.Generator.MaxPosts <= 0 {
		missing = append(missing, "Generator.MaxPosts")
	}
	if cfg.Generator.LogInterval <= 0 {
		missing = append(missing, "Generator.LogInterval")
	}
	switch cfg.Generator.OnCollision {
	case "skip", "overwrite":
	default:
		missing = append(missing, "Generator.OnCollision")
	}
	switch cfg.Generator.Sink {
	case "file":
	case "gcs":
		if cfg.Generator.Bucket == "" {
			missing = append(missing, "Generator.Bucket")
		}
	default:
		missing = append(missing, "Generator.Sink")
	}
	if (cfg.PubSub.Topic != "" || cfg.Leads.Topic != "") && cfg.PubSub.ProjectID == "" {
		missing = append(missing, "PubSub.ProjectID")
	}
	if strings.TrimSpace(cfg.Leads.StorePath) == "" {
		missing = append(missing, "Leads.StorePath")
	}
	if cfg.Leads.RateLimit <= 0 {
		missing = append(missing, "Leads.RateLimit")
	}
	if cfg.Leads.RateWindow <= 0 {
		missing = append(missing, "Leads.RateWindow")
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(parts[1]), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
