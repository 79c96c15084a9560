package trust

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"webvello.com/site/internal/observability"
)

const (
	defaultRemoteTTL = 10 * time.Minute
	failureBackoff   = 30 * time.Second
)

// payload is the document served by the social-proof endpoint.
type payload struct {
	Testimonials []Testimonial `json:"testimonials"`
	Reviews      []Review      `json:"reviews"`
	Badges       []Badge       `json:"badges"`
	ClientLogos  []ClientLogo  `json:"clientLogos"`
}

// RemoteProvider fetches social proof from a JSON endpoint, caches it for a TTL
// and serves the fallback provider whenever the endpoint fails.
type RemoteProvider struct {
	endpoint string
	client   *resty.Client
	fallback Provider
	ttl      time.Duration
	now      func() time.Time

	mu      sync.Mutex
	cached  payload
	failed  bool
	expires time.Time
}

// RemoteOption customises a RemoteProvider.
type RemoteOption func(*RemoteProvider)

// WithTTL sets how long a successful fetch is reused.
func WithTTL(d time.Duration) RemoteOption {
	return func(p *RemoteProvider) {
		if d > 0 {
			p.ttl = d
		}
	}
}

// WithFallback replaces the static fallback.
func WithFallback(fb Provider) RemoteOption {
	return func(p *RemoteProvider) {
		if fb != nil {
			p.fallback = fb
		}
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) RemoteOption {
	return func(p *RemoteProvider) {
		if now != nil {
			p.now = now
		}
	}
}

// NewRemoteProvider builds a provider for endpoint. An empty endpoint serves the
// fallback exclusively.
func NewRemoteProvider(endpoint string, opts ...RemoteOption) *RemoteProvider {
	p := &RemoteProvider{
		endpoint: strings.TrimSpace(endpoint),
		client: resty.New().
			SetTimeout(5*time.Second).
			SetRetryCount(1).
			SetHeader("Accept", "application/json"),
		fallback: StaticProvider{},
		ttl:      defaultRemoteTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ Provider = (*RemoteProvider)(nil)

func (p *RemoteProvider) load(ctx context.Context) (payload, bool) {
	if p.endpoint == "" {
		return payload{}, false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.now().Before(p.expires) {
		return p.cached, !p.failed
	}

	doc, err := p.fetch(ctx)
	if err != nil {
		observability.FromContext(ctx).Warn("trust: remote fetch failed, serving fallback",
			zap.String("endpoint", p.endpoint),
			zap.Error(err),
		)
		p.cached, p.failed = payload{}, true
		p.expires = p.now().Add(min(p.ttl, failureBackoff))
		return payload{}, false
	}
	p.cached, p.failed = doc, false
	p.expires = p.now().Add(p.ttl)
	return doc, true
}

func (p *RemoteProvider) fetch(ctx context.Context) (payload, error) {
	var doc payload
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&doc).
		Get(p.endpoint)
	if err != nil {
		return payload{}, fmt.Errorf("trust: fetch %s: %w", p.endpoint, err)
	}
	if resp.IsError() {
		return payload{}, fmt.Errorf("trust: remote status %d", resp.StatusCode())
	}
	return doc, nil
}

// Testimonials returns the remote testimonials, or the fallback's when none were fetched.
func (p *RemoteProvider) Testimonials(ctx context.Context) ([]Testimonial, error) {
	if doc, ok := p.load(ctx); ok && len(doc.Testimonials) > 0 {
		return append([]Testimonial(nil), doc.Testimonials...), nil
	}
	return p.fallback.Testimonials(ctx)
}

// Reviews returns the remote review platform summaries, or the fallback's when none were fetched.
func (p *RemoteProvider) Reviews(ctx context.Context) ([]Review, error) {
	if doc, ok := p.load(ctx); ok && len(doc.Reviews) > 0 {
		return append([]Review(nil), doc.Reviews...), nil
	}
	return p.fallback.Reviews(ctx)
}

// Badges returns the remote trust badges, or the fallback's when none were fetched.
func (p *RemoteProvider) Badges(ctx context.Context) ([]Badge, error) {
	if doc, ok := p.load(ctx); ok && len(doc.Badges) > 0 {
		return append([]Badge(nil), doc.Badges...), nil
	}
	return p.fallback.Badges(ctx)
}

// ClientLogos returns the remote client logos, or the fallback's when none were fetched.
func (p *RemoteProvider) ClientLogos(ctx context.Context) ([]ClientLogo, error) {
	if doc, ok := p.load(ctx); ok && len(doc.ClientLogos) > 0 {
		return append([]ClientLogo(nil), doc.ClientLogos...), nil
	}
	return p.fallback.ClientLogos(ctx)
}
