package blogfactory

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"webvello.com/site/internal/observability"
)

// ErrSlugCollision reports that a post's slug is already taken.
var ErrSlugCollision = errors.New("blogfactory: slug collision")

// CollisionPolicy decides what happens when a slug already exists.
type CollisionPolicy string

const (
	CollisionSkip      CollisionPolicy = "skip"
	CollisionOverwrite CollisionPolicy = "overwrite"
)

// ParseCollisionPolicy validates a policy name.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch p := CollisionPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case CollisionSkip, CollisionOverwrite:
		return p, nil
	case "":
		return CollisionSkip, nil
	default:
		return "", fmt.Errorf("blogfactory: unknown collision policy %q", s)
	}
}

const (
	DefaultMaxRuntime  = 6 * time.Hour
	DefaultDelay       = 3 * time.Minute
	DefaultMaxPosts    = 1000
	DefaultLogInterval = 5
)

// Config bounds a generation run.
type Config struct {
	MaxRuntime  time.Duration
	Delay       time.Duration
	MaxPosts    int
	LogInterval int
	OnCollision CollisionPolicy
	Year        int
	// BaseURL prefixes the post URL in published events.
	BaseURL string
	// Once stops after a single iteration.
	Once bool
}

func (c Config) withDefaults() Config {
	if c.MaxRuntime <= 0 {
		c.MaxRuntime = DefaultMaxRuntime
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	if c.MaxPosts <= 0 {
		c.MaxPosts = DefaultMaxPosts
	}
	if c.LogInterval <= 0 {
		c.LogInterval = DefaultLogInterval
	}
	if c.OnCollision == "" {
		c.OnCollision = CollisionSkip
	}
	return c
}

// Clock abstracts time so runs can be driven without sleeping.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Outcome is what happened to one generated post.
type Outcome string

const (
	OutcomeWritten     Outcome = "written"
	OutcomeOverwritten Outcome = "overwritten"
	OutcomeSkipped     Outcome = "skipped"
)

// Summary reports a finished run.
type Summary struct {
	RunID       string
	Iterations  int
	Generated   int
	Collisions  int
	Duplicates  int
	Failures    int
	Runtime     time.Duration
	Interrupted bool
	Slugs       []string
}

// PostsPerMinute is the average generation rate over the run.
func (s Summary) PostsPerMinute() float64 {
	minutes := s.Runtime.Minutes()
	if minutes <= 0 {
		return 0
	}
	return float64(s.Generated) / minutes
}

// Option customises a Runner.
type Option func(*Runner)

// WithRegistry records written posts and detects repeated tuples.
func WithRegistry(reg *Registry) Option {
	return func(r *Runner) { r.registry = reg }
}

// WithPublisher announces written posts.
func WithPublisher(p Publisher) Option {
	return func(r *Runner) { r.publisher = p }
}

// WithLogger sets the run logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(r *Runner) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithRand replaces the random source used to pick tuples.
func WithRand(rng *rand.Rand) Option {
	return func(r *Runner) {
		if rng != nil {
			r.rand = rng
		}
	}
}

// Runner is the overnight loop: pick a tuple, compose, write, record, wait.
type Runner struct {
	cfg       Config
	composer  Composer
	sink      Sink
	registry  *Registry
	publisher Publisher
	logger    *zap.Logger
	clock     Clock
	rand      *rand.Rand
	entropy   *ulid.MonotonicEntropy
}

// NewRunner builds a runner writing to sink.
func NewRunner(sink Sink, cfg Config, opts ...Option) (*Runner, error) {
	if sink == nil {
		return nil, errors.New("blogfactory: sink is required")
	}
	cfg = cfg.withDefaults()
	policy, err := ParseCollisionPolicy(string(cfg.OnCollision))
	if err != nil {
		return nil, err
	}
	cfg.OnCollision = policy
	r := &Runner{
		cfg:      cfg,
		composer: Composer{Year: cfg.Year},
		sink:     sink,
		logger:   observability.NoopLogger(),
		clock:    systemClock{},
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.entropy = ulid.Monotonic(r.rand, 0)
	return r, nil
}

// Run loops until MaxRuntime elapses, MaxPosts iterations have run or ctx is
// cancelled. Per-iteration failures are logged and counted; they never stop
// the run. Cancellation ends the run early without an error.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	start := r.clock.Now()
	summary := Summary{RunID: r.newID(start)}
	logger := r.logger.With(zap.String("runId", summary.RunID))
	logger.Info("starting blog generation",
		zap.Duration("maxRuntime", r.cfg.MaxRuntime),
		zap.Duration("delay", r.cfg.Delay),
		zap.Int("maxPosts", r.cfg.MaxPosts),
		zap.String("onCollision", string(r.cfg.OnCollision)),
	)

	keys := TemplateKeys()
loop:
	for r.clock.Now().Sub(start) < r.cfg.MaxRuntime && summary.Iterations < r.cfg.MaxPosts {
		if ctx.Err() != nil {
			summary.Interrupted = true
			break
		}
		summary.Iterations++

		key := keys[r.rand.Intn(len(keys))]
		industry := Industries[r.rand.Intn(len(Industries))]
		service := Services[r.rand.Intn(len(Services))]
		city := Cities[r.rand.Intn(len(Cities))]

		res, err := r.Generate(ctx, key, industry, service, city)
		switch {
		case errors.Is(err, ErrSlugCollision):
			summary.Collisions++
			if res.Duplicate {
				summary.Duplicates++
			}
		case err != nil:
			summary.Failures++
			logger.Error("blog post generation failed",
				zap.String("template", key),
				zap.String("industry", industry),
				zap.String("service", service),
				zap.String("city", city),
				zap.Error(err),
			)
		default:
			if res.Outcome == OutcomeOverwritten {
				summary.Collisions++
			}
			if res.Duplicate {
				summary.Duplicates++
			}
			summary.Generated++
			summary.Slugs = append(summary.Slugs, res.Post.Slug)
			if summary.Generated%r.cfg.LogInterval == 0 {
				logger.Info("generation progress",
					zap.Int("generated", summary.Generated),
					zap.Float64("minutes", r.clock.Now().Sub(start).Minutes()),
				)
			}
		}

		if r.cfg.Once || summary.Iterations >= r.cfg.MaxPosts {
			break
		}
		if r.cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				summary.Interrupted = true
				break loop
			case <-r.clock.After(r.cfg.Delay):
			}
		}
	}

	summary.Runtime = r.clock.Now().Sub(start)
	logger.Info("blog generation complete",
		zap.Int("generated", summary.Generated),
		zap.Int("iterations", summary.Iterations),
		zap.Int("collisions", summary.Collisions),
		zap.Int("duplicates", summary.Duplicates),
		zap.Int("failures", summary.Failures),
		zap.Bool("interrupted", summary.Interrupted),
		zap.Float64("runtimeMinutes", summary.Runtime.Minutes()),
		zap.Float64("postsPerMinute", summary.PostsPerMinute()),
	)
	return summary, nil
}

// Result describes one iteration.
type Result struct {
	Post    Post
	Outcome Outcome
	// Duplicate is set when the tuple was generated by an earlier run.
	Duplicate bool
}

// Generate runs a single iteration for a fixed tuple. A taken slug returns
// ErrSlugCollision under the skip policy and is replaced under overwrite.
func (r *Runner) Generate(ctx context.Context, key, industry, service, city string) (res Result, err error) {
	ctx, span := observability.StartSpan(ctx, "blogfactory.Generate",
		attribute.String("blog.template", key),
		attribute.String("blog.industry", industry),
		attribute.String("blog.service", service),
		attribute.String("blog.city", city),
	)
	defer func() {
		if errors.Is(err, ErrSlugCollision) {
			observability.EndSpan(span, nil)
			return
		}
		observability.EndSpan(span, err)
	}()

	post, err := r.composer.Compose(key, industry, service, city)
	if err != nil {
		return Result{}, err
	}
	now := r.clock.Now()
	post.ID = r.newID(now)
	res.Post = post
	logger := r.logger.With(zap.String("slug", post.Slug))

	if r.registry != nil {
		prior, dup, err := r.registry.TupleSlug(post.Tuple())
		if err != nil {
			return res, err
		}
		if dup {
			res.Duplicate = true
			logger.Info("tuple already generated", zap.String("tuple", post.Tuple().Key()), zap.String("priorSlug", prior))
		}
	}

	taken, err := r.taken(ctx, post.Slug)
	if err != nil {
		return res, err
	}
	res.Outcome = OutcomeWritten
	if taken {
		if r.cfg.OnCollision != CollisionOverwrite {
			logger.Warn("slug collision, skipping", zap.String("policy", string(r.cfg.OnCollision)))
			res.Outcome = OutcomeSkipped
			return res, fmt.Errorf("%w: %s", ErrSlugCollision, post.Slug)
		}
		logger.Warn("slug collision, overwriting", zap.String("policy", string(r.cfg.OnCollision)))
		res.Outcome = OutcomeOverwritten
	}

	doc, err := Render(post, now)
	if err != nil {
		return res, err
	}
	if err := r.sink.Write(ctx, post.Slug, doc); err != nil {
		return res, err
	}

	if r.registry != nil {
		if err := r.registry.Put(Record{
			ID:        post.ID,
			Slug:      post.Slug,
			Title:     post.Title,
			Template:  post.Template,
			Industry:  post.Industry,
			Service:   post.Service,
			City:      post.City,
			CreatedAt: now.UTC().UnixNano(),
		}); err != nil {
			logger.Error("registry write failed", zap.Error(err))
		}
	}
	if r.publisher != nil {
		msg := GeneratedMessage{
			ID:          post.ID,
			Slug:        post.Slug,
			Title:       post.Title,
			Template:    post.Template,
			Industry:    post.Industry,
			Service:     post.Service,
			City:        post.City,
			URL:         strings.TrimRight(r.cfg.BaseURL, "/") + "/blog/" + post.Slug,
			GeneratedAt: now.UTC(),
		}
		if _, err := r.publisher.PublishGenerated(ctx, msg); err != nil {
			logger.Warn("publish generated post failed", zap.Error(err))
		}
	}
	logger.Debug("blog post written", zap.String("outcome", string(res.Outcome)), zap.String("title", post.Title))
	return res, nil
}

func (r *Runner) taken(ctx context.Context, slug string) (bool, error) {
	exists, err := r.sink.Exists(ctx, slug)
	if err != nil || exists {
		return exists, err
	}
	if r.registry == nil {
		return false, nil
	}
	_, found, err := r.registry.Lookup(slug)
	return found, err
}

func (r *Runner) newID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), r.entropy).String()
}
