package blogfactory

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// After advances the clock by d and fires immediately.
func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

type recordingPublisher struct {
	mu       sync.Mutex
	messages []GeneratedMessage
	err      error
}

func (p *recordingPublisher) PublishGenerated(_ context.Context, msg GeneratedMessage) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return "", p.err
	}
	p.messages = append(p.messages, msg)
	return msg.ID, nil
}

func newTestRunner(t *testing.T, sink Sink, cfg Config, opts ...Option) *Runner {
	t.Helper()
	opts = append([]Option{WithClock(newFakeClock()), WithRand(rand.New(rand.NewSource(1)))}, opts...)
	r, err := NewRunner(sink, cfg, opts...)
	require.NoError(t, err)
	return r
}

func TestRunStopsAtMaxRuntime(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sink := NewMemorySink()
	cfg := Config{MaxRuntime: 10 * time.Minute, Delay: 3 * time.Minute, OnCollision: CollisionOverwrite}
	summary, err := newTestRunner(t, sink, cfg).Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 4, summary.Iterations)
	require.LessOrEqual(t, summary.Iterations, int(cfg.MaxRuntime/cfg.Delay)+1)
	require.Equal(t, 4, summary.Generated)
	require.Equal(t, 12*time.Minute, summary.Runtime)
	require.NotEmpty(t, summary.RunID)
}

func TestRunStopsAtMaxPosts(t *testing.T) {
	sink := NewMemorySink()
	cfg := Config{MaxRuntime: 6 * time.Hour, Delay: time.Minute, MaxPosts: 7, OnCollision: CollisionOverwrite}
	summary, err := newTestRunner(t, sink, cfg).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, summary.Iterations)
	require.Len(t, summary.Slugs, 7)
	require.Equal(t, 6*time.Minute, summary.Runtime)
}

func TestRunOnce(t *testing.T) {
	sink := NewMemorySink()
	summary, err := newTestRunner(t, sink, Config{Once: true}).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, summary.Iterations)
	require.Equal(t, 1, summary.Generated)
	require.Len(t, sink.Slugs(), 1)
	require.Zero(t, summary.Runtime)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	summary, err := newTestRunner(t, NewMemorySink(), Config{}).Run(ctx)
	require.NoError(t, err)
	require.True(t, summary.Interrupted)
	require.Zero(t, summary.Iterations)
}

func TestRunLogsAndContinuesOnWriteFailure(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := NewMemorySink()
	sink.Err = errors.New("disk full")

	summary, err := newTestRunner(t, sink, Config{MaxPosts: 3, Delay: time.Second}, WithLogger(zap.New(core))).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, summary.Iterations)
	require.Equal(t, 3, summary.Failures)
	require.Zero(t, summary.Generated)
	require.Equal(t, 3, logs.FilterMessage("blog post generation failed").Len())
	require.Equal(t, 1, logs.FilterMessage("blog generation complete").Len())
}

func TestRunLogsProgressEveryInterval(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cfg := Config{MaxPosts: 10, Delay: time.Second, LogInterval: 5, OnCollision: CollisionOverwrite}
	_, err := newTestRunner(t, NewMemorySink(), cfg, WithLogger(zap.New(core))).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, logs.FilterMessage("generation progress").Len())
}

func TestGenerateSkipsCollisions(t *testing.T) {
	sink := NewMemorySink()
	r := newTestRunner(t, sink, Config{})
	ctx := context.Background()

	first, err := r.Generate(ctx, "cost", "healthcare", "SEO", "Austin")
	require.NoError(t, err)
	require.Equal(t, OutcomeWritten, first.Outcome)
	original, ok := sink.Get(first.Post.Slug)
	require.True(t, ok)

	second, err := r.Generate(ctx, "cost", "healthcare", "SEO", "Austin")
	require.ErrorIs(t, err, ErrSlugCollision)
	require.Equal(t, OutcomeSkipped, second.Outcome)
	after, _ := sink.Get(first.Post.Slug)
	require.Equal(t, original, after)
}

func TestGenerateOverwritePolicy(t *testing.T) {
	sink := NewMemorySink()
	r := newTestRunner(t, sink, Config{OnCollision: CollisionOverwrite})
	ctx := context.Background()

	_, err := r.Generate(ctx, "cost", "healthcare", "SEO", "Austin")
	require.NoError(t, err)
	res, err := r.Generate(ctx, "cost", "healthcare", "SEO", "Austin")
	require.NoError(t, err)
	require.Equal(t, OutcomeOverwritten, res.Outcome)
	require.Len(t, sink.Slugs(), 1)
}

func TestRegistryDetectsDuplicatesAcrossRuns(t *testing.T) {
	reg, err := OpenRegistry(MemoryRegistry)
	require.NoError(t, err)
	defer reg.Close()

	pub := &recordingPublisher{}
	ctx := context.Background()

	// A fresh sink simulates the content directory being wiped between runs.
	first := newTestRunner(t, NewMemorySink(), Config{BaseURL: "https://webvello.com/"}, WithRegistry(reg), WithPublisher(pub))
	res, err := first.Generate(ctx, "how-to", "retail", "SEO", "Denver")
	require.NoError(t, err)
	require.False(t, res.Duplicate)
	require.Len(t, pub.messages, 1)
	require.Equal(t, "https://webvello.com/blog/"+res.Post.Slug, pub.messages[0].URL)
	require.Equal(t, res.Post.ID, pub.messages[0].ID)

	second := newTestRunner(t, NewMemorySink(), Config{}, WithRegistry(reg))
	again, err := second.Generate(ctx, "how-to", "retail", "SEO", "Denver")
	require.ErrorIs(t, err, ErrSlugCollision)
	require.True(t, again.Duplicate)

	n, err := reg.Count()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestPublishFailureDoesNotFailIteration(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("unavailable")}
	r := newTestRunner(t, NewMemorySink(), Config{}, WithPublisher(pub))
	res, err := r.Generate(context.Background(), "trends", "energy", "SEO", "Austin")
	require.NoError(t, err)
	require.Equal(t, OutcomeWritten, res.Outcome)
}

func TestParseCollisionPolicy(t *testing.T) {
	p, err := ParseCollisionPolicy(" Overwrite ")
	require.NoError(t, err)
	require.Equal(t, CollisionOverwrite, p)
	p, err = ParseCollisionPolicy("")
	require.NoError(t, err)
	require.Equal(t, CollisionSkip, p)
	_, err = ParseCollisionPolicy("merge")
	require.Error(t, err)

	_, err = NewRunner(NewMemorySink(), Config{OnCollision: "merge"})
	require.Error(t, err)
	_, err = NewRunner(nil, Config{})
	require.Error(t, err)
}

func TestSummaryPostsPerMinute(t *testing.T) {
	require.Zero(t, Summary{Generated: 3}.PostsPerMinute())
	require.InDelta(t, 0.5, Summary{Generated: 3, Runtime: 6 * time.Minute}.PostsPerMinute(), 1e-9)
}
