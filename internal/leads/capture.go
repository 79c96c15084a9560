package leads

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const notifyTimeout = 5 * time.Second

// Capturer turns validated submissions into stored, announced leads.
type Capturer struct {
	store    Store
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// CapturerOption customises a Capturer.
type CapturerOption func(*Capturer)

// WithClock overrides the time stamped on leads.
func WithClock(now func() time.Time) CapturerOption {
	return func(c *Capturer) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger used for storage and notification failures.
func WithLogger(logger *zap.Logger) CapturerOption {
	return func(c *Capturer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCapturer wires store and notifier. Either may be nil.
func NewCapturer(store Store, notifier Notifier, opts ...CapturerOption) *Capturer {
	c := &Capturer{
		store:    store,
		notifier: notifier,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Capture stores and announces s. A failed save still notifies; notification
// failures are only logged.
func (c *Capturer) Capture(ctx context.Context, s Submission, meta Meta) Lead {
	lead := NewLead(s, meta, c.now())
	logger := c.logger.With(zap.String("lead_id", lead.ID))

	if c.store != nil {
		if err := c.store.Save(ctx, lead); err != nil {
			logger.Error("failed to save lead", zap.Error(err))
		}
	}
	if c.notifier != nil {
		// A client disconnect does not cancel the notification.
		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()
		if err := c.notifier.Notify(nctx, lead); err != nil {
			logger.Warn("failed to send lead notification", zap.Error(err))
		}
	}
	return lead
}
