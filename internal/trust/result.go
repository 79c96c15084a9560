package trust

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Status describes the outcome of a widget data load.
type Status string

const (
	StatusReady       Status = "ready"
	StatusEmpty       Status = "empty"
	StatusUnavailable Status = "unavailable"
)

// Result is what a widget renders from: items plus the state that explains them.
type Result[T any] struct {
	Status Status
	Items  []T
	Err    error
}

// Ready reports whether there is something to render.
func (r Result[T]) Ready() bool { return r.Status == StatusReady }

// LoaderFunc fetches one widget's data.
type LoaderFunc[T any] func(ctx context.Context) ([]T, error)

// Load runs fn and folds its outcome into a Result. A panicking loader is
// reported as unavailable.
func Load[T any](ctx context.Context, fn LoaderFunc[T]) (res Result[T]) {
	if fn == nil {
		return Result[T]{Status: StatusUnavailable, Err: fmt.Errorf("trust: nil loader")}
	}
	defer func() {
		if v := recover(); v != nil {
			res = Result[T]{Status: StatusUnavailable, Err: fmt.Errorf("trust: loader panic: %v", v)}
		}
	}()
	items, err := fn(ctx)
	switch {
	case err != nil:
		return Result[T]{Status: StatusUnavailable, Err: err}
	case len(items) == 0:
		return Result[T]{Status: StatusEmpty}
	default:
		return Result[T]{Status: StatusReady, Items: items}
	}
}

// Widgets bundles every social-proof block a page renders.
type Widgets struct {
	Testimonials Result[Testimonial]
	Reviews      Result[Review]
	Badges       Result[Badge]
	Logos        Result[ClientLogo]
	Summary      Summary
}

// LoadAll loads every widget from p concurrently. A failing widget only
// affects its own Result.
func LoadAll(ctx context.Context, p Provider) Widgets {
	var (
		w Widgets
		g errgroup.Group
	)
	g.Go(func() error { w.Testimonials = Load[Testimonial](ctx, p.Testimonials); return nil })
	g.Go(func() error { w.Reviews = Load[Review](ctx, p.Reviews); return nil })
	g.Go(func() error { w.Badges = Load[Badge](ctx, p.Badges); return nil })
	g.Go(func() error { w.Logos = Load[ClientLogo](ctx, p.ClientLogos); return nil })
	_ = g.Wait()
	w.Summary = Summarize(w.Reviews.Items)
	return w
}
