package middleware

import (
	"context"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyHTMX ctxKey = "htmx"
	ctxKeyCSRF ctxKey = "csrf"
)

// HTMXRequest carries the htmx headers of the current request.
type HTMXRequest struct {
	Target     string
	Trigger    string
	CurrentURL string
	Boosted    bool
}

// WithHTMX marks the request as issued by htmx.
func WithHTMX(ctx context.Context, req HTMXRequest) context.Context {
	return context.WithValue(ctx, ctxKeyHTMX, req)
}

// IsHTMX returns whether this is an htmx request. Boosted navigations want the
// full page and do not count.
func IsHTMX(ctx context.Context) bool {
	req, ok := HTMXFromContext(ctx)
	return ok && !req.Boosted
}

// HTMXFromContext returns the htmx headers, if any.
func HTMXFromContext(ctx context.Context) (HTMXRequest, bool) {
	req, ok := ctx.Value(ctxKeyHTMX).(HTMXRequest)
	return req, ok
}

// CSRFToken returns the token forms on this request must echo back.
func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(ctxKeyCSRF).(string)
	return token
}
