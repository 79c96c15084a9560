package main

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"webvello.com/site/internal/catalog"
	"webvello.com/site/internal/handlers"
	"webvello.com/site/internal/leads"
	mw "webvello.com/site/internal/middleware"
	"webvello.com/site/internal/observability"
)

const (
	contactPath = "/contact"
	maxLeadBody = 64 << 10

	msgRateLimited = "Too many requests. Please try again later."
	msgInvalidLead = "Please fix the highlighted fields and try again."
)

func (s *server) contact(w http.ResponseWriter, r *http.Request) {
	form := handlers.NewLeadForm(mw.CSRFToken(r.Context()))
	form.Sent = r.URL.Query().Get("sent") == "1"
	form.Values.CTATrackingID = leads.Sanitize(r.URL.Query().Get("cta"), 100)
	s.renderContact(w, r, http.StatusOK, form)
}

// submitLead accepts the contact form. Full-page posts redirect after success;
// htmx posts get the form fragment back, always with 200 so htmx swaps it.
func (s *server) submitLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)
	form := handlers.NewLeadForm(mw.CSRFToken(ctx))
	ip := clientIP(r)

	if !s.leadLimiter.Allow(ip) {
		logger.Warn("lead rate limited", zap.String("ip", ip))
		form.Message = msgRateLimited
		s.leadResponse(w, r, http.StatusTooManyRequests, form)
		return
	}
	if err := r.ParseForm(); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid form")
		return
	}

	sub := leads.FromForm(r.PostForm)
	if sub.IsSpam() {
		// Bots see the normal success path.
		logger.Info("lead honeypot triggered", zap.String("ip", ip))
		s.leadAccepted(w, r, form)
		return
	}
	form.Values = sub
	if errs := sub.Validate(); errs != nil {
		form.Errors = errs
		form.Message = msgInvalidLead
		s.leadResponse(w, r, http.StatusBadRequest, form)
		return
	}

	lead := s.leads.Capture(ctx, sub, leads.Meta{
		IPAddress: ip,
		UserAgent: r.UserAgent(),
		Source:    r.Referer(),
	})
	logger.Info("lead captured", zap.String("lead_id", lead.ID), zap.String("service", lead.ServiceInterest))
	s.leadAccepted(w, r, form)
}

func (s *server) leadAccepted(w http.ResponseWriter, r *http.Request, form handlers.LeadForm) {
	if mw.IsHTMX(r.Context()) {
		form.Values = leads.Submission{}
		form.Sent = true
		s.renderFragment(w, r, "lead_form", form)
		return
	}
	http.Redirect(w, r, contactPath+"?sent=1", http.StatusSeeOther)
}

func (s *server) leadResponse(w http.ResponseWriter, r *http.Request, status int, form handlers.LeadForm) {
	if mw.IsHTMX(r.Context()) {
		s.renderFragment(w, r, "lead_form", form)
		return
	}
	s.renderContact(w, r, status, form)
}

func (s *server) renderContact(w http.ResponseWriter, r *http.Request, status int, form handlers.LeadForm) {
	page, ok := catalog.LookupPage(contactPath)
	if !ok {
		s.notFound(w, r)
		return
	}
	s.renderPage(w, r, status, "static", handlers.Contact(s.env(r), page, form))
}

// clientIP is the address RealIP resolved, without the port.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	if r.RemoteAddr == "" {
		return "unknown"
	}
	return r.RemoteAddr
}
