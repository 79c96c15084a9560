// Package leads captures contact-form submissions: it sanitises and validates
// the fields, persists accepted leads and notifies the sales inbox.
package leads

import (
	"html"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/oklog/ulid/v2"
)

// Form field names accepted from the contact form.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldCompany         = "company"
	FieldWebsite         = "website"
	FieldMessage         = "message"
	FieldServiceInterest = "serviceInterest"
	FieldCity            = "city"
	FieldCTATrackingID   = "ctaTrackingId"
	FieldHoneypot        = "_honeypot"
)

const (
	maxNameLen    = 100
	minNameLen    = 2
	maxFieldLen   = 200
	minMessageLen = 10
	maxMessageLen = 5000
)

var strict = bluemonday.StrictPolicy()

// Submission is a contact-form post after sanitising.
type Submission struct {
	Name            string
	Email           string
	Company         string
	Website         string
	Message         string
	ServiceInterest string
	City            string
	CTATrackingID   string
	Honeypot        string
}

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

// FromForm reads and sanitises a submission from posted form values.
func FromForm(form url.Values) Submission {
	return Submission{
		Name:            Sanitize(form.Get(FieldName), maxNameLen),
		Email:           Sanitize(form.Get(FieldEmail), maxFieldLen),
		Company:         Sanitize(form.Get(FieldCompany), maxFieldLen),
		Website:         Sanitize(form.Get(FieldWebsite), maxFieldLen),
		Message:         sanitizeText(form.Get(FieldMessage), maxMessageLen),
		ServiceInterest: Sanitize(form.Get(FieldServiceInterest), maxFieldLen),
		City:            Sanitize(form.Get(FieldCity), maxFieldLen),
		CTATrackingID:   Sanitize(form.Get(FieldCTATrackingID), maxFieldLen),
		Honeypot:        strings.TrimSpace(form.Get(FieldHoneypot)),
	}
}

// Sanitize strips markup, collapses whitespace and truncates s to limit runes.
func Sanitize(s string, limit int) string {
	s = strings.Join(strings.Fields(html.UnescapeString(strict.Sanitize(s))), " ")
	return truncate(s, limit)
}

// sanitizeText is Sanitize for multi-line fields; line breaks survive.
func sanitizeText(s string, limit int) string {
	lines := strings.Split(html.UnescapeString(strict.Sanitize(strings.ReplaceAll(s, "\r\n", "\n"))), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return truncate(strings.TrimSpace(strings.Join(lines, "\n")), limit)
}

func truncate(s string, limit int) string {
	if limit > 0 && utf8.RuneCountInString(s) > limit {
		s = strings.TrimSpace(string([]rune(s)[:limit]))
	}
	return s
}

// IsSpam reports whether the hidden honeypot field was filled in.
func (s Submission) IsSpam() bool {
	return s.Honeypot != ""
}

// Validate returns the problems with s, or nil when it can be accepted.
func (s Submission) Validate() FieldErrors {
	errs := FieldErrors{}
	switch n := utf8.RuneCountInString(s.Name); {
	case n == 0:
		errs[FieldName] = "Name is required"
	case n < minNameLen:
		errs[FieldName] = "Name must be at least 2 characters"
	}
	if s.Email == "" {
		errs[FieldEmail] = "Email is required"
	} else if !validEmail(s.Email) {
		errs[FieldEmail] = "Enter a valid email address"
	}
	if s.Website != "" && !validWebsite(s.Website) {
		errs[FieldWebsite] = "Enter a valid website URL"
	}
	switch n := utf8.RuneCountInString(s.Message); {
	case n == 0:
		errs[FieldMessage] = "Message is required"
	case n < minMessageLen:
		errs[FieldMessage] = "Message must be at least 10 characters"
	}
	if s.ServiceInterest == "" {
		errs[FieldServiceInterest] = "Choose the service you are interested in"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}

// validWebsite accepts bare hosts ("example.com") as well as http(s) URLs.
func validWebsite(s string) bool {
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return strings.Contains(u.Hostname(), ".")
}

// Meta is the request context recorded with a lead.
type Meta struct {
	IPAddress string
	UserAgent string
	Source    string
}

// Lead is an accepted submission as stored and announced.
type Lead struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Company         string    `json:"company,omitempty"`
	Website         string    `json:"website,omitempty"`
	Message         string    `json:"message"`
	ServiceInterest string    `json:"serviceInterest"`
	City            string    `json:"city,omitempty"`
	CTATrackingID   string    `json:"ctaTrackingId,omitempty"`
	SubmittedAt     time.Time `json:"submittedAt"`
	IPAddress       string    `json:"ipAddress"`
	UserAgent       string    `json:"userAgent,omitempty"`
	Source          string    `json:"source"`
}

// NewLead stamps s with an id, the submission time and request metadata.
// Requests without a referer are recorded as "direct".
func NewLead(s Submission, meta Meta, now time.Time) Lead {
	source := meta.Source
	if source == "" {
		source = "direct"
	}
	ip := meta.IPAddress
	if ip == "" {
		ip = "unknown"
	}
	return Lead{
		ID:              ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Name:            s.Name,
		Email:           s.Email,
		Company:         s.Company,
		Website:         s.Website,
		Message:         s.Message,
		ServiceInterest: s.ServiceInterest,
		City:            s.City,
		CTATrackingID:   s.CTATrackingID,
		SubmittedAt:     now.UTC(),
		IPAddress:       ip,
		UserAgent:       meta.UserAgent,
		Source:          source,
	}
}
