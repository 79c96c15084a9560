package leads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"cloud.google.com/go/pubsub"
	"go.uber.org/zap"
)

// EventLeadCaptured is the event type attribute of lead messages.
const EventLeadCaptured = "lead.captured"

const logMessagePreview = 100

// Notifier tells someone a lead arrived.
type Notifier interface {
	Notify(ctx context.Context, lead Lead) error
}

// LogNotifier writes leads to the structured log. It needs no credentials and
// is the default outside production.
type LogNotifier struct {
	Logger *zap.Logger
}

// Notify logs lead at info level.
func (n LogNotifier) Notify(_ context.Context, lead Lead) error {
	logger := n.Logger
	if logger == nil {
		return errors.New("log notifier: logger is required")
	}
	message := lead.Message
	if utf8.RuneCountInString(message) > logMessagePreview {
		message = string([]rune(message)[:logMessagePreview]) + "..."
	}
	logger.Info("new lead captured",
		zap.String("lead_id", lead.ID),
		zap.String("name", lead.Name),
		zap.String("email", lead.Email),
		zap.String("company", lead.Company),
		zap.String("website", lead.Website),
		zap.String("service", lead.ServiceInterest),
		zap.String("city", lead.City),
		zap.String("message", message),
		zap.String("source", lead.Source),
		zap.String("cta_id", lead.CTATrackingID),
		zap.Time("submitted_at", lead.SubmittedAt),
	)
	return nil
}

// PubSubNotifier publishes leads to a Pub/Sub topic for the CRM and mail
// workers.
type PubSubNotifier struct {
	topic   *pubsub.Topic
	marshal func(any) ([]byte, error)
}

// NewPubSubNotifier constructs a Pub/Sub backed notifier.
func NewPubSubNotifier(topic *pubsub.Topic) (*PubSubNotifier, error) {
	if topic == nil {
		return nil, errors.New("pubsub notifier: topic is required")
	}
	return &PubSubNotifier{topic: topic, marshal: json.Marshal}, nil
}

// Notify publishes lead and waits for the server to accept it.
func (n *PubSubNotifier) Notify(ctx context.Context, lead Lead) error {
	if n == nil || n.topic == nil {
		return errors.New("pubsub notifier: not initialised")
	}
	data, err := n.marshal(lead)
	if err != nil {
		return fmt.Errorf("marshal lead: %w", err)
	}

	attrs := map[string]string{"event": EventLeadCaptured, "lead_id": lead.ID}
	for key, value := range map[string]string{
		"service": lead.ServiceInterest,
		"city":    lead.City,
		"cta_id":  lead.CTATrackingID,
	} {
		if v := strings.TrimSpace(value); v != "" {
			attrs[key] = v
		}
	}

	result := n.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attrs})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("publish lead: %w", err)
	}
	return nil
}
