package blogfactory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/pubsub"
)

// EventPostGenerated is the event type attribute of generated-post messages.
const EventPostGenerated = "post.generated"

// Publisher announces generated posts to downstream consumers.
type Publisher interface {
	PublishGenerated(ctx context.Context, msg GeneratedMessage) (string, error)
}

// GeneratedMessage is the payload published for each written post.
type GeneratedMessage struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Template    string    `json:"template"`
	Industry    string    `json:"industry"`
	Service     string    `json:"service"`
	City        string    `json:"city"`
	URL         string    `json:"url"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// PubSubPublisher publishes generated-post events to a Pub/Sub topic.
type PubSubPublisher struct {
	topic   *pubsub.Topic
	marshal func(any) ([]byte, error)
}

// NewPubSubPublisher constructs a Pub/Sub backed publisher.
func NewPubSubPublisher(topic *pubsub.Topic) (*PubSubPublisher, error) {
	if topic == nil {
		return nil, errors.New("pubsub publisher: topic is required")
	}
	return &PubSubPublisher{topic: topic, marshal: json.Marshal}, nil
}

// PublishGenerated sends msg and waits for the server-assigned message id.
func (p *PubSubPublisher) PublishGenerated(ctx context.Context, msg GeneratedMessage) (string, error) {
	if p == nil || p.topic == nil {
		return "", errors.New("pubsub publisher: not initialised")
	}
	data, err := p.marshal(msg)
	if err != nil {
		return "", fmt.Errorf("marshal generated post: %w", err)
	}

	attrs := map[string]string{"event": EventPostGenerated}
	setAttr(attrs, "slug", msg.Slug)
	setAttr(attrs, "industry", msg.Industry)
	setAttr(attrs, "service", msg.Service)
	setAttr(attrs, "city", msg.City)

	result := p.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attrs})
	id, err := result.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("publish generated post: %w", err)
	}
	return id, nil
}

func setAttr(attrs map[string]string, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		attrs[key] = v
	}
}
