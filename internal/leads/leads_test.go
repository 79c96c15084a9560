package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var submittedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func validForm() url.Values {
	return url.Values{
		FieldName:            {"Dana Reyes"},
		FieldEmail:           {"dana@clinic.example.com"},
		FieldCompany:         {"Reyes Family Clinic"},
		FieldWebsite:         {"reyesclinic.com"},
		FieldMessage:         {"We need help ranking in the Austin map pack."},
		FieldServiceInterest: {"Local SEO"},
		FieldCity:            {"Austin"},
		FieldCTATrackingID:   {"contact-hero"},
	}
}

func TestFromFormSanitises(t *testing.T) {
	form := validForm()
	form.Set(FieldName, "  <b>Dana</b>   Reyes <script>alert(1)</script>")
	form.Set(FieldMessage, "Line one  <i>here</i>\r\n\r\n  Line two & more ")
	form.Set(FieldCompany, strings.Repeat("x", 300))

	sub := FromForm(form)
	require.Equal(t, "Dana Reyes", sub.Name)
	require.Equal(t, "Line one here\n\nLine two & more", sub.Message)
	require.Len(t, sub.Company, maxFieldLen)
	require.False(t, sub.IsSpam())
	require.Nil(t, sub.Validate())
}

func TestValidateReportsFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{name: "missing name", field: FieldName, value: ""},
		{name: "short name", field: FieldName, value: "D"},
		{name: "missing email", field: FieldEmail, value: ""},
		{name: "bad email", field: FieldEmail, value: "dana@localhost"},
		{name: "display name email", field: FieldEmail, value: "Dana <dana@clinic.com>"},
		{name: "bad website", field: FieldWebsite, value: "ftp://clinic.com"},
		{name: "short message", field: FieldMessage, value: "hi"},
		{name: "missing service", field: FieldServiceInterest, value: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Set(tt.field, tt.value)
			errs := FromForm(form).Validate()
			require.Len(t, errs, 1)
			require.NotEmpty(t, errs[tt.field])
		})
	}
}

func TestHoneypotMarksSpam(t *testing.T) {
	form := validForm()
	form.Set(FieldHoneypot, "http://spam.example")
	require.True(t, FromForm(form).IsSpam())
}

func TestNewLeadDefaults(t *testing.T) {
	lead := NewLead(FromForm(validForm()), Meta{}, submittedAt)
	require.Len(t, lead.ID, 26)
	require.Equal(t, "direct", lead.Source)
	require.Equal(t, "unknown", lead.IPAddress)
	require.Equal(t, submittedAt, lead.SubmittedAt)
}

func TestBuntStoreRecentNewestFirst(t *testing.T) {
	store, err := OpenStore(MemoryStore)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	for i, name := range []string{"First", "Second", "Third"} {
		sub := FromForm(validForm())
		sub.Name = name
		require.NoError(t, store.Save(ctx, NewLead(sub, Meta{}, submittedAt.Add(time.Duration(i)*time.Minute))))
	}

	all, err := store.Recent(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Third", all[0].Name)
	require.Equal(t, "First", all[2].Name)

	top, err := store.Recent(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, "Third", top[0].Name)

	require.Error(t, store.Save(ctx, Lead{}))
}

func TestLimiterAllowsFivePerWindow(t *testing.T) {
	now := submittedAt
	l := NewLimiter(5, 15*time.Minute, WithLimiterClock(func() time.Time { return now }))

	for i := 0; i < 5; i++ {
		require.True(t, l.Allow("203.0.113.7"), "submission %d", i+1)
	}
	require.False(t, l.Allow("203.0.113.7"))
	require.True(t, l.Allow("198.51.100.2"))

	now = now.Add(3 * time.Minute)
	require.True(t, l.Allow("203.0.113.7"))
	require.False(t, l.Allow("203.0.113.7"))

	now = now.Add(15 * time.Minute)
	for i := 0; i < 5; i++ {
		require.True(t, l.Allow("203.0.113.7"))
	}
}

type failingStore struct{}

func (failingStore) Save(context.Context, Lead) error { return errors.New("disk full") }

type recordingNotifier struct {
	leads []Lead
	err   error
}

func (n *recordingNotifier) Notify(_ context.Context, lead Lead) error {
	n.leads = append(n.leads, lead)
	return n.err
}

func TestCaptureNotifiesWhenSaveFails(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	notifier := &recordingNotifier{}
	c := NewCapturer(failingStore{}, notifier,
		WithLogger(zap.New(core)),
		WithClock(func() time.Time { return submittedAt }),
	)

	lead := c.Capture(context.Background(), FromForm(validForm()), Meta{IPAddress: "203.0.113.7", Source: "https://www.webvello.com/contact"})
	require.Len(t, notifier.leads, 1)
	require.Equal(t, lead.ID, notifier.leads[0].ID)
	require.Equal(t, "https://www.webvello.com/contact", lead.Source)
	require.Equal(t, 1, logs.FilterMessage("failed to save lead").Len())
}

func TestCaptureIgnoresNotifierFailure(t *testing.T) {
	store, err := OpenStore(MemoryStore)
	require.NoError(t, err)
	defer store.Close()

	core, logs := observer.New(zap.InfoLevel)
	c := NewCapturer(store, &recordingNotifier{err: errors.New("smtp down")}, WithLogger(zap.New(core)))
	c.Capture(context.Background(), FromForm(validForm()), Meta{})

	saved, err := store.Recent(0)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	require.Equal(t, 1, logs.FilterMessage("failed to send lead notification").Len())
}

func TestLogNotifierTruncatesMessage(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sub := FromForm(validForm())
	sub.Message = strings.Repeat("a", 150)

	require.NoError(t, LogNotifier{Logger: zap.New(core)}.Notify(context.Background(), NewLead(sub, Meta{}, submittedAt)))
	entries := logs.FilterMessage("new lead captured").All()
	require.Len(t, entries, 1)
	require.Equal(t, strings.Repeat("a", 100)+"...", entries[0].ContextMap()["message"])
	require.Error(t, LogNotifier{}.Notify(context.Background(), Lead{}))
}

func TestPubSubNotifierPublishesLead(t *testing.T) {
	ctx := context.Background()
	srv := pstest.NewServer()
	defer srv.Close()

	client, err := pubsub.NewClient(ctx, "test-project",
		option.WithEndpoint(srv.Addr),
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	require.NoError(t, err)
	defer func() {
		_ = client.Close()
	}()

	topic, err := client.CreateTopic(ctx, "leads")
	require.NoError(t, err)
	defer topic.Stop()

	notifier, err := NewPubSubNotifier(topic)
	require.NoError(t, err)

	lead := NewLead(FromForm(validForm()), Meta{IPAddress: "203.0.113.7"}, submittedAt)
	require.NoError(t, notifier.Notify(ctx, lead))

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, EventLeadCaptured, msgs[0].Attributes["event"])
	require.Equal(t, lead.ID, msgs[0].Attributes["lead_id"])
	require.Equal(t, "Local SEO", msgs[0].Attributes["service"])

	var got Lead
	require.NoError(t, json.Unmarshal(msgs[0].Data, &got))
	require.Equal(t, "dana@clinic.example.com", got.Email)
	require.Equal(t, "203.0.113.7", got.IPAddress)

	_, err = NewPubSubNotifier(nil)
	require.Error(t, err)
}
