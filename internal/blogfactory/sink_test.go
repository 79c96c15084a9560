package blogfactory

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"webvello.com/site/internal/cms"
)

func TestFileSinkRoundTripsThroughCMS(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "content", "blog")
	sink, err := NewFileSink(dir)
	require.NoError(t, err)
	ctx := context.Background()

	post, err := Composer{Year: 2025}.Compose("cost", "healthcare", "SEO", "Austin")
	require.NoError(t, err)
	doc, err := Render(post, time.Date(2025, 1, 16, 3, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	exists, err := sink.Exists(ctx, post.Slug)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, sink.Write(ctx, post.Slug, doc))
	exists, err = sink.Exists(ctx, post.Slug)
	require.NoError(t, err)
	require.True(t, exists)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")

	client := cms.New(dir, cms.WithoutBuiltins())
	got, err := client.GetPost(ctx, post.Slug)
	require.NoError(t, err)
	require.Equal(t, post.Title, got.Title)
	require.Equal(t, "healthcare", got.Industry)
	require.Equal(t, "SEO", got.Service)
	require.Equal(t, "Austin", got.City)
	require.Equal(t, "cost", got.Template)
	require.Equal(t, 8, got.ReadingTime)
	require.Equal(t, time.Date(2025, 1, 16, 3, 0, 0, 0, time.UTC), got.PublishedAt)
	require.Contains(t, got.HTML, `href="/services/seo"`)
	require.NotEmpty(t, got.TOC)
}

func TestNewFileSinkRequiresDir(t *testing.T) {
	_, err := NewFileSink("  ")
	require.Error(t, err)
}

func TestNewGCSSinkValidates(t *testing.T) {
	_, err := NewGCSSink(nil, "bucket")
	require.Error(t, err)
}

func TestRegistryPersistsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.db")
	reg, err := OpenRegistry(path)
	require.NoError(t, err)

	older := Record{ID: "a", Slug: "first", Template: "cost", Industry: "retail", Service: "SEO", City: "Austin", CreatedAt: 1}
	newer := Record{ID: "b", Slug: "second", Template: "cost", Industry: "retail", Service: "SEO", City: "Austin", CreatedAt: 2}
	require.NoError(t, reg.Put(newer))
	require.NoError(t, reg.Put(older))
	require.Error(t, reg.Put(Record{}))
	require.NoError(t, reg.Close())

	reg, err = OpenRegistry(path)
	require.NoError(t, err)
	defer reg.Close()

	rec, ok, err := reg.Lookup("first")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, older, rec)

	_, ok, err = reg.Lookup("missing")
	require.NoError(t, err)
	require.False(t, ok)

	// The tuple stays claimed by the slug that recorded it first.
	slug, ok, err := reg.TupleSlug(older.Tuple())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", slug)

	list, err := reg.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "first", list[0].Slug)
	require.Equal(t, "second", list[1].Slug)
}

func TestRegistryRecentNewestFirst(t *testing.T) {
	reg, err := OpenRegistry(MemoryRegistry)
	require.NoError(t, err)
	defer reg.Close()

	base := time.Date(2025, 1, 16, 3, 0, 0, 0, time.UTC)
	for i, slug := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, reg.Put(Record{
			Slug:      slug,
			Template:  "cost",
			Industry:  "retail",
			Service:   "SEO",
			City:      slug,
			CreatedAt: base.Add(time.Duration(i) * time.Hour).UnixNano(),
		}))
	}

	all, err := reg.Recent(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "newest", all[0].Slug)
	require.Equal(t, "oldest", all[2].Slug)

	top, err := reg.Recent(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, "newest", top[0].Slug)
	require.Equal(t, "middle", top[1].Slug)
}

func TestPubSubPublisherPublishesMessage(t *testing.T) {
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

	topic, err := client.CreateTopic(ctx, "blog-generated")
	require.NoError(t, err)
	defer topic.Stop()

	publisher, err := NewPubSubPublisher(topic)
	require.NoError(t, err)

	msg := GeneratedMessage{
		ID:          "01HZX3M6Q8Z9C1YH0V4T6W2K5R",
		Slug:        "seo-cost-in-austin-complete-pricing-guide-for-healthcare",
		Template:    "cost",
		Industry:    "healthcare",
		Service:     "SEO",
		City:        "Austin",
		GeneratedAt: time.Date(2025, 1, 16, 3, 0, 0, 0, time.UTC),
	}
	_, err = publisher.PublishGenerated(ctx, msg)
	require.NoError(t, err)

	messages := srv.Messages()
	require.Len(t, messages, 1)
	var payload GeneratedMessage
	require.NoError(t, json.Unmarshal(messages[0].Data, &payload))
	require.Equal(t, msg.Slug, payload.Slug)
	require.Equal(t, EventPostGenerated, messages[0].Attributes["event"])
	require.Equal(t, "Austin", messages[0].Attributes["city"])
	_, hasURL := messages[0].Attributes["url"]
	require.False(t, hasURL)

	_, err = NewPubSubPublisher(nil)
	require.Error(t, err)
}
