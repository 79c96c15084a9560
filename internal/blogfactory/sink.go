package blogfactory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	gcs "cloud.google.com/go/storage"
)

// Sink stores rendered documents by slug.
type Sink interface {
	Exists(ctx context.Context, slug string) (bool, error)
	Write(ctx context.Context, slug string, doc []byte) error
}

// FileSink writes <Dir>/<slug>.md, the layout the site's content reader expects.
type FileSink struct {
	Dir string
}

// NewFileSink returns a sink rooted at dir.
func NewFileSink(dir string) (*FileSink, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("file sink: directory is required")
	}
	return &FileSink{Dir: dir}, nil
}

func (s *FileSink) path(slug string) string {
	return filepath.Join(s.Dir, slug+".md")
}

// Exists reports whether a document for slug is already on disk.
func (s *FileSink) Exists(_ context.Context, slug string) (bool, error) {
	_, err := os.Stat(s.path(slug))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("file sink: stat %s: %w", slug, err)
	}
}

// Write creates the directory if needed and replaces the document atomically so
// readers never observe a half-written file.
func (s *FileSink) Write(_ context.Context, slug string, doc []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("file sink: mkdir %s: %w", s.Dir, err)
	}
	tmp, err := os.CreateTemp(s.Dir, "."+slug+"-*.tmp")
	if err != nil {
		return fmt.Errorf("file sink: create temp: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("file sink: write %s: %w", slug, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("file sink: close %s: %w", slug, err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return fmt.Errorf("file sink: chmod %s: %w", slug, err)
	}
	if err := os.Rename(name, s.path(slug)); err != nil {
		os.Remove(name)
		return fmt.Errorf("file sink: rename %s: %w", slug, err)
	}
	return nil
}

// GCSSink writes documents to <Prefix>/<slug>.md objects in a Cloud Storage bucket.
type GCSSink struct {
	client *gcs.Client
	bucket string
	prefix string
}

// NewGCSSink constructs a bucket-backed sink. Objects go under "blog/".
func NewGCSSink(client *gcs.Client, bucket string) (*GCSSink, error) {
	if client == nil {
		return nil, errors.New("gcs sink: client is required")
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("gcs sink: bucket is required")
	}
	return &GCSSink{client: client, bucket: bucket, prefix: "blog"}, nil
}

// Object returns the object name used for slug.
func (s *GCSSink) Object(slug string) string {
	return path.Join(s.prefix, slug+".md")
}

// Exists reports whether the object for slug is present.
func (s *GCSSink) Exists(ctx context.Context, slug string) (bool, error) {
	_, err := s.client.Bucket(s.bucket).Object(s.Object(slug)).Attrs(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gcs.ErrObjectNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("gcs sink: attrs %s: %w", slug, err)
	}
}

// Write uploads doc, replacing any existing object.
func (s *GCSSink) Write(ctx context.Context, slug string, doc []byte) error {
	w := s.client.Bucket(s.bucket).Object(s.Object(slug)).NewWriter(ctx)
	w.ContentType = "text/markdown; charset=utf-8"
	w.CacheControl = "no-cache"
	if _, err := w.Write(doc); err != nil {
		_ = w.Close()
		return fmt.Errorf("gcs sink: write %s: %w", slug, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs sink: close %s: %w", slug, err)
	}
	return nil
}

// MemorySink keeps documents in memory; used by preview runs and tests.
type MemorySink struct {
	mu   sync.Mutex
	docs map[string][]byte
	// Err, when set, fails every Write.
	Err error
}

// NewMemorySink returns an empty sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{docs: make(map[string][]byte)}
}

// Exists implements Sink.
func (s *MemorySink) Exists(_ context.Context, slug string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.docs[slug]
	return ok, nil
}

// Write implements Sink.
func (s *MemorySink) Write(_ context.Context, slug string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.docs[slug] = append([]byte(nil), doc...)
	return nil
}

// Get returns the stored document for slug.
func (s *MemorySink) Get(slug string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[slug]
	return append([]byte(nil), doc...), ok
}

// Slugs lists stored slugs in order.
func (s *MemorySink) Slugs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.docs))
	for slug := range s.docs {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}
