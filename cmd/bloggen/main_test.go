package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"webvello.com/site/internal/blogfactory"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSlugCommand(t *testing.T) {
	out, err := execute(t, "slug", "SEO Cost in Austin: Complete Pricing Guide for healthcare")
	require.NoError(t, err)
	require.Equal(t, "seo-cost-in-austin-complete-pricing-guide-for-healthcare\n", out)

	_, err = execute(t, "slug", "!!!")
	require.Error(t, err)
}

func TestPreviewCommand(t *testing.T) {
	out, err := execute(t, "preview", "--template", "cost", "--industry", "healthcare", "--service", "SEO", "--city", "Austin", "--year", "2025")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "---\n"))
	require.Contains(t, out, "SEO Cost in Austin: Complete Pricing Guide for healthcare")
	require.Contains(t, out, "## Ready to Improve Your SEO?")
}

func TestPreviewRejectsUnknownTemplate(t *testing.T) {
	_, err := execute(t, "preview", "--template", "listicle", "--industry", "retail", "--service", "SEO", "--city", "Austin", "--year", "2025")
	require.Error(t, err)
	require.Contains(t, err.Error(), "how-to")
}

func TestRunOnceWritesPostAndRecordsHistory(t *testing.T) {
	dir := t.TempDir()
	contentDir := filepath.Join(dir, "content", "blog")
	registry := filepath.Join(dir, "registry.db")

	out, err := execute(t, "run",
		"--once",
		"--content-dir", contentDir,
		"--registry", registry,
		"--log-file", "",
		"--delay", "0s",
		"--seed", "7",
		"--sink", "file",
	)
	require.NoError(t, err)
	require.Contains(t, out, "generated 1 posts")

	entries, err := os.ReadDir(contentDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, strings.HasSuffix(entries[0].Name(), ".md"))

	out, err = execute(t, "history", "--registry", registry)
	require.NoError(t, err)
	require.Contains(t, out, strings.TrimSuffix(entries[0].Name(), ".md"))
	require.Contains(t, out, "1 posts")
}

func TestRunRejectsUnknownCollisionPolicy(t *testing.T) {
	_, err := execute(t, "run", "--once", "--on-collision", "merge", "--content-dir", t.TempDir(), "--log-file", "")
	require.Error(t, err)
}

func TestHistoryListsNewestFirstAndLimits(t *testing.T) {
	registry := filepath.Join(t.TempDir(), "registry.db")
	reg, err := blogfactory.OpenRegistry(registry)
	require.NoError(t, err)
	base := time.Date(2025, 1, 16, 3, 0, 0, 0, time.UTC)
	for i, slug := range []string{"oldest-post", "middle-post", "newest-post"} {
		require.NoError(t, reg.Put(blogfactory.Record{
			Slug:      slug,
			Template:  "cost",
			Industry:  "retail",
			Service:   "SEO",
			City:      "Austin",
			CreatedAt: base.Add(time.Duration(i) * time.Hour).UnixNano(),
		}))
	}
	require.NoError(t, reg.Close())

	out, err := execute(t, "history", "--registry", registry)
	require.NoError(t, err)
	require.Less(t, strings.Index(out, "newest-post"), strings.Index(out, "middle-post"))
	require.Less(t, strings.Index(out, "middle-post"), strings.Index(out, "oldest-post"))
	require.Contains(t, out, "3 posts")

	out, err = execute(t, "history", "--registry", registry, "--limit", "2")
	require.NoError(t, err)
	require.Less(t, strings.Index(out, "newest-post"), strings.Index(out, "middle-post"))
	require.NotContains(t, out, "oldest-post")
	require.Contains(t, out, "2 posts")
	require.Contains(t, out, "2025-01-16T05:00:00Z")
}

func TestTableAlignsColumns(t *testing.T) {
	tbl := newTable("SLUG", "CITY")
	tbl.addRow("a-much-longer-slug", "Austin")
	tbl.addRow("short", "San Francisco")

	var out bytes.Buffer
	require.NoError(t, tbl.render(&out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[1], "---"))
	bar := strings.Index(lines[0], "|")
	require.Positive(t, bar)
	require.Equal(t, bar, strings.Index(lines[2], "|"))
	require.Equal(t, bar, strings.Index(lines[3], "|"))
	require.Contains(t, lines[3], "San Francisco")
}
