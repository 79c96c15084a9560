package cms

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var headingID = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)

type renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

type rendered struct {
	HTML  string
	TOC   []Heading
	Words int
}

func newRenderer() *renderer {
	return &renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy: newPostHTMLPolicy(),
	}
}

func newPostHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span", "code")
	policy.AllowAttrs("id").Matching(headingID).OnElements("h1", "h2", "h3", "h4")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnFullyQualifiedLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

func (r *renderer) render(src string) (rendered, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return rendered{}, fmt.Errorf("markdown: %w", err)
	}
	safe := strings.TrimSpace(r.policy.Sanitize(buf.String()))
	toc, words, err := outline(safe)
	if err != nil {
		return rendered{}, err
	}
	return rendered{HTML: safe, TOC: toc, Words: words}, nil
}

// outline walks sanitised HTML collecting h2/h3 headings and counting words.
func outline(fragment string) ([]Heading, int, error) {
	ctxNode := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctxNode)
	if err != nil {
		return nil, 0, fmt.Errorf("outline: %w", err)
	}
	var (
		toc   []Heading
		words int
	)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			words += len(strings.Fields(n.Data))
			return
		case html.ElementNode:
			if n.DataAtom == atom.H2 || n.DataAtom == atom.H3 {
				if id := attr(n, "id"); id != "" {
					level := 2
					if n.DataAtom == atom.H3 {
						level = 3
					}
					toc = append(toc, Heading{ID: id, Text: strings.Join(strings.Fields(textOf(n)), " "), Level: level})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return toc, words, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textOf(c))
		b.WriteByte(' ')
	}
	return b.String()
}
