// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package meta reads deck-level metadata from the text that precedes the
// first slide marker: an optional YAML front matter block and the first
// level-one heading.
package meta

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/mdslides/pkg/types"
)

// frontMatter mirrors the keys accepted in a deck's front matter.
type frontMatter struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Author   string   `yaml:"author"`
	Subject  string   `yaml:"subject"`
	Keywords []string `yaml:"keywords"`
}

// FromPreamble parses front matter at the start of preamble and fills Title
// from the first "# " heading when the front matter does not set one. A
// preamble without front matter is not an error. The returned error reports
// malformed front matter; the heading title is still returned with it.
func FromPreamble(preamble string) (types.DeckMeta, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(strings.NewReader(preamble), &fm)
	if err != nil {
		m := types.DeckMeta{Title: firstHeading([]byte(preamble))}
		return m, fmt.Errorf("parsing front matter: %w", err)
	}

	m := types.DeckMeta{
		Title:    strings.TrimSpace(fm.Title),
		Subtitle: strings.TrimSpace(fm.Subtitle),
		Author:   strings.TrimSpace(fm.Author),
		Subject:  strings.TrimSpace(fm.Subject),
		Keywords: fm.Keywords,
	}
	if m.Title == "" {
		m.Title = firstHeading(body)
	}
	return m, nil
}

// firstHeading returns the text of the first level-one ATX or setext heading
// in src, or "" when there is none.
func firstHeading(src []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 1 {
			continue
		}
		return strings.TrimSpace(inlineText(h, src))
	}
	return ""
}

// inlineText concatenates the text segments under n, dropping emphasis and
// link markup.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(inlineText(c, src))
		}
	}
	return buf.String()
}
