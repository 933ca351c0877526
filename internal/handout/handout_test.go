// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package handout

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mdslides/pkg/types"
)

var sampleSlides = []types.SlideRecord{
	{Index: 0, Title: "1", SpeakerNotes: "Welcome **everyone**."},
	{Index: 1, Title: "2"},
	{Index: 2, SpeakerNotes: "See [docs](https://example.com)"},
}

func TestEntries(t *testing.T) {
	got := Entries(sampleSlides)
	want := []Entry{
		{Number: 1, Heading: "Slide 1: 1", Notes: "Welcome everyone.", HasNotes: true},
		{Number: 2, Heading: "Slide 2: 2", Notes: NoNotes},
		{Number: 3, Heading: "Slide 3", Notes: "See docs", HasNotes: true},
	}
	assert.Equal(t, want, got)
	assert.Empty(t, Entries(nil))
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  types.HandoutFormat
		want    Writer
		wantErr bool
	}{
		{types.HandoutDOCX, DOCXWriter{}, false},
		{types.HandoutPDF, PDFWriter{}, false},
		{"PDF", PDFWriter{}, false},
		{"odt", nil, true},
		{"", nil, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			w, err := ForFormat(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "out/deck.docx", DefaultPath("out/deck.pptx", types.HandoutDOCX))
	assert.Equal(t, "deck.pdf", DefaultPath("deck", types.HandoutPDF))
}

func TestDOCXWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.docx")
	meta := types.DeckMeta{Title: "Bounded", Subtitle: "A talk", Author: "Ada"}
	require.NoError(t, DOCXWriter{}.Write(path, sampleSlides, meta))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, p.String())
		}
	}
	assert.Equal(t, []string{
		"Bounded",
		"A talk",
		"Ada",
		"Slide 1: 1",
		"Welcome everyone.",
		"Slide 2: 2",
		NoNotes,
		"Slide 3",
		"See docs",
	}, paragraphs)
}

func TestDOCXWriter_DefaultTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DOCXWriter{}.Render(&buf, nil, types.DeckMeta{}))

	doc, err := docx.Parse(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.NotEmpty(t, doc.Document.Body.Items)
	p, ok := doc.Document.Body.Items[0].(*docx.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "Speaker Notes", p.String())
}

func TestPDFWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	meta := types.DeckMeta{Title: "Café deck", Subtitle: "Notes", Author: "Ada", Subject: "talks"}
	require.NoError(t, PDFWriter{}.Write(path, sampleSlides, meta))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.True(t, bytes.Contains(data, []byte("%%EOF")))
}

func TestWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "notes.pdf")
	assert.Error(t, PDFWriter{}.Write(path, sampleSlides, types.DeckMeta{}))
	assert.Error(t, DOCXWriter{}.Write(path, sampleSlides, types.DeckMeta{}))
}

func TestHexRGB(t *testing.T) {
	r, g, b := hexRGB("003366")
	assert.Equal(t, []int{0, 51, 102}, []int{r, g, b})
	r, g, b = hexRGB("nope")
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}
