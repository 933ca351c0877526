// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mdslides/internal/build"
	"github.com/pdiddy/mdslides/pkg/types"
)

const sampleDeck = `---
title: Bounded Iterative Vibing
author: Ada
---
# Ignored heading

## Slide 1: Title
**TEXT:**
Bounded Iterative Vibing

## Slide 2: Why
**VISUAL:**
Diagram

**TEXT:**
- Short loops
- Tight scope

**SPEAKER NOTES:**
Explain the *loop*.

---

## Slide 3: Numbers
**TEXT:**
| metric | value |
`

// setupInput writes content to a markdown file in a temp dir and returns its
// path and the temp dir.
func setupInput(t *testing.T, content string) (inputPath, tmpDir string) {
	t.Helper()
	tmpDir = t.TempDir()
	inputPath = filepath.Join(tmpDir, "deck.md")
	require.NoError(t, os.WriteFile(inputPath, []byte(content), 0o644))
	return inputPath, tmpDir
}

// recordingDeck wraps the pptx deck and records save calls.
type recordingDeck struct {
	*build.PPTXDeck
	saved   []string
	saveErr error
}

func (d *recordingDeck) Save(path string) error {
	d.saved = append(d.saved, path)
	if d.saveErr != nil {
		return d.saveErr
	}
	return d.PPTXDeck.Save(path)
}

func TestLoad(t *testing.T) {
	input, _ := setupInput(t, sampleDeck)

	src, err := Load(input, nil)
	require.NoError(t, err)
	require.Len(t, src.Slides, 3)
	assert.Equal(t, "Bounded Iterative Vibing", src.Meta.Title)
	assert.Equal(t, "Ada", src.Meta.Author)
	assert.Equal(t, "- Short loops\n- Tight scope", src.Slides[1].Content)
	assert.Equal(t, "Explain the *loop*.", src.Slides[1].SpeakerNotes)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.md"), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.Contains(t, err.Error(), "reading input")
	})

	t.Run("no slides", func(t *testing.T) {
		input, _ := setupInput(t, "# Just notes\n\nNo markers here.")
		src, err := Load(input, nil)
		assert.True(t, errors.Is(err, ErrNoSlides))
		assert.Empty(t, src.Slides)
	})

	t.Run("bad front matter", func(t *testing.T) {
		input, _ := setupInput(t, "---\ntitle: [unclosed\n---\n# Heading\n\n## Slide 1: A\n**TEXT:**\nx\n")
		src, err := Load(input, nil)
		require.NoError(t, err)
		assert.Len(t, src.Slides, 1)
	})
}

func TestRun(t *testing.T) {
	input, tmpDir := setupInput(t, sampleDeck)
	output := filepath.Join(tmpDir, "out", "nested", "deck.pptx")

	var buf bytes.Buffer
	res, err := Run(Options{Config: types.Config{Input: input, Output: output}}, &buf)
	require.NoError(t, err)

	assert.Equal(t, Result{Slides: 3, Output: output}, res)
	log := buf.String()
	for _, want := range []string{
		"Reading presentation markdown...",
		"Found 3 slides",
		"Presentation saved to: " + output,
		"Total slides: 3",
	} {
		assert.Contains(t, log, want)
	}
	assert.NotContains(t, log, "Handout")

	zr, err := zip.OpenReader(output)
	require.NoError(t, err)
	defer zr.Close()
	var slides int
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") {
			slides++
		}
	}
	assert.Equal(t, 3, slides)
}

func TestRun_NoSlides(t *testing.T) {
	input, tmpDir := setupInput(t, "nothing to see")
	output := filepath.Join(tmpDir, "deck.pptx")

	var buf bytes.Buffer
	_, err := Run(Options{Config: types.Config{Input: input, Output: output}}, &buf)
	assert.True(t, errors.Is(err, ErrNoSlides))
	assert.NoFileExists(t, output)
	assert.NotContains(t, buf.String(), "Found")
}

func TestRun_WithHandout(t *testing.T) {
	tests := []struct {
		name   string
		format types.HandoutFormat
		out    string
		want   string
	}{
		{"docx next to deck", types.HandoutDOCX, "", "deck.docx"},
		{"pdf explicit path", types.HandoutPDF, "handouts/notes.pdf", "handouts/notes.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, tmpDir := setupInput(t, sampleDeck)
			cfg := types.Config{
				Input:  input,
				Output: filepath.Join(tmpDir, "deck.pptx"),
			}
			cfg.Handout.Format = tt.format
			if tt.out != "" {
				cfg.Handout.Output = filepath.Join(tmpDir, tt.out)
			}

			var buf bytes.Buffer
			res, err := Run(Options{Config: cfg, Handout: true}, &buf)
			require.NoError(t, err)

			want := filepath.Join(tmpDir, tt.want)
			assert.Equal(t, want, res.Handout)
			assert.FileExists(t, want)
			assert.Contains(t, buf.String(), "Handout saved to: "+want)
		})
	}
}

func TestRun_UnsupportedHandout(t *testing.T) {
	input, tmpDir := setupInput(t, sampleDeck)
	cfg := types.Config{Input: input, Output: filepath.Join(tmpDir, "deck.pptx")}
	cfg.Handout.Format = "odt"

	res, err := Run(Options{Config: cfg, Handout: true}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported handout format")
	assert.FileExists(t, res.Output, "presentation is saved before the handout")
}

func TestRun_CustomDeck(t *testing.T) {
	input, tmpDir := setupInput(t, sampleDeck)
	output := filepath.Join(tmpDir, "deck.pptx")
	deck := &recordingDeck{PPTXDeck: build.NewPPTXDeck()}

	_, err := Run(Options{
		Config:  types.Config{Input: input, Output: output},
		NewDeck: func() build.Deck { return deck },
	}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{output}, deck.saved)

	props := deck.Presentation().CoreProperties()
	assert.Equal(t, "Bounded Iterative Vibing", props.Title)
	assert.Equal(t, "Ada", props.Creator)
}

func TestRun_SaveError(t *testing.T) {
	input, tmpDir := setupInput(t, sampleDeck)
	deck := &recordingDeck{PPTXDeck: build.NewPPTXDeck(), saveErr: errors.New("disk full")}

	_, err := Run(Options{
		Config:  types.Config{Input: input, Output: filepath.Join(tmpDir, "deck.pptx")},
		NewDeck: func() build.Deck { return deck },
	}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving presentation")
	assert.Contains(t, err.Error(), "disk full")
}

func TestRun_UnknownLayout(t *testing.T) {
	input, tmpDir := setupInput(t, sampleDeck)
	cfg := types.Config{Input: input, Output: filepath.Join(tmpDir, "deck.pptx")}
	cfg.Layouts.Content = "Two Content"

	_, err := Run(Options{Config: cfg}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, build.ErrUnknownLayout))
}
