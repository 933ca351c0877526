// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mdslides/internal/build"
	"github.com/pdiddy/mdslides/internal/convert"
	"github.com/pdiddy/mdslides/pkg/types"
)

const deckMarkdown = `# Bounded Iterative Vibing

## Slide 1: Opening
**TEXT:**
Bounded Iterative Vibing

## Slide 2: Loop
**TEXT:**
- Plan
- Build
- Check

**SPEAKER NOTES:**
Walk through the loop.

## Slide 3: 数据
**TEXT:**
| a | b |
`

func writeDeck(t *testing.T, content string) (inputPath, tmpDir string) {
	t.Helper()
	tmpDir = t.TempDir()
	inputPath = filepath.Join(tmpDir, "deck.md")
	require.NoError(t, os.WriteFile(inputPath, []byte(content), 0o644))
	return inputPath, tmpDir
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	setDefaults()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadConfig_Environment(t *testing.T) {
	viper.Reset()
	setDefaults()
	viper.SetEnvPrefix("MDSLIDES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	t.Setenv("MDSLIDES_THEME_MAX_BULLETS", "5")
	t.Setenv("MDSLIDES_LAYOUTS_TABLE", "Blank")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Theme.MaxBullets)
	assert.Equal(t, "Blank", cfg.Layouts.Table)
	assert.Equal(t, 44.0, cfg.Theme.TitleSize)
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		_, err := newLogger(level)
		assert.NoError(t, err, level)
	}
	_, err := newLogger("loud")
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	err := report(&buf, func() error { return convert.ErrNoSlides })
	assert.NoError(t, err)
	assert.Equal(t, noSlidesMessage+"\n", buf.String())

	buf.Reset()
	boom := errors.New("boom")
	assert.Equal(t, boom, report(&buf, func() error { return boom }))
	assert.Empty(t, buf.String())
}

func TestBulletCount(t *testing.T) {
	assert.Equal(t, 3, bulletCount("- a\n- b\n- c", 8))
	assert.Equal(t, 2, bulletCount("- a\n- b\n- c", 2))
	assert.Equal(t, 0, bulletCount("# heading", 8))
}

func TestWriteTable(t *testing.T) {
	src := convert.Source{
		Meta: types.DeckMeta{Title: "Deck"},
		Slides: []types.SlideRecord{
			{Index: 0, Content: "Opening"},
			{Index: 1, Title: "2", Content: "- a\n- b", SpeakerNotes: "n"},
			{Index: 2, Title: "数据", Content: "| a |"},
		},
	}
	var buf bytes.Buffer
	writeTable(&buf, build.New(types.Config{}, nil), src)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "#  LAYOUT"))
	assert.Contains(t, lines[1], "Title Slide")
	assert.Contains(t, lines[1], "(Bounded Iterative Vibing)")
	assert.Contains(t, lines[2], "Title and Content")
	assert.True(t, strings.HasSuffix(lines[2], "yes"))
	assert.Contains(t, lines[3], "Title Only")
	assert.Contains(t, buf.String(), "Deck title: Deck")
	assert.Contains(t, buf.String(), "Total slides: 3")

	// The NOTES column starts at the same display offset on every row.
	col := runewidth.StringWidth(lines[0][:strings.Index(lines[0], "NOTES")])
	for _, line := range lines[1:4] {
		i := strings.LastIndex(line, "  ") + 2
		assert.Equal(t, col, runewidth.StringWidth(line[:i]), line)
	}
}

func TestConvertCommand(t *testing.T) {
	input, tmpDir := writeDeck(t, deckMarkdown)
	output := filepath.Join(tmpDir, "out", "deck.pptx")

	out, err := execute(t, "convert", input, output)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 3 slides")
	assert.Contains(t, out, "Presentation saved to: "+output)
	assert.FileExists(t, output)
}

func TestConvertCommand_NoSlides(t *testing.T) {
	input, tmpDir := writeDeck(t, "# nothing here")
	output := filepath.Join(tmpDir, "deck.pptx")

	out, err := execute(t, "convert", input, output)
	require.NoError(t, err)
	assert.Contains(t, out, noSlidesMessage)
	assert.NoFileExists(t, output)
}

func TestConvertCommand_MissingInput(t *testing.T) {
	_, err := execute(t, "convert", filepath.Join(t.TempDir(), "missing.md"), filepath.Join(t.TempDir(), "x.pptx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
}

func TestInspectCommand_JSON(t *testing.T) {
	input, _ := writeDeck(t, deckMarkdown)

	out, err := execute(t, "inspect", input, "--json")
	require.NoError(t, err)

	var doc inspection
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, input, doc.Source)
	assert.Equal(t, "Bounded Iterative Vibing", doc.Meta.Title)
	require.Len(t, doc.Slides, 3)
	assert.Equal(t, "Walk through the loop.", doc.Slides[1].SpeakerNotes)
}

func TestWriteYAML(t *testing.T) {
	doc := inspection{
		Source: "deck.md",
		Slides: []types.SlideRecord{{Index: 0, Title: "1", Content: "x"}},
	}
	var buf bytes.Buffer
	require.NoError(t, writeYAML(&buf, doc))

	var got inspection
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, doc, got)
}

func TestHandoutCommand(t *testing.T) {
	input, tmpDir := writeDeck(t, deckMarkdown)
	output := filepath.Join(tmpDir, "notes.pdf")

	out, err := execute(t, "handout", input, output, "--format", "pdf")
	require.NoError(t, err)
	assert.Contains(t, out, "Handout saved to: "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mdslides dev\n", out)
}
