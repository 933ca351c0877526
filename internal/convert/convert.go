// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs a markdown-to-presentation conversion end to end:
// read the source, parse slides and deck metadata, build the deck, save it,
// and optionally write a speaker-notes handout.
package convert

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdiddy/mdslides/internal/build"
	"github.com/pdiddy/mdslides/internal/extract"
	"github.com/pdiddy/mdslides/internal/handout"
	"github.com/pdiddy/mdslides/internal/meta"
	"github.com/pdiddy/mdslides/pkg/types"
)

// ErrNoSlides is returned when the source contains no slide markers.
var ErrNoSlides = errors.New("no slides found")

// Source is a parsed presentation document.
type Source struct {
	Path   string
	Slides []types.SlideRecord
	Meta   types.DeckMeta
}

// Options configures a conversion run.
type Options struct {
	Config types.Config

	// Handout also writes a speaker-notes handout in Config.Handout.Format.
	Handout bool

	// NewDeck creates the deck to render into. Nil means a .pptx deck.
	NewDeck func() build.Deck

	Logger *slog.Logger
}

// Result describes a completed conversion.
type Result struct {
	Slides  int
	Output  string
	Handout string
}

// Load reads and parses the markdown at path. A source without slides
// returns ErrNoSlides along with whatever was parsed. Malformed front matter
// in the preamble is logged and otherwise ignored.
func Load(path string, logger *slog.Logger) (Source, error) {
	logger = orDiscard(logger)

	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("reading input %s: %w", path, err)
	}

	doc := extract.ParseDocument(string(data))
	src := Source{Path: path, Slides: doc.Slides}

	src.Meta, err = meta.FromPreamble(doc.Preamble)
	if err != nil {
		logger.Warn("ignoring deck metadata", "path", path, "error", err)
	}
	logger.Debug("parsed source", "path", path, "slides", len(src.Slides), "title", src.Meta.Title)

	if len(src.Slides) == 0 {
		return src, ErrNoSlides
	}
	return src, nil
}

// Run converts opts.Config.Input to opts.Config.Output, printing progress to
// w. With no slides in the input it returns ErrNoSlides and writes nothing.
func Run(opts Options, w io.Writer) (Result, error) {
	cfg := opts.Config.WithDefaults()
	logger := orDiscard(opts.Logger)

	fmt.Fprintln(w, "Reading presentation markdown...")
	fmt.Fprintln(w, "Parsing slides...")
	src, err := Load(cfg.Input, logger)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "Found %d slides\n", len(src.Slides))

	fmt.Fprintln(w, "Creating PowerPoint presentation...")
	newDeck := opts.NewDeck
	if newDeck == nil {
		newDeck = func() build.Deck { return build.NewPPTXDeck() }
	}
	deck := newDeck()
	if err := build.New(cfg, logger).Build(deck, src.Slides, src.Meta); err != nil {
		return Result{}, fmt.Errorf("building presentation: %w", err)
	}

	if err := ensureDir(cfg.Output); err != nil {
		return Result{}, err
	}
	if err := deck.Save(cfg.Output); err != nil {
		return Result{}, fmt.Errorf("saving presentation %s: %w", cfg.Output, err)
	}
	fmt.Fprintf(w, "Presentation saved to: %s\n", cfg.Output)
	fmt.Fprintf(w, "Total slides: %d\n", len(src.Slides))

	res := Result{Slides: len(src.Slides), Output: cfg.Output}
	if opts.Handout {
		res.Handout, err = WriteHandout(cfg, src, w)
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

// WriteHandout writes the speaker-notes handout for src and returns its path.
// The path comes from cfg.Handout.Output, or sits next to cfg.Output.
func WriteHandout(cfg types.Config, src Source, w io.Writer) (string, error) {
	cfg = cfg.WithDefaults()
	writer, err := handout.ForFormat(cfg.Handout.Format)
	if err != nil {
		return "", err
	}

	path := cfg.Handout.Output
	if path == "" {
		path = handout.DefaultPath(cfg.Output, cfg.Handout.Format)
	}
	if err := ensureDir(path); err != nil {
		return "", err
	}
	if err := writer.Write(path, src.Slides, src.Meta); err != nil {
		return "", fmt.Errorf("writing handout %s: %w", path, err)
	}
	fmt.Fprintf(w, "Handout saved to: %s\n", path)
	return path, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return nil
}

func orDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}
