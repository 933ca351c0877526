// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package build

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/pdiddy/mdslides/internal/extract"
	"github.com/pdiddy/mdslides/pkg/types"
)

// LayoutKind classifies a slide for layout selection.
type LayoutKind int

const (
	LayoutTitle LayoutKind = iota
	LayoutContent
	LayoutTable
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutTitle:
		return "title"
	case LayoutTable:
		return "table"
	default:
		return "content"
	}
}

// textboxBox is where body text goes on layouts without a body region.
var textboxBox = Box{X: 1, Y: 2, W: 8, H: 4.5}

// Builder renders slide records with a fixed theme.
type Builder struct {
	Canvas  types.CanvasConfig
	Theme   types.ThemeConfig
	Layouts types.LayoutConfig
	Logger  *slog.Logger
}

// New returns a Builder for cfg. Zero settings take their defaults.
func New(cfg types.Config, logger *slog.Logger) *Builder {
	cfg = cfg.WithDefaults()
	return &Builder{
		Canvas:  cfg.Canvas,
		Theme:   cfg.Theme,
		Layouts: cfg.Layouts,
		Logger:  logger,
	}
}

// Layout picks the layout kind for the slide at rank index. The first slide
// is always a title slide; content mentioning a table or containing a pipe
// gets the table layout.
func Layout(index int, content string) LayoutKind {
	switch {
	case index == 0:
		return LayoutTitle
	case strings.Contains(strings.ToLower(content), "table"), strings.Contains(content, "|"):
		return LayoutTable
	default:
		return LayoutContent
	}
}

// LayoutName returns the template layout name configured for kind.
func (b *Builder) LayoutName(kind LayoutKind) string {
	switch kind {
	case LayoutTitle:
		return b.Layouts.Title
	case LayoutTable:
		return b.Layouts.Table
	default:
		return b.Layouts.Content
	}
}

// Build adds one slide per record to deck, in order, and stores meta as the
// deck's document properties. It does not save the deck.
func (b *Builder) Build(deck Deck, slides []types.SlideRecord, meta types.DeckMeta) error {
	log := b.logger()

	available := deck.Layouts()
	for _, name := range []string{b.Layouts.Title, b.Layouts.Content, b.Layouts.Table} {
		if !slices.Contains(available, name) {
			return fmt.Errorf("%w: %q (template has %s)", ErrUnknownLayout, name, strings.Join(available, ", "))
		}
	}

	deck.SetCanvasSize(b.Canvas.Width, b.Canvas.Height)
	deck.SetMetadata(meta)

	for i, rec := range slides {
		kind := Layout(i, rec.Content)
		name := b.LayoutName(kind)
		slide, err := deck.AddSlide(name)
		if err != nil {
			return fmt.Errorf("adding slide %d: %w", i+1, err)
		}
		log.Debug("slide added", "rank", i, "layout", name, "title", rec.Title)

		if title, ok := slide.TitleRegion(); ok {
			b.renderTitle(title, b.titleFor(i, rec.Title, meta))
		}

		if rec.Content != "" {
			body, ok := slide.BodyRegion()
			if !ok {
				body = slide.AddTextbox(textboxBox)
			}
			b.renderBody(body, rec.Content)
		}

		if rec.SpeakerNotes != "" {
			slide.NotesRegion().SetText(extract.CleanMarkdown(rec.SpeakerNotes))
		}
	}
	return nil
}

// titleFor returns the title shown on the slide at rank index. Only the
// first slide falls back, to the deck title and then the theme's title.
func (b *Builder) titleFor(index int, title string, meta types.DeckMeta) string {
	if title != "" || index != 0 {
		return title
	}
	if meta.Title != "" {
		return meta.Title
	}
	return b.Theme.FallbackTitle
}

func (b *Builder) renderTitle(tf TextFrame, title string) {
	tf.Clear()
	tf.AddParagraph(title, TextStyle{
		Size:  b.Theme.TitleSize,
		Bold:  true,
		Color: b.Theme.TitleColor,
	})
}

// renderBody writes up to MaxBullets bullets, or the truncated and cleaned
// content as one paragraph when there are none.
func (b *Builder) renderBody(tf TextFrame, content string) {
	tf.Clear()
	tf.SetWordWrap(true)

	bullets := extract.ExtractBulletPoints(content)
	if len(bullets) == 0 {
		text := extract.CleanMarkdown(extract.Truncate(content, b.Theme.FallbackMaxChars))
		tf.AddParagraph(text, TextStyle{Size: b.Theme.FallbackSize})
		return
	}

	if len(bullets) > b.Theme.MaxBullets {
		b.logger().Debug("bullets dropped", "kept", b.Theme.MaxBullets, "total", len(bullets))
		bullets = bullets[:b.Theme.MaxBullets]
	}
	style := TextStyle{Size: b.Theme.BulletSize, SpaceAfter: b.Theme.BulletSpaceAfter}
	for _, bullet := range bullets {
		tf.AddParagraph(bullet, style)
	}
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return b.Logger
}
