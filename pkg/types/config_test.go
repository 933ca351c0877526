// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 10.0, cfg.Canvas.Width)
	assert.Equal(t, 7.5, cfg.Canvas.Height)
	assert.Equal(t, 44.0, cfg.Theme.TitleSize)
	assert.Equal(t, "003366", cfg.Theme.TitleColor)
	assert.Equal(t, 18.0, cfg.Theme.BulletSize)
	assert.Equal(t, 12.0, cfg.Theme.BulletSpaceAfter)
	assert.Equal(t, 20.0, cfg.Theme.FallbackSize)
	assert.Equal(t, 8, cfg.Theme.MaxBullets)
	assert.Equal(t, 500, cfg.Theme.FallbackMaxChars)
	assert.Equal(t, "Bounded Iterative Vibing", cfg.Theme.FallbackTitle)
	assert.Equal(t, HandoutDOCX, cfg.Handout.Format)
}

func TestWithDefaults(t *testing.T) {
	tests := []struct {
		name  string
		in    Config
		check func(t *testing.T, got Config)
	}{
		{
			name: "zero config becomes default config",
			in:   Config{},
			check: func(t *testing.T, got Config) {
				assert.Equal(t, DefaultConfig(), got)
			},
		},
		{
			name: "explicit values are kept",
			in: Config{
				Input:   "deck.md",
				Output:  "deck.pptx",
				Theme:   ThemeConfig{MaxBullets: 3, TitleColor: "FF0000"},
				Layouts: LayoutConfig{Table: "Blank"},
			},
			check: func(t *testing.T, got Config) {
				assert.Equal(t, "deck.md", got.Input)
				assert.Equal(t, "deck.pptx", got.Output)
				assert.Equal(t, 3, got.Theme.MaxBullets)
				assert.Equal(t, "FF0000", got.Theme.TitleColor)
				assert.Equal(t, 44.0, got.Theme.TitleSize)
				assert.Equal(t, "Blank", got.Layouts.Table)
				assert.Equal(t, "Title Slide", got.Layouts.Title)
			},
		},
		{
			name: "negative numbers fall back to defaults",
			in: Config{
				Canvas: CanvasConfig{Width: -1, Height: 0},
				Theme:  ThemeConfig{FallbackMaxChars: -5},
			},
			check: func(t *testing.T, got Config) {
				assert.Equal(t, 10.0, got.Canvas.Width)
				assert.Equal(t, 7.5, got.Canvas.Height)
				assert.Equal(t, 500, got.Theme.FallbackMaxChars)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.in.WithDefaults())
		})
	}
}

func TestSlideRecordHelpers(t *testing.T) {
	first := SlideRecord{Index: 0}
	second := SlideRecord{Index: 1, SpeakerNotes: "say hi"}

	assert.True(t, first.IsTitleSlide())
	assert.False(t, second.IsTitleSlide())
	assert.False(t, first.HasNotes())
	assert.True(t, second.HasNotes())
}
