// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default paths used when neither flags nor configuration name an input or
// output file.
const (
	DefaultInput  = "research/presentation-bounded-iterative-vibing.md"
	DefaultOutput = "research/bounded-iterative-vibing-presentation.pptx"
)

// CanvasConfig is the slide size in inches.
type CanvasConfig struct {
	Width  float64 `json:"width" yaml:"width" mapstructure:"width"`
	Height float64 `json:"height" yaml:"height" mapstructure:"height"`
}

// ThemeConfig holds the fixed color and size scheme applied to every slide.
// Sizes are in points; colors are six-digit RGB hex strings.
type ThemeConfig struct {
	// FallbackTitle replaces an empty title on the first slide.
	FallbackTitle string `json:"fallback_title" yaml:"fallback_title" mapstructure:"fallback_title"`

	TitleSize  float64 `json:"title_size" yaml:"title_size" mapstructure:"title_size"`
	TitleColor string  `json:"title_color" yaml:"title_color" mapstructure:"title_color"`

	BulletSize       float64 `json:"bullet_size" yaml:"bullet_size" mapstructure:"bullet_size"`
	BulletSpaceAfter float64 `json:"bullet_space_after" yaml:"bullet_space_after" mapstructure:"bullet_space_after"`

	// FallbackSize is used for the single paragraph rendered when content
	// yields no bullets.
	FallbackSize float64 `json:"fallback_size" yaml:"fallback_size" mapstructure:"fallback_size"`

	// MaxBullets caps the bullets rendered per slide; extra bullets are dropped.
	MaxBullets int `json:"max_bullets" yaml:"max_bullets" mapstructure:"max_bullets"`

	// FallbackMaxChars truncates the raw content (in characters) before it is
	// rendered as a single paragraph.
	FallbackMaxChars int `json:"fallback_max_chars" yaml:"fallback_max_chars" mapstructure:"fallback_max_chars"`
}

// LayoutConfig names the template layouts used for each kind of slide.
type LayoutConfig struct {
	Title   string `json:"title" yaml:"title" mapstructure:"title"`
	Content string `json:"content" yaml:"content" mapstructure:"content"`
	Table   string `json:"table" yaml:"table" mapstructure:"table"`
}

// HandoutFormat selects the speaker-notes handout file type.
type HandoutFormat string

const (
	HandoutDOCX HandoutFormat = "docx"
	HandoutPDF  HandoutFormat = "pdf"
)

// HandoutConfig controls the optional speaker-notes handout.
type HandoutConfig struct {
	Format HandoutFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Output is the handout path. Empty means the presentation path with the
	// format's extension.
	Output string `json:"output" yaml:"output" mapstructure:"output"`
}

// Config groups all settings for a conversion run.
type Config struct {
	Input    string        `json:"input" yaml:"input" mapstructure:"input"`
	Output   string        `json:"output" yaml:"output" mapstructure:"output"`
	LogLevel string        `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Canvas   CanvasConfig  `json:"canvas" yaml:"canvas" mapstructure:"canvas"`
	Theme    ThemeConfig   `json:"theme" yaml:"theme" mapstructure:"theme"`
	Layouts  LayoutConfig  `json:"layouts" yaml:"layouts" mapstructure:"layouts"`
	Handout  HandoutConfig `json:"handout" yaml:"handout" mapstructure:"handout"`
}

// DefaultTheme returns the deep-blue scheme used by every deck.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		FallbackTitle:    "Bounded Iterative Vibing",
		TitleSize:        44,
		TitleColor:       "003366",
		BulletSize:       18,
		BulletSpaceAfter: 12,
		FallbackSize:     20,
		MaxBullets:       8,
		FallbackMaxChars: 500,
	}
}

// DefaultLayouts returns the layout names of the built-in template.
func DefaultLayouts() LayoutConfig {
	return LayoutConfig{
		Title:   "Title Slide",
		Content: "Title and Content",
		Table:   "Title Only",
	}
}

// DefaultConfig returns the configuration that reproduces the fixed
// single-file conversion.
func DefaultConfig() Config {
	return Config{
		Input:    DefaultInput,
		Output:   DefaultOutput,
		LogLevel: "warn",
		Canvas:   CanvasConfig{Width: 10, Height: 7.5},
		Theme:    DefaultTheme(),
		Layouts:  DefaultLayouts(),
		Handout:  HandoutConfig{Format: HandoutDOCX},
	}
}

// WithDefaults fills zero-valued fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Input == "" {
		c.Input = d.Input
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Canvas.Width <= 0 {
		c.Canvas.Width = d.Canvas.Width
	}
	if c.Canvas.Height <= 0 {
		c.Canvas.Height = d.Canvas.Height
	}
	c.Theme = c.Theme.withDefaults(d.Theme)
	if c.Layouts.Title == "" {
		c.Layouts.Title = d.Layouts.Title
	}
	if c.Layouts.Content == "" {
		c.Layouts.Content = d.Layouts.Content
	}
	if c.Layouts.Table == "" {
		c.Layouts.Table = d.Layouts.Table
	}
	if c.Handout.Format == "" {
		c.Handout.Format = d.Handout.Format
	}
	return c
}

func (t ThemeConfig) withDefaults(d ThemeConfig) ThemeConfig {
	if t.FallbackTitle == "" {
		t.FallbackTitle = d.FallbackTitle
	}
	if t.TitleSize <= 0 {
		t.TitleSize = d.TitleSize
	}
	if t.TitleColor == "" {
		t.TitleColor = d.TitleColor
	}
	if t.BulletSize <= 0 {
		t.BulletSize = d.BulletSize
	}
	if t.BulletSpaceAfter <= 0 {
		t.BulletSpaceAfter = d.BulletSpaceAfter
	}
	if t.FallbackSize <= 0 {
		t.FallbackSize = d.FallbackSize
	}
	if t.MaxBullets <= 0 {
		t.MaxBullets = d.MaxBullets
	}
	if t.FallbackMaxChars <= 0 {
		t.FallbackMaxChars = d.FallbackMaxChars
	}
	return t
}
