// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

// PlaceholderType is the DrawingML placeholder kind of a layout region.
type PlaceholderType string

const (
	PlaceholderCenteredTitle PlaceholderType = "ctrTitle"
	PlaceholderTitle         PlaceholderType = "title"
	PlaceholderSubtitle      PlaceholderType = "subTitle"
	PlaceholderBody          PlaceholderType = "body"
)

// IsTitle reports whether the placeholder holds a slide title.
func (t PlaceholderType) IsTitle() bool {
	return t == PlaceholderTitle || t == PlaceholderCenteredTitle
}

// Box is a rectangle expressed as fractions of the slide width and height,
// so layouts follow whatever slide size the presentation uses.
type Box struct {
	X, Y, W, H float64
}

// Placeholder is a region a layout exposes to its slides.
type Placeholder struct {
	Type PlaceholderType
	// Idx is the placeholder index slides use to bind to the region. Title
	// placeholders use 0; the body or subtitle region uses 1.
	Idx  int
	Name string
	Box  Box
}

// Layout is a named slide template.
type Layout struct {
	Name string

	// kind is the ST_SlideLayoutType written to the layout part.
	kind string

	Placeholders []Placeholder
}

// Placeholder returns the layout's placeholder with the given index.
func (l *Layout) Placeholder(idx int) (Placeholder, bool) {
	for _, ph := range l.Placeholders {
		if ph.Idx == idx {
			return ph, true
		}
	}
	return Placeholder{}, false
}

// HasTitle reports whether the layout exposes a title region.
func (l *Layout) HasTitle() bool {
	for _, ph := range l.Placeholders {
		if ph.Type.IsTitle() {
			return true
		}
	}
	return false
}

// Names of the layouts in the built-in template.
const (
	LayoutTitleSlide      = "Title Slide"
	LayoutTitleAndContent = "Title and Content"
	LayoutTitleOnly       = "Title Only"
	LayoutBlank           = "Blank"
)

var (
	titleBox    = Box{X: 0.05, Y: 0.04, W: 0.90, H: 0.1667}
	bodyBox     = Box{X: 0.05, Y: 0.2333, W: 0.90, H: 0.66}
	ctrTitleBox = Box{X: 0.075, Y: 0.3106, W: 0.85, H: 0.2144}
	subTitleBox = Box{X: 0.15, Y: 0.5667, W: 0.70, H: 0.2556}
)

// defaultLayouts returns the layouts of the built-in slide master, in the
// order they appear in the package.
func defaultLayouts() []*Layout {
	return []*Layout{
		{
			Name: LayoutTitleSlide,
			kind: "title",
			Placeholders: []Placeholder{
				{Type: PlaceholderCenteredTitle, Idx: 0, Name: "Title 1", Box: ctrTitleBox},
				{Type: PlaceholderSubtitle, Idx: 1, Name: "Subtitle 2", Box: subTitleBox},
			},
		},
		{
			Name: LayoutTitleAndContent,
			kind: "obj",
			Placeholders: []Placeholder{
				{Type: PlaceholderTitle, Idx: 0, Name: "Title 1", Box: titleBox},
				{Type: PlaceholderBody, Idx: 1, Name: "Content Placeholder 2", Box: bodyBox},
			},
		},
		{
			Name: LayoutTitleOnly,
			kind: "titleOnly",
			Placeholders: []Placeholder{
				{Type: PlaceholderTitle, Idx: 0, Name: "Title 1", Box: titleBox},
			},
		},
		{
			Name: LayoutBlank,
			kind: "blank",
		},
	}
}
