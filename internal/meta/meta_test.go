// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mdslides/pkg/types"
)

func TestFromPreamble(t *testing.T) {
	tests := []struct {
		name     string
		preamble string
		want     types.DeckMeta
	}{
		{
			name:     "heading only",
			preamble: "# Bounded Iterative Vibing\n\nIntro text.\n\n---\n\n",
			want:     types.DeckMeta{Title: "Bounded Iterative Vibing"},
		},
		{
			name:     "heading with emphasis",
			preamble: "# The **Loop** Talk\n",
			want:     types.DeckMeta{Title: "The Loop Talk"},
		},
		{
			name:     "second level heading ignored",
			preamble: "## Agenda\n\n# Real Title\n",
			want:     types.DeckMeta{Title: "Real Title"},
		},
		{
			name:     "setext heading",
			preamble: "Deck Name\n=========\n",
			want:     types.DeckMeta{Title: "Deck Name"},
		},
		{
			name: "front matter",
			preamble: `---
title: From Front Matter
subtitle: A subtitle
author: Jo Writer
subject: Engineering
keywords: [loops, shipping]
---

# Heading Title
`,
			want: types.DeckMeta{
				Title:    "From Front Matter",
				Subtitle: "A subtitle",
				Author:   "Jo Writer",
				Subject:  "Engineering",
				Keywords: []string{"loops", "shipping"},
			},
		},
		{
			name:     "front matter without title falls back to heading",
			preamble: "---\nauthor: Jo\n---\n# Heading Title\n",
			want:     types.DeckMeta{Title: "Heading Title", Author: "Jo"},
		},
		{
			name:     "empty",
			preamble: "",
			want:     types.DeckMeta{},
		},
		{
			name:     "no heading",
			preamble: "Just words.\n",
			want:     types.DeckMeta{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromPreamble(tt.preamble)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromPreamble_MalformedFrontMatter(t *testing.T) {
	got, err := FromPreamble("---\ntitle: [unclosed\n---\n# Heading\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing front matter")
	assert.Empty(t, got.Author)
}
