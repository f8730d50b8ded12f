package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	r := NewRenderer()
	tests := []struct {
		name     string
		md       string
		contains []string
		absent   []string
	}{
		{
			name:     "bold",
			md:       "**Hi**",
			contains: []string{"<strong>Hi</strong>"},
		},
		{
			name:     "heading and list",
			md:       "# Summary\n\n- one\n- two",
			contains: []string{"<h1>Summary</h1>", "<li>one</li>", "<li>two</li>"},
		},
		{
			name:     "table",
			md:       "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "strikethrough",
			md:       "~~old~~",
			contains: []string{"<del>old</del>"},
		},
		{
			name:   "script is stripped",
			md:     "hello <script>alert(1)</script>",
			absent: []string{"<script", "alert(1)</script>"},
		},
		{
			name:     "links get nofollow",
			md:       "[site](https://example.com)",
			contains: []string{`href="https://example.com"`, "nofollow"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.ToHTML(tt.md)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestToHTMLEmpty(t *testing.T) {
	out, err := NewRenderer().ToHTML("")
	require.NoError(t, err)
	assert.Empty(t, out)
}
