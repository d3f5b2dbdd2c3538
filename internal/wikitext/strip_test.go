package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for StripMarkup:
// - Code tags unwrapped
// - Wikilinks reduced to display text
// - Content-bearing templates unwrapped, others removed
// - Bold/italic quote runs removed
// - Leading cell attributes removed
// - HTML tags removed
// - Whitespace collapsed and trimmed

func TestStripMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "code tags unwrapped",
			input: "An <code>entity_id</code> value",
			want:  "An entity_id value",
		},
		{
			name:  "wikilink with label keeps label",
			input: "See [[Entity metadata|metadata]] for details",
			want:  "See metadata for details",
		},
		{
			name:  "bare wikilink keeps target",
			input: "See [[Painting]] for details",
			want:  "See Painting for details",
		},
		{
			name:  "metadata type template unwrapped",
			input: "{{Metadata type|VarInt}}",
			want:  "VarInt",
		},
		{
			name:  "metadata id template unwrapped",
			input: "{{Metadata id|light_level}}",
			want:  "light_level",
		},
		{
			name:  "type template unwrapped",
			input: "{{Type|Boolean}}",
			want:  "Boolean",
		},
		{
			name:  "other templates removed",
			input: "Value {{Needs verification}} here",
			want:  "Value here",
		},
		{
			name:  "bold and italic removed",
			input: "'''bold''' and ''italic'' text",
			want:  "bold and italic text",
		},
		{
			name:  "rowspan attribute removed",
			input: `rowspan="2"| Shared cell`,
			want:  "Shared cell",
		},
		{
			name:  "style attribute removed",
			input: `style="background:#eee"| Styled cell`,
			want:  "Styled cell",
		},
		{
			name:  "html tags removed",
			input: "Line one<br/>line two",
			want:  "Line oneline two",
		},
		{
			name:  "whitespace collapsed",
			input: "  too    many\t spaces  ",
			want:  "too many spaces",
		},
		{
			name:  "empty stays empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StripMarkup(tt.input))
		})
	}
}
