package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParagraphNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "tags stripped and trimmed", raw: "  <p>hi there</p>  ", want: "hi there"},
		{name: "three spaces collapsed", raw: "a   b", want: "a b"},
		{name: "four spaces collapsed", raw: "a    b", want: "a b"},
		{name: "two spaces kept", raw: "a  b", want: "a  b"},
		{name: "mixed whitespace run collapsed", raw: "one\n\t\ntwo", want: "one two"},
		{name: "entities untouched", raw: "1 &lt; 2 &amp;&amp; 3", want: "1 &lt; 2 &amp;&amp; 3"},
		{name: "attributes inside tags removed", raw: `<a href="x">link</a> text`, want: "link text"},
		{name: "edge tag exposes whitespace", raw: "<br>   abc", want: "abc"},
		{name: "unterminated tag kept", raw: "a < b always", want: "a < b always"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := NewParagraph(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Value())
			assert.Equal(t, len([]rune(tt.want)), p.Len())
		})
	}
}

func TestNewParagraphRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "empty", raw: "", wantErr: ErrParagraphRequired},
		{name: "blank", raw: " \n\t ", wantErr: ErrParagraphRequired},
		{name: "two characters after stripping", raw: "<b>hi</b>", wantErr: ErrParagraphTooShort},
		{name: "html only", raw: "<div></div>", wantErr: ErrParagraphTooShort},
		{name: "too long", raw: strings.Repeat("w", 2001), wantErr: ErrParagraphTooLong},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewParagraph(tt.raw)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, KindBadRequest, KindOf(err))
		})
	}
}

func TestNewParagraphLengthMeasuredAfterNormalization(t *testing.T) {
	t.Parallel()

	raw := "<p>" + strings.Repeat("w", 2000) + "</p>"
	p, err := NewParagraph(raw)
	require.NoError(t, err)
	assert.Equal(t, 2000, p.Len())
}

func TestNewParagraphIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"  <p>hi there</p>  ",
		"a    b      c",
		"<em>  </em>   body text  ",
		"line one\n\n\nline two",
		"plain",
		"<<a>b> trailing",
	}

	for _, in := range inputs {
		first, err := NewParagraph(in)
		require.NoError(t, err, in)
		second, err := NewParagraph(first.Value())
		require.NoError(t, err, in)
		assert.Equal(t, first.Value(), second.Value(), in)
	}
}
