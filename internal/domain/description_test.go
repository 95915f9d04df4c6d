package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "minimum length", raw: strings.Repeat("d", 10)},
		{name: "maximum length", raw: strings.Repeat("d", 500)},
		{name: "sentence", raw: "A place to talk about Go tooling."},
		{name: "empty", raw: "", wantErr: ErrDescriptionRequired},
		{name: "blank", raw: "            ", wantErr: ErrDescriptionRequired},
		{name: "too short", raw: "too short", wantErr: ErrDescriptionLength},
		{name: "too long", raw: strings.Repeat("d", 501), wantErr: ErrDescriptionLength},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			desc, err := NewDescription(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, desc.Value())
			assert.True(t, desc.Equals(tt.raw))
		})
	}
}
