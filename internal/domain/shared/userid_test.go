package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserID(t *testing.T) {
	tests := []struct {
		name    string
		raw     int64
		wantErr bool
	}{
		{"positive", 1, false},
		{"zero", 0, true},
		{"negative", -4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewUserID(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUserID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(tt.raw), id.Uint64())
		})
	}
}

func TestParseUserID(t *testing.T) {
	id, err := ParseUserID("42")
	require.NoError(t, err)
	assert.Equal(t, "42", id.String())

	_, err = ParseUserID("abc")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	_, err = ParseUserID("0")
	assert.ErrorIs(t, err, ErrInvalidUserID)
}
