package cursor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignerRequiresSecret(t *testing.T) {
	_, err := NewSigner("")
	assert.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s, err := NewSigner("test-secret")
	require.NoError(t, err)

	createdAt := time.Date(2026, 3, 14, 9, 26, 53, 589793, time.UTC)
	id := "3f1c2d44-9a10-4a5e-8f7b-1f2e3d4c5b6a"

	token := s.Encode(createdAt, id)
	gotTime, gotID, err := s.Decode(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeRejectsTamperedCursor(t *testing.T) {
	s, err := NewSigner("test-secret")
	require.NoError(t, err)

	token := s.Encode(time.Now(), "some-id")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-cursor"},
		{"empty", ""},
		{"flipped prefix", "A" + token[1:]},
		{"truncated", token[:len(token)-4]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := s.Decode(tt.token)
			assert.ErrorIs(t, err, ErrInvalidCursor)
		})
	}
}

func TestDecodeRejectsForeignSecret(t *testing.T) {
	a, err := NewSigner("secret-a")
	require.NoError(t, err)
	b, err := NewSigner("secret-b")
	require.NoError(t, err)

	token := a.Encode(time.Now(), "row-id")
	_, _, err = b.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidCursor)
}
