package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"https url", "https://github.com/curl/curl", "curl/curl", false},
		{"trailing git suffix", "https://github.com/madler/zlib.git", "madler/zlib", false},
		{"trailing slash", "https://github.com/openssl/openssl/", "openssl/openssl", false},
		{"ssh form", "git@github.com:libexpat/libexpat.git", "libexpat/libexpat", false},
		{"deep path keeps owner/name", "https://github.com/o/r/tree/main", "o/r", false},
		{"whitespace trimmed", "  https://github.com/o/r ", "o/r", false},
		{"no path", "https://github.com", "", true},
		{"owner only", "https://github.com/solo", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Slug(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
