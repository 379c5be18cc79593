package api_key

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskAPIKey(t *testing.T) {
	stars := strings.Repeat("*", 24)

	tests := []struct {
		name string
		key  string
		want string
	}{
		{"dev key", "dandi-dev-AbCdEfGhIjKlMnOpQrStUvWx", "dandi-dev-" + stars},
		{"prod key", "dandi-prod-AbCdEfGhIjKlMnOpQrStUvWx", "dandi-prod-" + stars},
		{"twelve chars unchanged", "abcdefghijkl", "abcdefghijkl"},
		{"empty unchanged", "", ""},
		{"thirteen chars without hyphens", "abcdefghijklm", stars},
		{"single hyphen", "abcdef-ghijklmnop", stars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskAPIKey(tt.key))
		})
	}
}

func TestMaskAPIKey_NeverRevealsSuffix(t *testing.T) {
	key, err := GenerateAPIKey("prod")
	assert.NoError(t, err)

	masked := MaskAPIKey(key)
	assert.NotContains(t, masked, key[len("dandi-prod-"):])
}
