package api_key

import "strings"

const (
	maskChar       = "*"
	maskLength     = 24
	minMaskableLen = 13
)

// MaskAPIKey hides everything after the second hyphen of key.
// Keys shorter than 13 bytes are returned unchanged. A key with fewer than
// two hyphens has no recognisable prefix and is masked entirely.
func MaskAPIKey(key string) string {
	if len(key) < minMaskableLen {
		return key
	}

	prefixEnd := 0
	if first := strings.IndexByte(key, '-'); first >= 0 {
		if second := strings.IndexByte(key[first+1:], '-'); second >= 0 {
			prefixEnd = first + 1 + second + 1
		}
	}

	return key[:prefixEnd] + strings.Repeat(maskChar, maskLength)
}
