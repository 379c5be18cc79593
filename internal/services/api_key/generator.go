package api_key

import (
	"crypto/rand"
	"math/big"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
)

const (
	devKeyPrefix  = "dandi-dev-"
	prodKeyPrefix = "dandi-prod-"

	keyAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	keyRandomLength = 24
)

// KeyPrefix returns the prefix every key of the given type starts with
func KeyPrefix(keyType models.APIKeyType) string {
	if keyType == models.APIKeyTypeProd {
		return prodKeyPrefix
	}
	return devKeyPrefix
}

// GenerateAPIKey returns a new random key for keyType
func GenerateAPIKey(keyType models.APIKeyType) (string, error) {
	prefix := KeyPrefix(keyType)
	max := big.NewInt(int64(len(keyAlphabet)))

	buf := make([]byte, 0, len(prefix)+keyRandomLength)
	buf = append(buf, prefix...)
	for i := 0; i < keyRandomLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf = append(buf, keyAlphabet[n.Int64()])
	}
	return string(buf), nil
}
