package playground

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

const tokenIssuer = "dandi-dashboard"

var (
	// ErrTokenRequired is returned when no handoff token was supplied
	ErrTokenRequired = errors.New("handoff token is required")
	// ErrTokenInvalid is returned for malformed, expired or forged tokens
	ErrTokenInvalid = errors.New("invalid or expired handoff token")
	// ErrTokenUsed is returned when a token's submission is gone, either
	// redeemed already or dropped by a restart
	ErrTokenUsed = errors.New("handoff token has already been used")
)

// KeyValidator checks whether a raw key exists
type KeyValidator interface {
	ValidateAPIKey(ctx context.Context, rawKey string) bool
}

// Service carries a key submitted in the playground across to the protected
// page and validates it there exactly once. Submitted keys are held in memory
// and the token only names them.
type Service struct {
	validator KeyValidator
	secret    []byte
	ttl       time.Duration
	pending   *cache.Cache
	mu        sync.Mutex
	now       func() time.Time
}

// NewService creates a playground service. An empty secret is replaced with a
// random one, which invalidates outstanding tokens on restart.
func NewService(validator KeyValidator, secret string, ttl time.Duration) (*Service, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("failed to generate handoff secret: %w", err)
		}
		logrus.Warn("HANDOFF_SECRET not set, using a random per-process secret")
	}

	return &Service{
		validator: validator,
		secret:    key,
		ttl:       ttl,
		pending:   cache.New(ttl, 2*ttl),
		now:       time.Now,
	}, nil
}

// IssueToken stores apiKey and returns a short-lived token referencing it
func (s *Service) IssueToken(apiKey string) (string, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return "", fmt.Errorf("API key is required")
	}

	now := s.now()
	claims := &models.HandoffClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.pending.Set(claims.ID, apiKey, cache.DefaultExpiration)
	return tokenString, nil
}

// Redeem consumes tokenString and reports whether the key it refers to is valid.
// A token can be redeemed only once, whatever the validation outcome.
func (s *Service) Redeem(ctx context.Context, tokenString string) (bool, error) {
	if tokenString == "" {
		return false, ErrTokenRequired
	}

	claims, err := s.parse(tokenString)
	if err != nil {
		return false, err
	}

	apiKey, ok := s.take(claims.ID)
	if !ok {
		return false, ErrTokenUsed
	}

	return s.validator.ValidateAPIKey(ctx, apiKey), nil
}

// take removes and returns the key stored under id
func (s *Service) take(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.pending.Get(id)
	if !ok {
		return "", false
	}
	s.pending.Delete(id)
	apiKey, ok := v.(string)
	return apiKey, ok
}

func (s *Service) parse(tokenString string) (*models.HandoffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.HandoffClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*models.HandoffClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
