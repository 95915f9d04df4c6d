package auth

import (
	"time"
)

// TestJWTSecret is a signing key long enough for NewJWTService.
const TestJWTSecret = "test-jwt-secret-that-is-32-chars-long"

// NewTestJWTService creates an HMAC JWT service with an explicit secret,
// access token lifetime and clock. The refresh lifetime is 24 times the
// access lifetime. A nil timeFunc uses time.Now.
func NewTestJWTService(secret string, tokenLifetime time.Duration, timeFunc func() time.Time) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:           []byte(secret),
		tokenLifetime:        tokenLifetime,
		refreshTokenLifetime: 24 * tokenLifetime,
		timeFunc:             timeFunc,
		clockSkew:            2 * time.Minute,
	}
}
