package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avelis/daybook/internal/common"
)

// Claims is the claim set carried in a session token: the subject user ID
// and display name plus the registered expiry/issued-at claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	Username string `json:"username"`
}

// TokenCodec signs and verifies session tokens with a process-wide HMAC
// secret. The signing algorithm is pinned to HS256; tokens claiming any
// other algorithm are rejected during verification.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, ttl: ttl}
}

// TTL returns the validity duration applied to signed tokens.
func (c *TokenCodec) TTL() time.Duration { return c.ttl }

// Sign issues a token for the given user, valid for the codec's TTL.
func (c *TokenCodec) Sign(userID, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID:   userID,
		Username: username,
	})

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify validates the signature and expiry of tokenString and recovers its
// claims. Failures are mapped onto the common sentinel errors:
// common.ErrTokenExpired, common.ErrInvalidSignature, common.ErrTokenMalformed.
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrInvalidSignature
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, common.ErrInvalidSignature
	}

	return claims, nil
}
