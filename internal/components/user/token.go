package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/andrasnagy-data/userauth/internal/shared/config"
)

var ErrInvalidToken = errors.New("token is invalid")

type (
	// Claims is the token payload: the bound user id plus the registered
	// issued-at and expiry claims. Nothing secret goes in here, the payload
	// is readable by anyone holding the token.
	Claims struct {
		UserID string `json:"userId"`
		jwt.RegisteredClaims
	}

	// Issuer signs and verifies bearer tokens with the process-wide secret.
	Issuer struct {
		secret []byte
		ttl    time.Duration
	}
)

func NewIssuer(cfg *config.Config) *Issuer {
	return &Issuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.JWTExpiration,
	}
}

// Issue signs an HS256 token bound to the given user id, expiring after the
// configured TTL.
func (i *Issuer) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})

	return token.SignedString(i.secret)
}

// Parse checks the signature and expiry and returns the bound user id.
func (i *Issuer) Parse(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	return uuid.Parse(claims.UserID)
}
