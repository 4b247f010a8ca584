package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"youtube-companion/infrastructure/logger"
)

const stateAudience = "oauth-state"

var ErrInvalidState = errors.New("invalid state")

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

// GenerateState signs a short-lived OAuth state parameter.
func GenerateState(secretKey string, ttl time.Duration) (string, error) {
	now := GetCurrentTime()
	claims := jwt.StandardClaims{
		Id:        uuid.NewString(),
		Audience:  stateAudience,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generate state token")
		return "", err
	}
	return signed, nil
}

// VerifyState checks signature, audience and expiry.
func VerifyState(secretKey, state string) error {
	if state == "" {
		return fmt.Errorf("%w: missing", ErrInvalidState)
	}
	var claims jwt.StandardClaims
	token, err := jwt.ParseWithClaims(state, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if !token.Valid || !claims.VerifyAudience(stateAudience, true) {
		return ErrInvalidState
	}
	return nil
}
