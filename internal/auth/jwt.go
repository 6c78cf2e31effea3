package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("auth: invalid token")

type Claims struct {
	ParentEmail string   `json:"parent_email"`
	StudentIDs  []string `json:"student_ids"`
	jwt.RegisteredClaims
}

func SignJWT(parentEmail string, studentIDs []string, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		ParentEmail: parentEmail,
		StudentIDs:  studentIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   parentEmail,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

func ParseJWT(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
