package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
)

var ErrorInvalidToken = errors.New("invalid token")

// Claims — стандартные утверждения плюс идентичность пользователя
type Claims struct {
	jwt.RegisteredClaims
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GenerateToken подписывает claims пользователя серверным секретом (HS256)
func GenerateToken(user model.User, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})

	return token.SignedString(secret)
}

// ParseToken возвращает claims только при валидной подписи и живом сроке.
// Любой другой исход — ошибка, которую вызывающие трактуют одинаково:
// сессии нет.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrorInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrorInvalidToken
	}

	return claims, nil
}
