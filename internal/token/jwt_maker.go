package token

import (
	"errors"
	"time"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// JWTMaker HS256簽發與驗證，payload帶user_id與role
type JWTMaker struct {
	secretKey []byte
	duration  time.Duration
}

func NewJWTMaker(secretKey string, duration time.Duration) *JWTMaker {
	return &JWTMaker{secretKey: []byte(secretKey), duration: duration}
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (m *JWTMaker) CreateToken(actor *model.Actor) (string, error) {
	claims := Claims{
		UserID: actor.UserID,
		Role:   actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

func (m *JWTMaker) VerifyToken(tokenString string) (*model.Actor, error) {
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secretKey, nil
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return &model.Actor{UserID: claims.UserID, Role: claims.Role}, nil
}
