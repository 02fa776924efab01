package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"order-service/internal/entities"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

const bearerPrefix = "Bearer "

// Claims - полезная нагрузка токена, выпущенного внешним сервисом авторизации.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidToken)
	}
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// Verify проверяет подпись и срок действия. Роль не сверяется со списком
// известных: неизвестную роль отсечёт политика доступа.
func (v *Verifier) Verify(token string) (entities.Caller, error) {
	if strings.TrimSpace(token) == "" {
		return entities.Caller{}, ErrMissingToken
	}

	var claims Claims
	_, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return entities.Caller{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.UserID == "" || claims.Role == "" {
		return entities.Caller{}, fmt.Errorf("%w: missing identity claims", ErrInvalidToken)
	}

	return entities.Caller{
		ID:   claims.UserID,
		Role: entities.Role(claims.Role),
	}, nil
}

// Sign выпускает токен тем же секретом. Нужен тестам и локальной отладке.
func (v *Verifier) Sign(caller entities.Caller, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: caller.ID,
		Role:   caller.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// TokenFromHeader достаёт токен из "Authorization: Bearer <token>".
func TokenFromHeader(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrMissingToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

type callerKey struct{}

func WithCaller(ctx context.Context, caller entities.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func CallerFromContext(ctx context.Context) (entities.Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(entities.Caller)
	return caller, ok
}
