package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims estándar JWT; el user id viaja en Subject (sub),
// igual que en el cliente móvil existente.
type Claims struct {
	jwt.RegisteredClaims
}

// Service emite y valida tokens bearer HS256. Implementa el puerto
// auth.TokenService (sign/verify) sin que el dominio dependa de esta librería.
type Service struct {
	secret     string
	issuer     string
	expMinutes int
}

// NewService construye el servicio de tokens.
func NewService(secret, issuer string, expMinutes int) *Service {
	return &Service{secret: secret, issuer: issuer, expMinutes: expMinutes}
}

// Sign genera un token JWT firmado con el user id como subject.
func (s *Service) Sign(userID string) (string, error) {
	if s.secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expMinutes) * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify valida el token y devuelve el user id (subject).
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func (s *Service) Verify(tokenString string) (string, error) {
	if s.secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.Subject, nil
}
