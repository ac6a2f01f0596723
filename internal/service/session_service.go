package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity es la identidad extraída de una credencial verificada. Vive
// solo durante el request que la verificó; nunca se persiste.
type Identity struct {
	Email string
}

// SessionClaims son los claims firmados dentro de la credencial de sesión.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionService emite y verifica credenciales de sesión firmadas.
type SessionService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

const defaultSessionTTL = 365 * 24 * time.Hour

func NewSessionService(secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "student-tracker",
	}
}

// TTL devuelve la vigencia de las credenciales emitidas.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Issue firma una credencial de sesión ligada al email declarado.
func (s *SessionService) Issue(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrValidation
	}
	if len(s.secret) == 0 {
		return "", errors.New("session secret not configured")
	}

	now := time.Now().UTC()
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify valida la credencial y extrae la identidad ligada. Cualquier
// fallo (ausente, firma inválida, expirada) es ErrUnauthenticated; la
// causa concreta se registra en la capa HTTP, no se expone al cliente.
func (s *SessionService) Verify(raw string) (Identity, error) {
	if strings.TrimSpace(raw) == "" {
		return Identity{}, ErrUnauthenticated
	}
	if len(s.secret) == 0 {
		return Identity{}, ErrUnauthenticated
	}

	var claims SessionClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(raw, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return Identity{}, errors.Join(ErrUnauthenticated, err)
	}
	if strings.TrimSpace(claims.Email) == "" || claims.Issuer != s.issuer {
		return Identity{}, ErrUnauthenticated
	}
	return Identity{Email: claims.Email}, nil
}
