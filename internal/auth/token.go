package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token de sessão. O sistema tem um único operador, então o
// subject carrega apenas o usuário configurado.
type Claims struct {
	Usuario string `json:"usuario"`
	jwt.RegisteredClaims
}

// Tempo de vida do token de acesso (um turno de trabalho).
const AccessTTL = 12 * time.Hour

// GerarToken emite um JWT HS256 assinado com o segredo configurado.
func GerarToken(segredo, usuario string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Usuario: usuario,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usuario,
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(segredo))
}

// ValidarToken valida assinatura e expiração e devolve as claims.
func ValidarToken(segredo, tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(segredo), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token inválido")
	}

	c, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims inválidas")
	}
	if c.ExpiresAt == nil || time.Now().After(c.ExpiresAt.Time) {
		return nil, errors.New("token expirado")
	}
	return c, nil
}
