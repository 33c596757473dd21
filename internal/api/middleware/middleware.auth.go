// Package middleware contém os middlewares HTTP da aplicação.
// O AuthMiddleware valida o bearer token JWT e grava o owner autenticado
// em Locals("owner_id"): todo o escopo de dados do catálogo parte daí.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/anderleilucio/orcasmart-web-sub000/internal/common"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/global"
)

// OwnerClaims são as claims esperadas no token de acesso.
// O subject (sub) carrega o ID do vendedor (owner).
type OwnerClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// extractBearerToken lê o token do header Authorization ("Bearer <token>")
func extractBearerToken(c fiber.Ctx) string {
	auth := c.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// validateToken valida a assinatura e a expiração do token e retorna as claims
func validateToken(tokenString string) (*OwnerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OwnerClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.ServerConfig.JwtSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*OwnerClaims)
	if !ok || !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	if claims.Subject == "" {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}

// AuthMiddleware valida o JWT da request e grava o owner em Locals("owner_id").
// Requests sem token válido são rejeitadas com 401.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		claims, err := validateToken(tokenString)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		c.Locals("owner_id", claims.Subject)
		if claims.Email != "" {
			c.Locals("owner_email", claims.Email)
		}

		return c.Next()
	}
}
