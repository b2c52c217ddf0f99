package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gessopro/gesseiros-api/internal/auth"
	"github.com/gessopro/gesseiros-api/internal/httperr"
)

const (
	ContextGesseiroID = "gesseiroID"
	ContextEmail      = "email"
)

func AuthMiddleware(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "Token não fornecido")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "Token não fornecido")
			c.Abort()
			return
		}

		claims, err := authSvc.VerifyToken(parts[1])
		if err != nil {
			httperr.Unauthorized(c, "Token inválido")
			c.Abort()
			return
		}

		c.Set(ContextGesseiroID, claims.GesseiroID)
		c.Set(ContextEmail, claims.Email)

		c.Next()
	}
}
