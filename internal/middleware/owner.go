package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gessopro/gesseiros-api/internal/httperr"
)

// RequireOwner garante que o gesseiro autenticado é o dono do recurso
// apontado pelo parâmetro :id da rota. Toda rota mutante escopada por
// gesseiro passa por aqui, em vez de repetir a checagem em cada handler.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			httperr.NotFound(c, "Gesseiro não encontrado")
			c.Abort()
			return
		}

		gesseiroIDVal, exists := c.Get(ContextGesseiroID)
		if !exists {
			httperr.Unauthorized(c, "Token não fornecido")
			c.Abort()
			return
		}

		if gesseiroIDVal.(uint) != uint(id) {
			httperr.Forbidden(c, "Sem permissão")
			c.Abort()
			return
		}

		c.Next()
	}
}
