package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Erro string `json:"erro"`
}

func Write(c *gin.Context, status int, mensagem string) {
	c.JSON(status, HTTPError{Erro: mensagem})
}

func BadRequest(c *gin.Context, mensagem string) {
	Write(c, http.StatusBadRequest, mensagem)
}

func Unauthorized(c *gin.Context, mensagem string) {
	Write(c, http.StatusUnauthorized, mensagem)
}

func Forbidden(c *gin.Context, mensagem string) {
	Write(c, http.StatusForbidden, mensagem)
}

func NotFound(c *gin.Context, mensagem string) {
	Write(c, http.StatusNotFound, mensagem)
}

func Internal(c *gin.Context, mensagem string) {
	Write(c, http.StatusInternalServerError, mensagem)
}
