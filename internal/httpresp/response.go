package httpresp

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

// Mensagem responde 200 com {"mensagem": ...} mais campos extras.
func Mensagem(c *gin.Context, mensagem string, extra gin.H) {
	body := gin.H{"mensagem": mensagem}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(200, body)
}
