package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gessopro/gesseiros-api/internal/httperr"
	"github.com/gessopro/gesseiros-api/internal/httpresp"
	"github.com/gessopro/gesseiros-api/internal/middleware"
	"github.com/gessopro/gesseiros-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	gesseiroIDVal, exists := c.Get(middleware.ContextGesseiroID)
	if !exists {
		httperr.Unauthorized(c, "Token não fornecido")
		return
	}
	emailVal, _ := c.Get(middleware.ContextEmail)

	var gesseiro models.Gesseiro
	if err := h.db.First(&gesseiro, gesseiroIDVal.(uint)).Error; err != nil {
		httperr.Internal(c, "Dados do gesseiro não encontrados")
		return
	}

	httpresp.OK(c, gin.H{
		"gesseiro": gesseiro,
		"email":    emailVal,
	})
}
