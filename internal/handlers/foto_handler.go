package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/gessopro/gesseiros-api/internal/audit"
	"github.com/gessopro/gesseiros-api/internal/httperr"
	"github.com/gessopro/gesseiros-api/internal/httpresp"
	"github.com/gessopro/gesseiros-api/internal/models"
	"github.com/gessopro/gesseiros-api/internal/storage"
)

type FotoHandler struct {
	db      *gorm.DB
	uploads *storage.Uploads
	audit   *audit.Dispatcher
}

func NewFotoHandler(db *gorm.DB, uploads *storage.Uploads, auditD *audit.Dispatcher) *FotoHandler {
	return &FotoHandler{db: db, uploads: uploads, audit: auditD}
}

func (h *FotoHandler) List(c *gin.Context) {
	fotos := make([]models.Foto, 0)
	if err := h.db.
		Where("gesseiro_id = ?", c.Param("id")).
		Order("created_at DESC").
		Find(&fotos).Error; err != nil {

		httperr.Internal(c, "Erro ao buscar fotos")
		return
	}

	httpresp.OK(c, fotos)
}

func (h *FotoHandler) Upload(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	descricao := c.PostForm("descricao")

	file, err := c.FormFile("foto")
	if err != nil {
		httperr.BadRequest(c, "Nenhuma foto foi enviada")
		return
	}

	url, err := h.uploads.Save(file)
	if err != nil {
		if msg, ok := httperr.IsBusiness(err); ok {
			httperr.BadRequest(c, msg)
			return
		}
		httperr.Internal(c, "Erro ao salvar foto")
		return
	}

	foto := models.Foto{
		GesseiroID: uint(id),
		URL:        url,
		Descricao:  descricao,
	}

	if err := h.db.Create(&foto).Error; err != nil {
		if rmErr := h.uploads.Remove(url); rmErr != nil {
			logrus.WithError(rmErr).Warn("failed to remove orphan photo file")
		}
		httperr.Internal(c, "Erro ao salvar foto")
		return
	}

	h.audit.Dispatch(audit.Event{
		GesseiroID: &foto.GesseiroID,
		Action:     "foto_added",
		Entity:     "foto",
		EntityID:   &foto.ID,
	})

	httpresp.Mensagem(c, "Foto adicionada com sucesso!", gin.H{"foto": foto})
}

// Delete remove a linha da foto primeiro e só depois o arquivo; a remoção
// do arquivo é melhor esforço e nunca falha a requisição.
func (h *FotoHandler) Delete(c *gin.Context) {
	var foto models.Foto
	if err := h.db.
		Where("id = ? AND gesseiro_id = ?", c.Param("fotoId"), c.Param("id")).
		First(&foto).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Foto não encontrada")
			return
		}
		httperr.Internal(c, "Erro ao deletar foto")
		return
	}

	if err := h.db.Delete(&models.Foto{}, foto.ID).Error; err != nil {
		httperr.Internal(c, "Erro ao deletar foto")
		return
	}

	if err := h.uploads.Remove(foto.URL); err != nil {
		logrus.WithError(err).WithField("url", foto.URL).Warn("failed to remove photo file")
	}

	h.audit.Dispatch(audit.Event{
		GesseiroID: &foto.GesseiroID,
		Action:     "foto_deleted",
		Entity:     "foto",
		EntityID:   &foto.ID,
	})

	httpresp.Mensagem(c, "Foto deletada com sucesso!", nil)
}
