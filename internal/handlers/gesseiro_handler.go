package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/gessopro/gesseiros-api/internal/audit"
	"github.com/gessopro/gesseiros-api/internal/dto"
	"github.com/gessopro/gesseiros-api/internal/httperr"
	"github.com/gessopro/gesseiros-api/internal/httpresp"
	"github.com/gessopro/gesseiros-api/internal/models"
	"github.com/gessopro/gesseiros-api/internal/storage"
)

type GesseiroHandler struct {
	db      *gorm.DB
	uploads *storage.Uploads
	audit   *audit.Dispatcher
}

func NewGesseiroHandler(db *gorm.DB, uploads *storage.Uploads, auditD *audit.Dispatcher) *GesseiroHandler {
	return &GesseiroHandler{db: db, uploads: uploads, audit: auditD}
}

// --------- Requests ---------

type UpdateGesseiroRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Cidade    string `json:"cidade" binding:"required"`
	Telefone  string `json:"telefone" binding:"required"`
	Email     string `json:"email"`
	Instagram string `json:"instagram"`
	Descricao string `json:"descricao"`
}

// --------- Handlers ---------

// List retorna todos os gesseiros com fotos e serviços. As tabelas filhas
// são buscadas em duas consultas IN e agrupadas em memória, nunca uma
// consulta por gesseiro.
func (h *GesseiroHandler) List(c *gin.Context) {
	var gesseiros []models.Gesseiro
	if err := h.db.Order("created_at DESC").Find(&gesseiros).Error; err != nil {
		httperr.Internal(c, "Erro ao buscar gesseiros")
		return
	}

	completos := make([]dto.GesseiroCompletoDTO, 0, len(gesseiros))
	if len(gesseiros) == 0 {
		httpresp.OK(c, completos)
		return
	}

	ids := make([]uint, 0, len(gesseiros))
	for _, g := range gesseiros {
		ids = append(ids, g.ID)
	}

	var fotos []models.Foto
	if err := h.db.Where("gesseiro_id IN ?", ids).Find(&fotos).Error; err != nil {
		httperr.Internal(c, "Erro ao buscar fotos")
		return
	}

	var servicos []models.Servico
	if err := h.db.Where("gesseiro_id IN ?", ids).Find(&servicos).Error; err != nil {
		httperr.Internal(c, "Erro ao buscar serviços")
		return
	}

	fotosPorGesseiro := make(map[uint][]models.Foto)
	for _, f := range fotos {
		fotosPorGesseiro[f.GesseiroID] = append(fotosPorGesseiro[f.GesseiroID], f)
	}

	servicosPorGesseiro := make(map[uint][]models.Servico)
	for _, s := range servicos {
		servicosPorGesseiro[s.GesseiroID] = append(servicosPorGesseiro[s.GesseiroID], s)
	}

	for _, g := range gesseiros {
		completo := dto.GesseiroCompletoDTO{
			Gesseiro: g,
			Fotos:    fotosPorGesseiro[g.ID],
			Servicos: servicosPorGesseiro[g.ID],
		}
		if completo.Fotos == nil {
			completo.Fotos = make([]models.Foto, 0)
		}
		if completo.Servicos == nil {
			completo.Servicos = make([]models.Servico, 0)
		}
		completos = append(completos, completo)
	}

	httpresp.OK(c, completos)
}

func (h *GesseiroHandler) Get(c *gin.Context) {
	var gesseiro models.Gesseiro
	if err := h.db.First(&gesseiro, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Gesseiro não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao buscar gesseiro")
		return
	}

	httpresp.OK(c, gesseiro)
}

func (h *GesseiroHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req UpdateGesseiroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nome, cidade e telefone são obrigatórios")
		return
	}

	res := h.db.Model(&models.Gesseiro{}).Where("id = ?", id).Updates(map[string]any{
		"nome":      req.Nome,
		"cidade":    req.Cidade,
		"telefone":  req.Telefone,
		"email":     req.Email,
		"instagram": req.Instagram,
		"descricao": req.Descricao,
	})
	if res.Error != nil {
		httperr.Internal(c, "Erro ao atualizar")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "Gesseiro não encontrado")
		return
	}

	gid := uint(id)
	h.audit.Dispatch(audit.Event{
		GesseiroID: &gid,
		Action:     "gesseiro_updated",
		Entity:     "gesseiro",
		EntityID:   &gid,
	})

	httpresp.Mensagem(c, "Gesseiro atualizado com sucesso!", gin.H{"id": gid})
}

// Delete remove o gesseiro e todas as linhas filhas numa transação única;
// os arquivos de foto são apagados do disco depois do commit, melhor
// esforço.
func (h *GesseiroHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var gesseiro models.Gesseiro
	if err := h.db.First(&gesseiro, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Gesseiro não encontrado")
			return
		}
		httperr.Internal(c, "Erro ao deletar")
		return
	}

	var fotos []models.Foto
	if err := h.db.Where("gesseiro_id = ?", gesseiro.ID).Find(&fotos).Error; err != nil {
		httperr.Internal(c, "Erro ao deletar")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gesseiro_id = ?", gesseiro.ID).Delete(&models.Servico{}).Error; err != nil {
			return err
		}
		if err := tx.Where("gesseiro_id = ?", gesseiro.ID).Delete(&models.Foto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("gesseiro_id = ?", gesseiro.ID).Delete(&models.Usuario{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Gesseiro{}, gesseiro.ID).Error
	})
	if err != nil {
		httperr.Internal(c, "Erro ao deletar")
		return
	}

	for _, f := range fotos {
		if err := h.uploads.Remove(f.URL); err != nil {
			logrus.WithError(err).WithField("url", f.URL).Warn("failed to remove photo file")
		}
	}

	h.audit.Dispatch(audit.Event{
		GesseiroID: &gesseiro.ID,
		Action:     "gesseiro_deleted",
		Entity:     "gesseiro",
		EntityID:   &gesseiro.ID,
	})

	httpresp.Mensagem(c, "Gesseiro deletado com sucesso!", nil)
}
