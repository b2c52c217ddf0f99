package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gessopro/gesseiros-api/internal/audit"
	"github.com/gessopro/gesseiros-api/internal/httperr"
	"github.com/gessopro/gesseiros-api/internal/httpresp"
	"github.com/gessopro/gesseiros-api/internal/models"
)

type ServicoHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServicoHandler(db *gorm.DB, auditD *audit.Dispatcher) *ServicoHandler {
	return &ServicoHandler{db: db, audit: auditD}
}

// --------- Requests ---------

type CreateServicoRequest struct {
	NomeServico      string  `json:"nome_servico" binding:"required"`
	PrecoComMaterial float64 `json:"preco_com_material" binding:"required"`
	PrecoSemMaterial float64 `json:"preco_sem_material" binding:"required"`
	Unidade          string  `json:"unidade"`
	DistanciaMaxima  int     `json:"distancia_maxima"`
}

// --------- Handlers ---------

func (h *ServicoHandler) Create(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req CreateServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nome do serviço e preços são obrigatórios")
		return
	}

	if req.Unidade == "" {
		req.Unidade = "m²"
	}
	if req.DistanciaMaxima == 0 {
		req.DistanciaMaxima = 50
	}

	servico := models.Servico{
		GesseiroID:       uint(id),
		NomeServico:      req.NomeServico,
		PrecoComMaterial: req.PrecoComMaterial,
		PrecoSemMaterial: req.PrecoSemMaterial,
		Unidade:          req.Unidade,
		DistanciaMaxima:  req.DistanciaMaxima,
	}

	if err := h.db.Create(&servico).Error; err != nil {
		httperr.Internal(c, "Erro ao adicionar serviço")
		return
	}

	h.audit.Dispatch(audit.Event{
		GesseiroID: &servico.GesseiroID,
		Action:     "servico_added",
		Entity:     "servico",
		EntityID:   &servico.ID,
	})

	httpresp.Mensagem(c, "Serviço adicionado com sucesso!", gin.H{"servico": servico})
}

func (h *ServicoHandler) List(c *gin.Context) {
	servicos := make([]models.Servico, 0)
	if err := h.db.
		Where("gesseiro_id = ?", c.Param("id")).
		Order("created_at DESC").
		Find(&servicos).Error; err != nil {

		httperr.Internal(c, "Erro ao buscar serviços")
		return
	}

	httpresp.OK(c, servicos)
}

// Delete apaga por id E gesseiro_id juntos: chutar ids de outros gesseiros
// não remove nada.
func (h *ServicoHandler) Delete(c *gin.Context) {
	gid, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	res := h.db.
		Where("id = ? AND gesseiro_id = ?", c.Param("servicoId"), gid).
		Delete(&models.Servico{})
	if res.Error != nil {
		httperr.Internal(c, "Erro ao deletar serviço")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "Serviço não encontrado")
		return
	}

	gesseiroID := uint(gid)
	h.audit.Dispatch(audit.Event{
		GesseiroID: &gesseiroID,
		Action:     "servico_deleted",
		Entity:     "servico",
	})

	httpresp.Mensagem(c, "Serviço deletado com sucesso!", nil)
}
