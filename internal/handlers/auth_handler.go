package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gessopro/gesseiros-api/internal/audit"
	"github.com/gessopro/gesseiros-api/internal/auth"
	"github.com/gessopro/gesseiros-api/internal/httperr"
	"github.com/gessopro/gesseiros-api/internal/httpresp"
	"github.com/gessopro/gesseiros-api/internal/models"
	"github.com/gessopro/gesseiros-api/internal/validators"
)

type AuthHandler struct {
	db    *gorm.DB
	auth  *auth.Service
	audit *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, authSvc *auth.Service, auditD *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, auth: authSvc, audit: auditD}
}

// --------- Requests ---------

type RegisterRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Cidade    string `json:"cidade" binding:"required"`
	Telefone  string `json:"telefone" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Instagram string `json:"instagram"`
	Descricao string `json:"descricao"`
	Senha     string `json:"senha" binding:"required"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// --------- Handlers ---------

// Register cria o gesseiro e sua credencial numa única transação e já
// devolve um token de sessão.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Todos os campos obrigatórios devem ser preenchidos")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "Email inválido")
		return
	}

	var count int64
	if err := h.db.Model(&models.Usuario{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "Erro no servidor")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "Este email já está cadastrado")
		return
	}

	senhaHash, err := h.auth.HashPassword(req.Senha)
	if err != nil {
		httperr.Internal(c, "Erro no servidor")
		return
	}

	gesseiro := models.Gesseiro{
		Nome:      req.Nome,
		Cidade:    req.Cidade,
		Telefone:  req.Telefone,
		Email:     email,
		Instagram: req.Instagram,
		Descricao: req.Descricao,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&gesseiro).Error; err != nil {
			return err
		}

		usuario := models.Usuario{
			Email:      email,
			SenhaHash:  senhaHash,
			GesseiroID: gesseiro.ID,
		}
		return tx.Create(&usuario).Error
	})
	if err != nil {
		httperr.Internal(c, "Erro ao cadastrar gesseiro")
		return
	}

	token, err := h.auth.IssueToken(gesseiro.ID, email)
	if err != nil {
		httperr.Internal(c, "Erro no servidor")
		return
	}

	h.audit.Dispatch(audit.Event{
		GesseiroID: &gesseiro.ID,
		Action:     "gesseiro_registered",
		Entity:     "gesseiro",
		EntityID:   &gesseiro.ID,
	})

	httpresp.Mensagem(c, "Cadastro realizado com sucesso!", gin.H{
		"token":      token,
		"gesseiroId": gesseiro.ID,
		"nome":       gesseiro.Nome,
		"email":      email,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unauthorized(c, "Email ou senha incorretos")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var usuario models.Usuario
	if err := h.db.Where("email = ?", email).First(&usuario).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// mesma mensagem de senha errada: não vaza qual campo falhou
			httperr.Unauthorized(c, "Email ou senha incorretos")
			return
		}
		httperr.Internal(c, "Erro no servidor")
		return
	}

	if !h.auth.CheckPassword(req.Senha, usuario.SenhaHash) {
		httperr.Unauthorized(c, "Email ou senha incorretos")
		return
	}

	var gesseiro models.Gesseiro
	if err := h.db.First(&gesseiro, usuario.GesseiroID).Error; err != nil {
		httperr.Internal(c, "Dados do gesseiro não encontrados")
		return
	}

	token, err := h.auth.IssueToken(usuario.GesseiroID, usuario.Email)
	if err != nil {
		httperr.Internal(c, "Erro no servidor")
		return
	}

	httpresp.OK(c, gin.H{
		"token":      token,
		"gesseiroId": usuario.GesseiroID,
		"nome":       gesseiro.Nome,
		"email":      usuario.Email,
	})
}
