package dto

import "github.com/gessopro/gesseiros-api/internal/models"

// GesseiroCompletoDTO é um gesseiro com seu portfólio e tabela de preços,
// como retornado pela listagem pública.
type GesseiroCompletoDTO struct {
	models.Gesseiro
	Fotos    []models.Foto    `json:"fotos"`
	Servicos []models.Servico `json:"servicos"`
}
