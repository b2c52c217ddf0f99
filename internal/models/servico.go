package models

import "time"

type Servico struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GesseiroID uint     `gorm:"not null" json:"gesseiro_id"`
	Gesseiro   Gesseiro `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	NomeServico      string  `gorm:"size:100;not null" json:"nome_servico"`
	PrecoComMaterial float64 `json:"preco_com_material"`
	PrecoSemMaterial float64 `json:"preco_sem_material"`

	Unidade         string `gorm:"size:20;default:'m²'" json:"unidade"`
	DistanciaMaxima int    `gorm:"default:50" json:"distancia_maxima"`

	CreatedAt time.Time `json:"data_cadastro"`
}
