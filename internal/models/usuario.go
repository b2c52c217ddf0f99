package models

import "time"

// Usuario guarda a credencial de login de um gesseiro.
type Usuario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	SenhaHash string `gorm:"size:255;not null" json:"-"`

	GesseiroID uint     `json:"gesseiro_id"`
	Gesseiro   Gesseiro `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"data_cadastro"`
	UpdatedAt time.Time `json:"-"`
}
