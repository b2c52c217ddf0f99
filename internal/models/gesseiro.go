package models

import "time"

type Gesseiro struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome     string `gorm:"size:100;not null" json:"nome"`
	Cidade   string `gorm:"size:100;not null" json:"cidade"`
	Telefone string `gorm:"size:20;not null" json:"telefone"`

	Email     string `gorm:"size:100" json:"email"`
	Instagram string `gorm:"size:100" json:"instagram"`
	Descricao string `gorm:"type:text" json:"descricao"`

	CreatedAt time.Time `json:"data_cadastro"`
	UpdatedAt time.Time `json:"-"`
}
