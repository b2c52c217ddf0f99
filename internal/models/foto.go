package models

import "time"

type Foto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GesseiroID uint     `gorm:"not null" json:"gesseiro_id"`
	Gesseiro   Gesseiro `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// URL é o caminho relativo do arquivo dentro do diretório de uploads.
	URL       string `gorm:"size:255;not null" json:"url"`
	Descricao string `gorm:"size:255" json:"descricao"`

	CreatedAt time.Time `json:"data_upload"`
}
