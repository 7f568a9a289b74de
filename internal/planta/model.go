package planta

import (
	"time"

	"gorm.io/gorm"
)

// Planta representa uma planta frigorífica (unidade de abate).
type Planta struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nome   string `gorm:"size:255;not null;uniqueIndex" json:"nome"`
	Cidade string `gorm:"size:255" json:"cidade"`
	Estado string `gorm:"size:2" json:"estado"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Planta{})
}
