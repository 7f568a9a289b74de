package produtor

import (
	"time"

	"gorm.io/gorm"
)

// Produtor representa um produtor rural fornecedor de gado.
type Produtor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nome     string `gorm:"size:255;not null;uniqueIndex" json:"nome"`
	Email    string `gorm:"size:255" json:"email"`
	Telefone string `gorm:"size:50" json:"telefone"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Produtor{})
}
