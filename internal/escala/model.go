package escala

import (
	"time"

	"github.com/AgroEscala/api-escalas/internal/planta"
	"github.com/AgroEscala/api-escalas/internal/produtor"
	"gorm.io/gorm"
)

// Escala representa um evento de abate agendado ligando um produtor a uma
// planta frigorífica, com volume em cabeças e status textual livre.
type Escala struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	DataAbate   time.Time `gorm:"not null;index" json:"dataAbate"`
	Volume      int       `gorm:"not null" json:"volume"`
	Status      string    `gorm:"size:50;not null;default:'Agendado'" json:"status"`
	Observacoes *string   `json:"observacoes"`

	ProdutorID uint              `gorm:"not null;index" json:"produtorId"`
	PlantaID   uint              `gorm:"not null;index" json:"plantaId"`
	Produtor   produtor.Produtor `gorm:"foreignKey:ProdutorID" json:"produtor"`
	Planta     planta.Planta     `gorm:"foreignKey:PlantaID" json:"planta"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Escala{})
}
