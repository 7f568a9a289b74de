package escala

import "gorm.io/gorm"

type Repository interface {
	ListarTodas(db *gorm.DB) ([]Escala, error)
	BuscarPorID(db *gorm.DB, id uint) (*Escala, error)
	Criar(db *gorm.DB, e *Escala) error
	Atualizar(db *gorm.DB, id uint, campos map[string]any) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Escala, error) {
	var escalas []Escala
	err := db.Preload("Produtor").Preload("Planta").
		Order("data_abate asc").
		Find(&escalas).Error
	return escalas, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Escala, error) {
	var e Escala
	err := db.Preload("Produtor").Preload("Planta").First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, e *Escala) error {
	if err := db.Create(e).Error; err != nil {
		return err
	}
	// recarrega com produtor e planta para devolver a visão denormalizada
	return db.Preload("Produtor").Preload("Planta").First(e, e.ID).Error
}

// Atualizar aplica um update parcial; campos com valor nil viram NULL na
// coluna correspondente (caso do observacoes limpo pelo cliente).
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, campos map[string]any) error {
	return db.Model(&Escala{}).Where("id = ?", id).Updates(campos).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	tx := db.Delete(&Escala{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
