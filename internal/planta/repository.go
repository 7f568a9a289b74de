package planta

import "gorm.io/gorm"

type Repository interface {
	ListarTodas(db *gorm.DB) ([]Planta, error)
	BuscarPorID(db *gorm.DB, id uint) (*Planta, error)
	Existe(db *gorm.DB, id uint) (bool, error)
	UpsertPorNome(db *gorm.DB, p *Planta) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Planta, error) {
	var plantas []Planta
	err := db.Order("nome asc").Find(&plantas).Error
	return plantas, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Planta, error) {
	var p Planta
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) Existe(db *gorm.DB, id uint) (bool, error) {
	var total int64
	err := db.Model(&Planta{}).Where("id = ?", id).Count(&total).Error
	return total > 0, err
}

// UpsertPorNome busca pelo nome (único) e cria caso não exista.
func (r *repositoryImpl) UpsertPorNome(db *gorm.DB, p *Planta) error {
	return db.Where("nome = ?", p.Nome).FirstOrCreate(p).Error
}
