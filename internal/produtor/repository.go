package produtor

import "gorm.io/gorm"

type Repository interface {
	ListarTodos(db *gorm.DB) ([]Produtor, error)
	BuscarPorID(db *gorm.DB, id uint) (*Produtor, error)
	Existe(db *gorm.DB, id uint) (bool, error)
	UpsertPorNome(db *gorm.DB, p *Produtor) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Produtor, error) {
	var produtores []Produtor
	err := db.Order("nome asc").Find(&produtores).Error
	return produtores, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Produtor, error) {
	var p Produtor
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) Existe(db *gorm.DB, id uint) (bool, error) {
	var total int64
	err := db.Model(&Produtor{}).Where("id = ?", id).Count(&total).Error
	return total > 0, err
}

// UpsertPorNome busca pelo nome (único) e cria caso não exista.
// Usado pelo seed para manter a carga idempotente.
func (r *repositoryImpl) UpsertPorNome(db *gorm.DB, p *Produtor) error {
	return db.Where("nome = ?", p.Nome).FirstOrCreate(p).Error
}
