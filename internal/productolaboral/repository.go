package productolaboral

import "gorm.io/gorm"

type Repository interface {
	ListarVisibles(db *gorm.DB, perfilID uint) ([]ProductoLaboral, error)
	Salvar(db *gorm.DB, p *ProductoLaboral) error
	BuscarPorID(db *gorm.DB, id uint) (*ProductoLaboral, error)
	ListarTodos(db *gorm.DB) ([]ProductoLaboral, error)
	Actualizar(db *gorm.DB, id uint, nuevosDatos *ProductoLaboral) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListarVisibles retorna los productos laborales visibles del perfil,
// ordenados por fecha descendente.
func (r *repositoryImpl) ListarVisibles(db *gorm.DB, perfilID uint) ([]ProductoLaboral, error) {
	var productos []ProductoLaboral
	err := db.Where("idperfilconqueestaactivo = ? AND activarparaqueseveaenfront = ?", perfilID, true).
		Order("fechaproducto DESC").
		Find(&productos).Error
	return productos, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *ProductoLaboral) error {
	return db.Omit("Perfil").Save(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*ProductoLaboral, error) {
	var p ProductoLaboral
	err := db.First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]ProductoLaboral, error) {
	var productos []ProductoLaboral
	err := db.Order("fechaproducto DESC").Find(&productos).Error
	return productos, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, id uint, nuevosDatos *ProductoLaboral) error {
	var existente ProductoLaboral
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	nuevosDatos.ID = existente.ID
	return db.Omit("Perfil").Save(nuevosDatos).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&ProductoLaboral{}, id).Error
}
