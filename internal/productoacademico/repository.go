package productoacademico

import "gorm.io/gorm"

type Repository interface {
	ListarVisibles(db *gorm.DB, perfilID uint) ([]ProductoAcademico, error)
	Salvar(db *gorm.DB, p *ProductoAcademico) error
	BuscarPorID(db *gorm.DB, id uint) (*ProductoAcademico, error)
	ListarTodos(db *gorm.DB) ([]ProductoAcademico, error)
	Actualizar(db *gorm.DB, id uint, nuevosDatos *ProductoAcademico) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListarVisibles retorna los productos académicos visibles del perfil
// en orden de inserción inversa (id descendente).
func (r *repositoryImpl) ListarVisibles(db *gorm.DB, perfilID uint) ([]ProductoAcademico, error) {
	var productos []ProductoAcademico
	err := db.Where("idperfilconqueestaactivo = ? AND activarparaqueseveaenfront = ?", perfilID, true).
		Order("idproductoacademico DESC").
		Find(&productos).Error
	return productos, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *ProductoAcademico) error {
	return db.Omit("Perfil").Save(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*ProductoAcademico, error) {
	var p ProductoAcademico
	err := db.First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]ProductoAcademico, error) {
	var productos []ProductoAcademico
	err := db.Order("idproductoacademico DESC").Find(&productos).Error
	return productos, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, id uint, nuevosDatos *ProductoAcademico) error {
	var existente ProductoAcademico
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	nuevosDatos.ID = existente.ID
	return db.Omit("Perfil").Save(nuevosDatos).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&ProductoAcademico{}, id).Error
}
