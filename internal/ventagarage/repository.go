package ventagarage

import "gorm.io/gorm"

type Repository interface {
	ListarVisibles(db *gorm.DB, perfilID uint) ([]VentaGarage, error)
	Salvar(db *gorm.DB, v *VentaGarage) error
	BuscarPorID(db *gorm.DB, id uint) (*VentaGarage, error)
	ListarTodos(db *gorm.DB) ([]VentaGarage, error)
	Actualizar(db *gorm.DB, id uint, nuevosDatos *VentaGarage) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListarVisibles retorna los artículos visibles del perfil en orden de
// inserción inversa (id descendente).
func (r *repositoryImpl) ListarVisibles(db *gorm.DB, perfilID uint) ([]VentaGarage, error) {
	var articulos []VentaGarage
	err := db.Where("idperfilconqueestaactivo = ? AND activarparaqueseveaenfront = ?", perfilID, true).
		Order("idventagarage DESC").
		Find(&articulos).Error
	return articulos, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, v *VentaGarage) error {
	return db.Omit("Perfil").Save(v).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*VentaGarage, error) {
	var v VentaGarage
	err := db.First(&v, id).Error
	return &v, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]VentaGarage, error) {
	var articulos []VentaGarage
	err := db.Order("idventagarage DESC").Find(&articulos).Error
	return articulos, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, id uint, nuevosDatos *VentaGarage) error {
	var existente VentaGarage
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	nuevosDatos.ID = existente.ID
	return db.Omit("Perfil").Save(nuevosDatos).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&VentaGarage{}, id).Error
}
