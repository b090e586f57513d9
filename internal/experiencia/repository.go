package experiencia

import "gorm.io/gorm"

type Repository interface {
	ListarVisibles(db *gorm.DB, perfilID uint) ([]ExperienciaLaboral, error)
	Salvar(db *gorm.DB, e *ExperienciaLaboral) error
	BuscarPorID(db *gorm.DB, id uint) (*ExperienciaLaboral, error)
	ListarTodas(db *gorm.DB) ([]ExperienciaLaboral, error)
	Actualizar(db *gorm.DB, id uint, nuevosDatos *ExperienciaLaboral) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListarVisibles retorna las experiencias visibles del perfil,
// ordenadas por fecha de inicio descendente.
func (r *repositoryImpl) ListarVisibles(db *gorm.DB, perfilID uint) ([]ExperienciaLaboral, error) {
	var experiencias []ExperienciaLaboral
	err := db.Where("idperfilconqueestaactivo = ? AND activarparaqueseveaenfront = ?", perfilID, true).
		Order("fechainiciogestion DESC").
		Find(&experiencias).Error
	return experiencias, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, e *ExperienciaLaboral) error {
	return db.Omit("Perfil").Save(e).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*ExperienciaLaboral, error) {
	var e ExperienciaLaboral
	err := db.First(&e, id).Error
	return &e, err
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]ExperienciaLaboral, error) {
	var experiencias []ExperienciaLaboral
	err := db.Order("fechainiciogestion DESC").Find(&experiencias).Error
	return experiencias, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, id uint, nuevosDatos *ExperienciaLaboral) error {
	var existente ExperienciaLaboral
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	nuevosDatos.ID = existente.ID
	return db.Omit("Perfil").Save(nuevosDatos).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&ExperienciaLaboral{}, id).Error
}
