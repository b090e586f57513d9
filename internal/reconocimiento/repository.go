package reconocimiento

import "gorm.io/gorm"

type Repository interface {
	ListarVisibles(db *gorm.DB, perfilID uint) ([]Reconocimiento, error)
	Salvar(db *gorm.DB, rec *Reconocimiento) error
	BuscarPorID(db *gorm.DB, id uint) (*Reconocimiento, error)
	ListarTodos(db *gorm.DB) ([]Reconocimiento, error)
	Actualizar(db *gorm.DB, id uint, nuevosDatos *Reconocimiento) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListarVisibles retorna los reconocimientos visibles del perfil,
// ordenados por fecha descendente.
func (r *repositoryImpl) ListarVisibles(db *gorm.DB, perfilID uint) ([]Reconocimiento, error) {
	var reconocimientos []Reconocimiento
	err := db.Where("idperfilconqueestaactivo = ? AND activarparaqueseveaenfront = ?", perfilID, true).
		Order("fechareconocimiento DESC").
		Find(&reconocimientos).Error
	return reconocimientos, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, rec *Reconocimiento) error {
	return db.Omit("Perfil").Save(rec).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Reconocimiento, error) {
	var rec Reconocimiento
	err := db.First(&rec, id).Error
	return &rec, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Reconocimiento, error) {
	var reconocimientos []Reconocimiento
	err := db.Order("fechareconocimiento DESC").Find(&reconocimientos).Error
	return reconocimientos, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, id uint, nuevosDatos *Reconocimiento) error {
	var existente Reconocimiento
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	nuevosDatos.ID = existente.ID
	return db.Omit("Perfil").Save(nuevosDatos).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Reconocimiento{}, id).Error
}
