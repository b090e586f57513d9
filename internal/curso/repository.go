package curso

import "gorm.io/gorm"

type Repository interface {
	ListarVisibles(db *gorm.DB, perfilID uint) ([]Curso, error)
	Salvar(db *gorm.DB, c *Curso) error
	BuscarPorID(db *gorm.DB, id uint) (*Curso, error)
	ListarTodos(db *gorm.DB) ([]Curso, error)
	Actualizar(db *gorm.DB, id uint, nuevosDatos *Curso) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListarVisibles retorna los cursos visibles del perfil, ordenados por
// fecha de inicio descendente.
func (r *repositoryImpl) ListarVisibles(db *gorm.DB, perfilID uint) ([]Curso, error) {
	var cursos []Curso
	err := db.Where("idperfilconqueestaactivo = ? AND activarparaqueseveaenfront = ?", perfilID, true).
		Order("fechainicio DESC").
		Find(&cursos).Error
	return cursos, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Curso) error {
	return db.Omit("Perfil").Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Curso, error) {
	var c Curso
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Curso, error) {
	var cursos []Curso
	err := db.Order("fechainicio DESC").Find(&cursos).Error
	return cursos, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, id uint, nuevosDatos *Curso) error {
	var existente Curso
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	nuevosDatos.ID = existente.ID
	return db.Omit("Perfil").Save(nuevosDatos).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Curso{}, id).Error
}
