package configuracion

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	ObtenerOCrear(db *gorm.DB, perfilID uint) (*ConfiguracionSecciones, error)
	Salvar(db *gorm.DB, c *ConfiguracionSecciones) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ObtenerOCrear retorna la configuración del perfil, creándola con todas
// las secciones visibles si todavía no existe. Sin guardia de concurrencia:
// con un único operador la carrera de doble creación es aceptable.
func (r *repositoryImpl) ObtenerOCrear(db *gorm.DB, perfilID uint) (*ConfiguracionSecciones, error) {
	var c ConfiguracionSecciones
	err := db.Where("perfil_id = ?", perfilID).First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c = ConfiguracionSecciones{
		PerfilID:                   perfilID,
		MostrarPerfil:              true,
		MostrarExperiencia:         true,
		MostrarReconocimientos:     true,
		MostrarCursos:              true,
		MostrarProductosAcademicos: true,
		MostrarProductosLaborales:  true,
		MostrarVentaGarage:         true,
	}
	if err := db.Omit("Perfil").Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *ConfiguracionSecciones) error {
	return db.Omit("Perfil").Save(c).Error
}
