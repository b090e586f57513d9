package configuracion

import (
	"github.com/hojavida/api-curriculum/internal/perfil"
	"gorm.io/gorm"
)

// ConfiguracionSecciones guarda, por perfil, qué secciones se muestran
// en el sitio público y en la exportación PDF. Una fila por perfil,
// creada de forma perezosa en el primer acceso.
type ConfiguracionSecciones struct {
	ID                         uint          `gorm:"primaryKey" json:"id"`
	PerfilID                   uint          `gorm:"column:perfil_id;not null;index" json:"perfil_id"`
	Perfil                     perfil.Perfil `gorm:"foreignKey:PerfilID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	MostrarPerfil              bool          `gorm:"default:true" json:"mostrar_perfil"`
	MostrarExperiencia         bool          `gorm:"default:true" json:"mostrar_experiencia"`
	MostrarReconocimientos     bool          `gorm:"default:true" json:"mostrar_reconocimientos"`
	MostrarCursos              bool          `gorm:"default:true" json:"mostrar_cursos"`
	MostrarProductosAcademicos bool          `gorm:"default:true" json:"mostrar_productos_academicos"`
	MostrarProductosLaborales  bool          `gorm:"default:true" json:"mostrar_productos_laborales"`
	MostrarVentaGarage         bool          `gorm:"default:true" json:"mostrar_venta_garage"`
}

func (ConfiguracionSecciones) TableName() string { return "configuracionsecciones" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ConfiguracionSecciones{})
}
