package experiencia

import (
	"errors"
	"time"

	"github.com/hojavida/api-curriculum/internal/perfil"
	"gorm.io/gorm"
)

// ExperienciaLaboral mapea la tabla legada experiencialaboral.
// FechaFinGestion en nil significa gestión en curso ("Actual").
type ExperienciaLaboral struct {
	ID                   uint          `gorm:"primaryKey;column:idexperiencialaboral" json:"idexperiencialaboral"`
	PerfilID             uint          `gorm:"column:idperfilconqueestaactivo;not null;index" json:"idperfilconqueestaactivo"`
	Perfil               perfil.Perfil `gorm:"foreignKey:PerfilID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	CargoDesempenado     string        `gorm:"size:100;column:cargodesempenado" json:"cargodesempenado"`
	NombreEmpresa        string        `gorm:"size:50;column:nombreempresa" json:"nombreempresa"`
	LugarEmpresa         string        `gorm:"size:50;column:lugarempresa" json:"lugarempresa"`
	EmailEmpresa         string        `gorm:"size:100;column:emailempresa" json:"emailempresa"`
	SitioWebEmpresa      string        `gorm:"size:100;column:sitiowebempresa" json:"sitiowebempresa"`
	NombreContacto       string        `gorm:"size:100;column:nombrecontactoempresarial" json:"nombrecontactoempresarial"`
	TelefonoContacto     string        `gorm:"size:60;column:telefonocontactoempresarial" json:"telefonocontactoempresarial"`
	FechaInicioGestion   time.Time     `gorm:"column:fechainiciogestion" json:"fechainiciogestion"`
	FechaFinGestion      *time.Time    `gorm:"column:fechafingestion" json:"fechafingestion"`
	DescripcionFunciones string        `gorm:"type:text;column:descripcionfunciones" json:"descripcionfunciones"`
	Visible              bool          `gorm:"column:activarparaqueseveaenfront;default:true" json:"activarparaqueseveaenfront"`
	RutaCertificado      string        `gorm:"column:rutacertificado" json:"rutacertificado"`
}

func (ExperienciaLaboral) TableName() string { return "experiencialaboral" }

// BeforeSave valida el orden de fechas y que ninguna sea futura.
func (e *ExperienciaLaboral) BeforeSave(tx *gorm.DB) error {
	hoy := time.Now()
	if e.FechaFinGestion != nil && e.FechaInicioGestion.After(*e.FechaFinGestion) {
		return errors.New("fechafingestion: la fecha de finalización no puede ser anterior a la fecha de inicio")
	}
	if e.FechaInicioGestion.After(hoy) {
		return errors.New("fechainiciogestion: la fecha de inicio no puede ser futura")
	}
	if e.FechaFinGestion != nil && e.FechaFinGestion.After(hoy) {
		return errors.New("fechafingestion: la fecha de finalización no puede ser futura")
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ExperienciaLaboral{})
}
