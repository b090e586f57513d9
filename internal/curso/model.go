package curso

import (
	"errors"
	"time"

	"github.com/hojavida/api-curriculum/internal/perfil"
	"gorm.io/gorm"
)

// Curso mapea la tabla legada cursosrealizados.
type Curso struct {
	ID                     uint          `gorm:"primaryKey;column:idcursorealizado" json:"idcursorealizado"`
	PerfilID               uint          `gorm:"column:idperfilconqueestaactivo;not null;index" json:"idperfilconqueestaactivo"`
	Perfil                 perfil.Perfil `gorm:"foreignKey:PerfilID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	NombreCurso            string        `gorm:"size:100;column:nombrecurso" json:"nombrecurso"`
	FechaInicio            time.Time     `gorm:"column:fechainicio" json:"fechainicio"`
	FechaFin               time.Time     `gorm:"column:fechafin" json:"fechafin"`
	TotalHoras             int           `gorm:"column:totalhoras" json:"totalhoras"`
	DescripcionCurso       string        `gorm:"type:text;column:descripcioncurso" json:"descripcioncurso"`
	EntidadPatrocinadora   string        `gorm:"size:100;column:entidadpatrocinadora" json:"entidadpatrocinadora"`
	NombreContacto         string        `gorm:"size:100;column:nombrecontactoauspicia" json:"nombrecontactoauspicia"`
	TelefonoContacto       string        `gorm:"size:60;column:telefonocontactoauspicia" json:"telefonocontactoauspicia"`
	EmailEntidad           string        `gorm:"size:60;column:emailempresapatrocinadora" json:"emailempresapatrocinadora"`
	Visible                bool          `gorm:"column:activarparaqueseveaenfront;default:true" json:"activarparaqueseveaenfront"`
	RutaCertificado        string        `gorm:"column:rutacertificado" json:"rutacertificado"`
}

func (Curso) TableName() string { return "cursosrealizados" }

// BeforeSave valida el orden de fechas y las horas totales.
func (c *Curso) BeforeSave(tx *gorm.DB) error {
	if !c.FechaFin.IsZero() && c.FechaInicio.After(c.FechaFin) {
		return errors.New("fechafin: la fecha de finalización no puede ser anterior a la fecha de inicio")
	}
	if c.TotalHoras < 0 {
		return errors.New("totalhoras: las horas totales no pueden ser negativas")
	}
	if !c.FechaFin.IsZero() && c.FechaFin.After(time.Now()) {
		return errors.New("fechafin: la fecha de finalización no puede ser futura")
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Curso{})
}
