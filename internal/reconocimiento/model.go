package reconocimiento

import (
	"errors"
	"time"

	"github.com/hojavida/api-curriculum/internal/perfil"
	"gorm.io/gorm"
)

// Tipos de reconocimiento admitidos.
const (
	TipoAcademico = "Académico"
	TipoPublico   = "Público"
	TipoPrivado   = "Privado"
)

// Reconocimiento mapea la tabla legada reconocimientos.
type Reconocimiento struct {
	ID                   uint          `gorm:"primaryKey;column:idreconocimiento" json:"idreconocimiento"`
	PerfilID             uint          `gorm:"column:idperfilconqueestaactivo;not null;index" json:"idperfilconqueestaactivo"`
	Perfil               perfil.Perfil `gorm:"foreignKey:PerfilID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Tipo                 string        `gorm:"size:100;column:tiporeconocimiento" json:"tiporeconocimiento"`
	Fecha                time.Time     `gorm:"column:fechareconocimiento" json:"fechareconocimiento"`
	Descripcion          string        `gorm:"type:text;column:descripcionreconocimiento" json:"descripcionreconocimiento"`
	EntidadPatrocinadora string        `gorm:"size:100;column:entidadpatrocinadora" json:"entidadpatrocinadora"`
	NombreContacto       string        `gorm:"size:100;column:nombrecontactoauspicia" json:"nombrecontactoauspicia"`
	TelefonoContacto     string        `gorm:"size:60;column:telefonocontactoauspicia" json:"telefonocontactoauspicia"`
	Visible              bool          `gorm:"column:activarparaqueseveaenfront;default:true" json:"activarparaqueseveaenfront"`
	RutaCertificado      string        `gorm:"column:rutacertificado" json:"rutacertificado"`
}

func (Reconocimiento) TableName() string { return "reconocimientos" }

// BeforeSave valida tipo y fecha.
func (rec *Reconocimiento) BeforeSave(tx *gorm.DB) error {
	switch rec.Tipo {
	case TipoAcademico, TipoPublico, TipoPrivado:
	default:
		return errors.New("tiporeconocimiento: tipo de reconocimiento desconocido")
	}
	if rec.Fecha.After(time.Now()) {
		return errors.New("fechareconocimiento: la fecha de reconocimiento no puede ser futura")
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Reconocimiento{})
}
