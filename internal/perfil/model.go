package perfil

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Perfil mapea la tabla legada datospersonales. El perfil con
// perfilactivo=1 es el que se publica; los demás quedan archivados.
type Perfil struct {
	ID                    uint      `gorm:"primaryKey;column:idperfil" json:"idperfil"`
	DescripcionPerfil     string    `gorm:"size:50;column:descripcionperfil" json:"descripcionperfil"`
	PerfilActivo          int       `gorm:"column:perfilactivo;default:1" json:"perfilactivo"`
	Apellidos             string    `gorm:"size:60;column:apellidos" json:"apellidos"`
	Nombres               string    `gorm:"size:60;column:nombres" json:"nombres"`
	Nacionalidad          string    `gorm:"size:20;column:nacionalidad" json:"nacionalidad"`
	LugarNacimiento       string    `gorm:"size:60;column:lugarnacimiento" json:"lugarnacimiento"`
	FechaNacimiento       time.Time `gorm:"column:fechanacimiento" json:"fechanacimiento"`
	NumeroCedula          string    `gorm:"size:10;unique;column:numerocedula" json:"numerocedula"`
	Sexo                  string    `gorm:"size:1;column:sexo" json:"sexo"` // "H" | "M"
	EstadoCivil           string    `gorm:"size:50;column:estadocivil" json:"estadocivil"`
	LicenciaConducir      string    `gorm:"size:6;column:licenciaconducir" json:"licenciaconducir"`
	TelefonoConvencional  string    `gorm:"size:15;column:telefonoconvencional" json:"telefonoconvencional"`
	TelefonoFijo          string    `gorm:"size:15;column:telefonofijo" json:"telefonofijo"`
	DireccionTrabajo      string    `gorm:"size:50;column:direcciontrabajo" json:"direcciontrabajo"`
	DireccionDomiciliaria string    `gorm:"size:50;column:direcciondomiciliaria" json:"direcciondomiciliaria"`
	SitioWeb              string    `gorm:"size:60;column:sitioweb" json:"sitioweb"`
	FotoPerfil            string    `gorm:"column:foto_perfil" json:"foto_perfil"` // URL remota de la foto
}

func (Perfil) TableName() string { return "datospersonales" }

// BeforeSave aplica las validaciones de campo al momento de guardar.
func (p *Perfil) BeforeSave(tx *gorm.DB) error {
	if !p.FechaNacimiento.IsZero() && p.FechaNacimiento.After(time.Now()) {
		return errors.New("fechanacimiento: la fecha de nacimiento no puede ser futura")
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Perfil{})
}
