package productolaboral

import (
	"errors"
	"time"

	"github.com/hojavida/api-curriculum/internal/perfil"
	"gorm.io/gorm"
)

// ProductoLaboral mapea la tabla legada productoslaborales.
type ProductoLaboral struct {
	ID             uint          `gorm:"primaryKey;column:idproductolaboral" json:"idproductolaboral"`
	PerfilID       uint          `gorm:"column:idperfilconqueestaactivo;not null;index" json:"idperfilconqueestaactivo"`
	Perfil         perfil.Perfil `gorm:"foreignKey:PerfilID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	NombreProducto string        `gorm:"size:100;column:nombreproducto" json:"nombreproducto"`
	FechaProducto  time.Time     `gorm:"column:fechaproducto" json:"fechaproducto"`
	Descripcion    string        `gorm:"type:text;column:descripcion" json:"descripcion"`
	Visible        bool          `gorm:"column:activarparaqueseveaenfront;default:true" json:"activarparaqueseveaenfront"`
}

func (ProductoLaboral) TableName() string { return "productoslaborales" }

// BeforeSave valida que la fecha no sea futura.
func (p *ProductoLaboral) BeforeSave(tx *gorm.DB) error {
	if p.FechaProducto.After(time.Now()) {
		return errors.New("fechaproducto: la fecha del producto no puede ser futura")
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ProductoLaboral{})
}
