package ventagarage

import (
	"errors"

	"github.com/hojavida/api-curriculum/internal/perfil"
	"gorm.io/gorm"
)

// Estados admitidos para un artículo en venta.
const (
	EstadoBueno   = "Bueno"
	EstadoRegular = "Regular"
)

// VentaGarage mapea la tabla legada ventagarage.
type VentaGarage struct {
	ID             uint          `gorm:"primaryKey;column:idventagarage" json:"idventagarage"`
	PerfilID       uint          `gorm:"column:idperfilconqueestaactivo;not null;index" json:"idperfilconqueestaactivo"`
	Perfil         perfil.Perfil `gorm:"foreignKey:PerfilID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	NombreProducto string        `gorm:"size:100;column:nombreproducto" json:"nombreproducto"`
	EstadoProducto string        `gorm:"size:40;column:estadoproducto" json:"estadoproducto"`
	Descripcion    string        `gorm:"type:text;column:descripcion" json:"descripcion"`
	ValorDelBien   float64       `gorm:"column:valordelbien" json:"valordelbien"`
	Visible        bool          `gorm:"column:activarparaqueseveaenfront;default:true" json:"activarparaqueseveaenfront"`
	ImagenProducto string        `gorm:"column:imagen_producto" json:"imagen_producto"` // URL remota de la imagen
}

func (VentaGarage) TableName() string { return "ventagarage" }

// BeforeSave valida estado y valor.
func (v *VentaGarage) BeforeSave(tx *gorm.DB) error {
	switch v.EstadoProducto {
	case EstadoBueno, EstadoRegular:
	default:
		return errors.New("estadoproducto: estado de producto desconocido")
	}
	if v.ValorDelBien < 0 {
		return errors.New("valordelbien: el valor del bien no puede ser negativo")
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&VentaGarage{})
}
