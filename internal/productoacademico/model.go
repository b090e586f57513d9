package productoacademico

import (
	"github.com/hojavida/api-curriculum/internal/perfil"
	"gorm.io/gorm"
)

// ProductoAcademico mapea la tabla legada productosacademicos.
// Sin campo de fecha: el orden natural es inserción inversa.
type ProductoAcademico struct {
	ID            uint          `gorm:"primaryKey;column:idproductoacademico" json:"idproductoacademico"`
	PerfilID      uint          `gorm:"column:idperfilconqueestaactivo;not null;index" json:"idperfilconqueestaactivo"`
	Perfil        perfil.Perfil `gorm:"foreignKey:PerfilID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	NombreRecurso string        `gorm:"size:100;column:nombrerecurso" json:"nombrerecurso"`
	Clasificador  string        `gorm:"size:100;column:clasificador" json:"clasificador"`
	Descripcion   string        `gorm:"type:text;column:descripcion" json:"descripcion"`
	Visible       bool          `gorm:"column:activarparaqueseveaenfront;default:true" json:"activarparaqueseveaenfront"`
}

func (ProductoAcademico) TableName() string { return "productosacademicos" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ProductoAcademico{})
}
