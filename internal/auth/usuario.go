package auth

import "gorm.io/gorm"

// Usuario es la cuenta administradora que opera la superficie de escritura.
type Usuario struct {
	gorm.Model
	NombreUsuario string `gorm:"size:60;uniqueIndex" json:"nombre_usuario"`
	Clave         string `json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
