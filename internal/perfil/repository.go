package perfil

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	BuscarActivo(db *gorm.DB) (*Perfil, error)
	Salvar(db *gorm.DB, p *Perfil) error
	BuscarPorID(db *gorm.DB, id uint) (*Perfil, error)
	ListarTodos(db *gorm.DB) ([]Perfil, error)
	Actualizar(db *gorm.DB, id uint, nuevosDatos *Perfil) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// BuscarActivo retorna el primer perfil con perfilactivo=1; si no hay
// ninguno marcado, el primero almacenado. Con la tabla vacía retorna
// (nil, nil): el llamador debe manejar el estado sin perfil.
func (r *repositoryImpl) BuscarActivo(db *gorm.DB) (*Perfil, error) {
	var p Perfil
	err := db.Where("perfilactivo = ?", 1).Order("idperfil").First(&p).Error
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = db.Order("idperfil").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Perfil) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Perfil, error) {
	var p Perfil
	err := db.First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Perfil, error) {
	var perfiles []Perfil
	err := db.Order("idperfil").Find(&perfiles).Error
	return perfiles, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, id uint, nuevosDatos *Perfil) error {
	var existente Perfil
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	nuevosDatos.ID = existente.ID
	return db.Save(nuevosDatos).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Perfil{}, id).Error
}
