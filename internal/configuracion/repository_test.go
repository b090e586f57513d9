package configuracion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hojavida/api-curriculum/internal/perfil"
)

func abrirDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&perfil.Perfil{}, &ConfiguracionSecciones{}))
	return db
}

func sembrarPerfil(t *testing.T, db *gorm.DB) *perfil.Perfil {
	t.Helper()
	p := &perfil.Perfil{
		Nombres:         "Ana",
		Apellidos:       "Pérez",
		NumeroCedula:    "0000000001",
		PerfilActivo:    1,
		FechaNacimiento: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestObtenerOCrearCreaConTodoVisible(t *testing.T) {
	db := abrirDB(t)
	p := sembrarPerfil(t, db)
	repo := NewRepository()

	config, err := repo.ObtenerOCrear(db, p.ID)
	require.NoError(t, err)
	require.True(t, config.MostrarPerfil)
	require.True(t, config.MostrarExperiencia)
	require.True(t, config.MostrarReconocimientos)
	require.True(t, config.MostrarCursos)
	require.True(t, config.MostrarProductosAcademicos)
	require.True(t, config.MostrarProductosLaborales)
	require.True(t, config.MostrarVentaGarage)
}

func TestObtenerOCrearEsIdempotente(t *testing.T) {
	db := abrirDB(t)
	p := sembrarPerfil(t, db)
	repo := NewRepository()

	primera, err := repo.ObtenerOCrear(db, p.ID)
	require.NoError(t, err)
	segunda, err := repo.ObtenerOCrear(db, p.ID)
	require.NoError(t, err)
	require.Equal(t, primera.ID, segunda.ID)

	var total int64
	require.NoError(t, db.Model(&ConfiguracionSecciones{}).Where("perfil_id = ?", p.ID).Count(&total).Error)
	require.Equal(t, int64(1), total)
}
