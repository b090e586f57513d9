package experiencia

import (
	"testing"
	"time"

	"github.com/hojavida/api-curriculum/internal/perfil"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func abrirDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&perfil.Perfil{}, &ExperienciaLaboral{}))
	return db
}

func sembrarPerfil(t *testing.T, db *gorm.DB, cedula string, activo int) *perfil.Perfil {
	t.Helper()
	p := &perfil.Perfil{
		Nombres:         "Ana",
		Apellidos:       "Pérez",
		NumeroCedula:    cedula,
		PerfilActivo:    activo,
		FechaNacimiento: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func nuevaExperiencia(perfilID uint, cargo string, inicio time.Time, visible bool) *ExperienciaLaboral {
	return &ExperienciaLaboral{
		PerfilID:           perfilID,
		CargoDesempenado:   cargo,
		NombreEmpresa:      "ACME",
		FechaInicioGestion: inicio,
		Visible:            visible,
	}
}

func TestListarVisiblesFiltraPorPerfilYVisibilidad(t *testing.T) {
	db := abrirDB(t)
	repo := NewRepository()
	p := sembrarPerfil(t, db, "0000000001", 1)
	otro := sembrarPerfil(t, db, "0000000002", 0)

	inicio := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Salvar(db, nuevaExperiencia(p.ID, "Visible", inicio, true)))
	require.NoError(t, repo.Salvar(db, nuevaExperiencia(p.ID, "Oculta", inicio, false)))
	require.NoError(t, repo.Salvar(db, nuevaExperiencia(otro.ID, "De otro perfil", inicio, true)))

	visibles, err := repo.ListarVisibles(db, p.ID)
	require.NoError(t, err)
	require.Len(t, visibles, 1)
	require.Equal(t, "Visible", visibles[0].CargoDesempenado)
}

func TestListarVisiblesOrdenaPorInicioDescendente(t *testing.T) {
	db := abrirDB(t)
	repo := NewRepository()
	p := sembrarPerfil(t, db, "0000000001", 1)

	require.NoError(t, repo.Salvar(db, nuevaExperiencia(p.ID, "Antigua", time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC), true)))
	require.NoError(t, repo.Salvar(db, nuevaExperiencia(p.ID, "Reciente", time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC), true)))
	require.NoError(t, repo.Salvar(db, nuevaExperiencia(p.ID, "Media", time.Date(2019, 11, 1, 0, 0, 0, 0, time.UTC), true)))

	visibles, err := repo.ListarVisibles(db, p.ID)
	require.NoError(t, err)
	require.Len(t, visibles, 3)
	require.Equal(t, "Reciente", visibles[0].CargoDesempenado)
	require.Equal(t, "Media", visibles[1].CargoDesempenado)
	require.Equal(t, "Antigua", visibles[2].CargoDesempenado)
}

func TestBeforeSaveRechazaFinAnteriorAlInicio(t *testing.T) {
	db := abrirDB(t)
	repo := NewRepository()
	p := sembrarPerfil(t, db, "0000000001", 1)

	fin := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	e := nuevaExperiencia(p.ID, "Invertida", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), true)
	e.FechaFinGestion = &fin

	err := repo.Salvar(db, e)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fechafingestion")
}

func TestBeforeSaveRechazaInicioFuturo(t *testing.T) {
	db := abrirDB(t)
	repo := NewRepository()
	p := sembrarPerfil(t, db, "0000000001", 1)

	err := repo.Salvar(db, nuevaExperiencia(p.ID, "Futura", time.Now().AddDate(1, 0, 0), true))
	require.Error(t, err)
	require.Contains(t, err.Error(), "fechainiciogestion")
}

func TestGestionEnCursoPersisteFinNulo(t *testing.T) {
	db := abrirDB(t)
	repo := NewRepository()
	p := sembrarPerfil(t, db, "0000000001", 1)

	e := nuevaExperiencia(p.ID, "Actual", time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), true)
	require.NoError(t, repo.Salvar(db, e))

	guardada, err := repo.BuscarPorID(db, e.ID)
	require.NoError(t, err)
	require.Nil(t, guardada.FechaFinGestion)
}
