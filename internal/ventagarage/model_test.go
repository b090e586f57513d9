package ventagarage

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
	require.NoError(t, db.AutoMigrate(&perfil.Perfil{}, &VentaGarage{}))
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

func TestBeforeSaveRechazaEstadoDesconocido(t *testing.T) {
	db := abrirDB(t)
	p := sembrarPerfil(t, db)

	v := &VentaGarage{
		PerfilID:       p.ID,
		NombreProducto: "Bicicleta",
		EstadoProducto: "Como nuevo",
		ValorDelBien:   120,
	}
	err := db.Create(v).Error
	require.Error(t, err)
	require.Contains(t, err.Error(), "estadoproducto")
}

func TestBeforeSaveRechazaValorNegativo(t *testing.T) {
	db := abrirDB(t)
	p := sembrarPerfil(t, db)

	v := &VentaGarage{
		PerfilID:       p.ID,
		NombreProducto: "Mesa",
		EstadoProducto: EstadoRegular,
		ValorDelBien:   -1,
	}
	err := db.Create(v).Error
	require.Error(t, err)
	require.Contains(t, err.Error(), "valordelbien")
}

func TestListarVisiblesOrdenaPorIDDescendente(t *testing.T) {
	db := abrirDB(t)
	repo := NewRepository()
	p := sembrarPerfil(t, db)

	crear := func(nombre string) {
		require.NoError(t, db.Create(&VentaGarage{
			PerfilID:       p.ID,
			NombreProducto: nombre,
			EstadoProducto: EstadoBueno,
			ValorDelBien:   50,
			Visible:        true,
		}).Error)
	}
	crear("Primero")
	crear("Segundo")
	crear("Tercero")

	articulos, err := repo.ListarVisibles(db, p.ID)
	require.NoError(t, err)
	require.Len(t, articulos, 3)
	require.Equal(t, "Tercero", articulos[0].NombreProducto)
	require.Equal(t, "Primero", articulos[2].NombreProducto)
}
