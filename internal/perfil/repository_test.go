package perfil

import (
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&Perfil{}))
	return db
}

func nuevoPerfil(cedula string, activo int) *Perfil {
	return &Perfil{
		DescripcionPerfil: "desarrollador",
		PerfilActivo:      activo,
		Apellidos:         "Pérez",
		Nombres:           "Ana",
		Nacionalidad:      "ecuatoriana",
		LugarNacimiento:   "Quito",
		FechaNacimiento:   time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		NumeroCedula:      cedula,
		Sexo:              "M",
		EstadoCivil:       "Soltera",
	}
}

func TestBuscarActivoPrefiereMarcado(t *testing.T) {
	db := abrirDB(t)
	repo := NewRepository()

	inactivo := nuevoPerfil("0000000001", 0)
	activo := nuevoPerfil("0000000002", 1)
	require.NoError(t, repo.Salvar(db, inactivo))
	require.NoError(t, repo.Salvar(db, activo))

	p, err := repo.BuscarActivo(db)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, activo.ID, p.ID)
}

func TestBuscarActivoFallbackAlPrimero(t *testing.T) {
	db := abrirDB(t)
	repo := NewRepository()

	primero := nuevoPerfil("0000000001", 0)
	segundo := nuevoPerfil("0000000002", 0)
	require.NoError(t, repo.Salvar(db, primero))
	require.NoError(t, repo.Salvar(db, segundo))

	p, err := repo.BuscarActivo(db)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, primero.ID, p.ID)
}

func TestBuscarActivoBaseVacia(t *testing.T) {
	db := abrirDB(t)
	repo := NewRepository()

	p, err := repo.BuscarActivo(db)
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestBeforeSaveRechazaNacimientoFuturo(t *testing.T) {
	db := abrirDB(t)

	p := nuevoPerfil("0000000003", 1)
	p.FechaNacimiento = time.Now().AddDate(1, 0, 0)
	err := db.Create(p).Error
	require.Error(t, err)
	require.Contains(t, err.Error(), "fechanacimiento")
}
