package reporte

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hojavida/api-curriculum/internal/configuracion"
	"github.com/hojavida/api-curriculum/internal/curso"
	"github.com/hojavida/api-curriculum/internal/experiencia"
	"github.com/hojavida/api-curriculum/internal/perfil"
	"github.com/hojavida/api-curriculum/internal/productoacademico"
	"github.com/hojavida/api-curriculum/internal/productolaboral"
	"github.com/hojavida/api-curriculum/internal/reconocimiento"
	"github.com/hojavida/api-curriculum/internal/ventagarage"
)

func abrirDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&perfil.Perfil{},
		&configuracion.ConfiguracionSecciones{},
		&experiencia.ExperienciaLaboral{},
		&reconocimiento.Reconocimiento{},
		&curso.Curso{},
		&productoacademico.ProductoAcademico{},
		&productolaboral.ProductoLaboral{},
		&ventagarage.VentaGarage{},
	))
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

func TestGenerarPDFSinSecciones(t *testing.T) {
	db := abrirDB(t)
	sembrarPerfil(t, db)
	a := NewAssembler(db)

	_, _, err := a.GenerarPDF(nil)
	require.ErrorIs(t, err, ErrSinSecciones)

	_, _, err = a.GenerarPDF([]string{})
	require.ErrorIs(t, err, ErrSinSecciones)
}

func TestGenerarPDFSinPerfil(t *testing.T) {
	db := abrirDB(t)
	a := NewAssembler(db)

	_, _, err := a.GenerarPDF([]string{SeccionPerfil})
	require.ErrorIs(t, err, ErrSinPerfil)
}

func TestGenerarPDFDocumentoCompleto(t *testing.T) {
	db := abrirDB(t)
	p := sembrarPerfil(t, db)
	a := NewAssembler(db)

	require.NoError(t, db.Create(&experiencia.ExperienciaLaboral{
		PerfilID:           p.ID,
		CargoDesempenado:   "Desarrolladora",
		NombreEmpresa:      "ACME",
		FechaInicioGestion: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Visible:            true,
	}).Error)

	datos, nombre, err := a.GenerarPDF([]string{SeccionPerfil, SeccionExperiencia})
	require.NoError(t, err)
	require.Equal(t, "cv-ana-perez.pdf", nombre)
	require.True(t, strings.HasPrefix(string(datos[:5]), "%PDF-"))
}

func TestGenerarPDFResuelveConfiguracion(t *testing.T) {
	// pedir el PDF debe dejar creada la configuración del perfil,
	// aunque las secciones pedidas manden sobre lo almacenado
	db := abrirDB(t)
	sembrarPerfil(t, db)
	a := NewAssembler(db)

	_, _, err := a.GenerarPDF([]string{SeccionPerfil})
	require.NoError(t, err)

	var total int64
	require.NoError(t, db.Model(&configuracion.ConfiguracionSecciones{}).Count(&total).Error)
	require.Equal(t, int64(1), total)
}

func TestUrlCertificadoReescribeRutaYAgregaTimestamp(t *testing.T) {
	u := urlCertificado("https://res.cloudinary.com/demo/image/upload/v1/certs/doc.pdf")
	require.Contains(t, u, "/raw/upload/")
	require.NotContains(t, u, "/image/upload/")
	require.Contains(t, u, "?_=")
}

func TestUrlCertificadoSinSegmentoImagen(t *testing.T) {
	u := urlCertificado("https://example.com/certs/doc.pdf")
	require.True(t, strings.HasPrefix(u, "https://example.com/certs/doc.pdf?_="))
}

func TestTruncarRespetaRunas(t *testing.T) {
	require.Equal(t, "córt", truncar("córtame aquí", 4))
	require.Equal(t, "corto", truncar("corto", 100))
}

func TestMesAnio(t *testing.T) {
	require.Equal(t, "ene 2020", mesAnio(time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "dic 2023", mesAnio(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNuevosEstilosNoCompartenEstado(t *testing.T) {
	a := NuevosEstilos()
	b := NuevosEstilos()
	a.Primario.R = 0
	require.NotEqual(t, a.Primario.R, b.Primario.R)
}
