package reporte

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hojavida/api-curriculum/internal/experiencia"
	"github.com/hojavida/api-curriculum/internal/ventagarage"
)

func postGenerar(h *Handler, cuerpo string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/generar-pdf/", strings.NewReader(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.GenerarPDF(rec, req)
	return rec
}

func TestGenerarPDFHandlerSinSecciones(t *testing.T) {
	db := abrirDB(t)
	sembrarPerfil(t, db)
	h := NewHandler(db)

	rec := postGenerar(h, `{"secciones": []}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, ErrSinSecciones.Error(), resp["error"])
}

func TestGenerarPDFHandlerSinPerfil(t *testing.T) {
	db := abrirDB(t)
	h := NewHandler(db)

	rec := postGenerar(h, `{"secciones": ["perfil"]}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, ErrSinPerfil.Error(), resp["error"])
}

func TestGenerarPDFHandlerPayloadInvalido(t *testing.T) {
	db := abrirDB(t)
	sembrarPerfil(t, db)
	h := NewHandler(db)

	rec := postGenerar(h, `{secciones`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "payload inválido")
}

func TestGenerarPDFHandlerExito(t *testing.T) {
	db := abrirDB(t)
	p := sembrarPerfil(t, db)
	h := NewHandler(db)

	require.NoError(t, db.Create(&experiencia.ExperienciaLaboral{
		PerfilID:           p.ID,
		CargoDesempenado:   "Desarrolladora",
		NombreEmpresa:      "ACME",
		FechaInicioGestion: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Visible:            true,
	}).Error)

	rec := postGenerar(h, `{"secciones": ["experiencia", "perfil"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), `cv-ana-perez.pdf`)
	require.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestGenerarPDFHandlerImagenInalcanzableNoFalla(t *testing.T) {
	db := abrirDB(t)
	p := sembrarPerfil(t, db)
	h := NewHandler(db)

	require.NoError(t, db.Create(&ventagarage.VentaGarage{
		PerfilID:       p.ID,
		NombreProducto: "Bicicleta",
		EstadoProducto: ventagarage.EstadoBueno,
		ValorDelBien:   120,
		Visible:        true,
		ImagenProducto: "http://127.0.0.1:1/img.jpg",
	}).Error)

	rec := postGenerar(h, `{"secciones": ["ventagarage"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
}
