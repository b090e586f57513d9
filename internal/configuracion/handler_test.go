package configuracion

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func postConfiguracion(h *Handler, cuerpo string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/configuracion/", strings.NewReader(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Actualizar(rec, req)
	return rec
}

func TestActualizarApagaSoloLaSeccionIndicada(t *testing.T) {
	db := abrirDB(t)
	p := sembrarPerfil(t, db)
	h := NewHandler(db)

	rec := postConfiguracion(h, `{"experiencia": false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	config, err := h.Repository.ObtenerOCrear(db, p.ID)
	require.NoError(t, err)
	require.False(t, config.MostrarExperiencia)
	// las no mencionadas conservan su valor previo
	require.True(t, config.MostrarPerfil)
	require.True(t, config.MostrarCursos)
	require.True(t, config.MostrarVentaGarage)
}

func TestActualizarClaveCortaGanaSobreLarga(t *testing.T) {
	db := abrirDB(t)
	p := sembrarPerfil(t, db)
	h := NewHandler(db)

	rec := postConfiguracion(h, `{"cursos": false, "mostrar_cursos": true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	config, err := h.Repository.ObtenerOCrear(db, p.ID)
	require.NoError(t, err)
	require.False(t, config.MostrarCursos)
}

func TestActualizarFormaLargaLegada(t *testing.T) {
	db := abrirDB(t)
	p := sembrarPerfil(t, db)
	h := NewHandler(db)

	rec := postConfiguracion(h, `{"mostrar_venta_garage": false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	config, err := h.Repository.ObtenerOCrear(db, p.ID)
	require.NoError(t, err)
	require.False(t, config.MostrarVentaGarage)
}

func TestActualizarPayloadInvalido(t *testing.T) {
	db := abrirDB(t)
	sembrarPerfil(t, db)
	h := NewHandler(db)

	rec := postConfiguracion(h, `{esto no es json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, false, resp["success"])
	require.NotEmpty(t, resp["error"])
}

func TestActualizarSinPerfilActivo(t *testing.T) {
	db := abrirDB(t)
	h := NewHandler(db)

	rec := postConfiguracion(h, `{"perfil": false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, true, resp["success"])
	require.Contains(t, resp["message"], "sin perfil activo")

	var total int64
	require.NoError(t, db.Model(&ConfiguracionSecciones{}).Count(&total).Error)
	require.Equal(t, int64(0), total)
}

func TestActualizarDosLlamadasAcumulan(t *testing.T) {
	db := abrirDB(t)
	p := sembrarPerfil(t, db)
	h := NewHandler(db)

	rec := postConfiguracion(h, `{"reconocimientos": false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postConfiguracion(h, `{"reconocimientos": true, "perfil": false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	config, err := h.Repository.ObtenerOCrear(db, p.ID)
	require.NoError(t, err)
	require.True(t, config.MostrarReconocimientos)
	require.False(t, config.MostrarPerfil)
}
