package configuracion

import (
	"encoding/json"
	"net/http"

	"github.com/hojavida/api-curriculum/internal/perfil"
	"github.com/hojavida/api-curriculum/internal/utils"
	"gorm.io/gorm"
)

// actualizarRequest admite la clave corta de cada sección o su forma
// larga legada mostrar_*; la corta tiene precedencia. Los campos
// ausentes no tocan el valor almacenado.
type actualizarRequest struct {
	Perfil              *bool `json:"perfil"`
	MostrarPerfil       *bool `json:"mostrar_perfil"`
	Experiencia         *bool `json:"experiencia"`
	MostrarExperiencia  *bool `json:"mostrar_experiencia"`
	Reconocimientos     *bool `json:"reconocimientos"`
	MostrarReconocim    *bool `json:"mostrar_reconocimientos"`
	Cursos              *bool `json:"cursos"`
	MostrarCursos       *bool `json:"mostrar_cursos"`
	ProductosAcademicos *bool `json:"productosacademicos"`
	MostrarProdAcad     *bool `json:"mostrar_productos_academicos"`
	ProductosLaborales  *bool `json:"productoslaborales"`
	MostrarProdLab      *bool `json:"mostrar_productos_laborales"`
	VentaGarage         *bool `json:"ventagarage"`
	MostrarVentaGarage  *bool `json:"mostrar_venta_garage"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Perfiles   perfil.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Perfiles:   perfil.NewRepository(),
	}
}

// elegir aplica la precedencia corta > larga > valor actual.
func elegir(corta, larga *bool, actual bool) bool {
	if corta != nil {
		return *corta
	}
	if larga != nil {
		return *larga
	}
	return actual
}

// Actualizar persiste la configuración de secciones del perfil activo.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	var req actualizarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "payload inválido",
		})
		return
	}

	p, err := h.Perfiles.BuscarActivo(h.DB)
	if err != nil {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if p == nil {
		// sin perfil activo no hay nada que persistir
		utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "guardado omitido (sin perfil activo)",
		})
		return
	}

	config, err := h.Repository.ObtenerOCrear(h.DB, p.ID)
	if err != nil {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	config.MostrarPerfil = elegir(req.Perfil, req.MostrarPerfil, config.MostrarPerfil)
	config.MostrarExperiencia = elegir(req.Experiencia, req.MostrarExperiencia, config.MostrarExperiencia)
	config.MostrarReconocimientos = elegir(req.Reconocimientos, req.MostrarReconocim, config.MostrarReconocimientos)
	config.MostrarCursos = elegir(req.Cursos, req.MostrarCursos, config.MostrarCursos)
	config.MostrarProductosAcademicos = elegir(req.ProductosAcademicos, req.MostrarProdAcad, config.MostrarProductosAcademicos)
	config.MostrarProductosLaborales = elegir(req.ProductosLaborales, req.MostrarProdLab, config.MostrarProductosLaborales)
	config.MostrarVentaGarage = elegir(req.VentaGarage, req.MostrarVentaGarage, config.MostrarVentaGarage)

	if err := h.Repository.Salvar(h.DB, config); err != nil {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "configuración guardada",
	})
}

// Obtener retorna la configuración del perfil activo (superficie admin).
func (h *Handler) Obtener(w http.ResponseWriter, r *http.Request) {
	p, err := h.Perfiles.BuscarActivo(h.DB)
	if err != nil {
		http.Error(w, "error al resolver perfil activo", http.StatusInternalServerError)
		return
	}
	if p == nil {
		http.Error(w, "no hay perfil activo", http.StatusNotFound)
		return
	}

	config, err := h.Repository.ObtenerOCrear(h.DB, p.ID)
	if err != nil {
		http.Error(w, "error al obtener configuración", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, config)
}
