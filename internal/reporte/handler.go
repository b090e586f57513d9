package reporte

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hojavida/api-curriculum/internal/utils"
)

type generarRequest struct {
	Secciones []string `json:"secciones"`
}

type Handler struct {
	DB        *gorm.DB
	Assembler *Assembler
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:        db,
		Assembler: NewAssembler(db),
	}
}

// GenerarPDF atiende POST /api/generar-pdf/. El detalle de cualquier
// fallo inesperado queda solo en el log del servidor; el cliente
// recibe un mensaje genérico categorizado.
func (h *Handler) GenerarPDF(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			logrus.WithField("panic", rec).Error("fallo inesperado al generar PDF")
			logrus.Error(string(debug.Stack()))
			utils.ResponderError(w, http.StatusInternalServerError, "error interno al generar el PDF")
		}
	}()

	var req generarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, http.StatusBadRequest, "payload inválido")
		return
	}

	datos, nombre, err := h.Assembler.GenerarPDF(req.Secciones)
	switch {
	case errors.Is(err, ErrSinSecciones):
		utils.ResponderError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, ErrSinPerfil):
		utils.ResponderError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		logrus.WithError(err).Error("error al generar PDF")
		utils.ResponderError(w, http.StatusInternalServerError, "error interno al generar el PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, nombre))
	w.Write(datos)
}
