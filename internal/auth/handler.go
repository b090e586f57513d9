package auth

import (
	"encoding/json"
	"net/http"

	"github.com/hojavida/api-curriculum/internal/utils"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Usuario string `json:"usuario"`
	Clave   string `json:"clave"`
}

// Handler encapsula el DB para el login administrativo.
type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// Login genera un JWT para credenciales válidas.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	var u Usuario
	if err := h.DB.Where("nombre_usuario = ?", req.Usuario).First(&u).Error; err != nil {
		http.Error(w, "credenciales inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarClave(u.Clave, req.Clave) {
		http.Error(w, "clave incorrecta", http.StatusUnauthorized)
		return
	}

	token, err := GenerarToken(u.ID)
	if err != nil {
		http.Error(w, "error al generar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}
