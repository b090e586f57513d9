package utils

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"
)

// ResponderJSON escribe el payload como application/json con el status indicado.
func ResponderJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// ResponderError escribe un error JSON en la forma {"error": mensaje}.
func ResponderError(w http.ResponseWriter, status int, mensaje string) {
	ResponderJSON(w, status, map[string]string{"error": mensaje})
}

// GenerarClaveTemporal genera una clave aleatoria segura de 12 caracteres.
func GenerarClaveTemporal() (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length := 12
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		result[i] = chars[num.Int64()]
	}
	return string(result), nil
}
