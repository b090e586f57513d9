package utils

import "golang.org/x/crypto/bcrypt"

// HashClave genera el hash bcrypt de la clave en texto plano.
func HashClave(clave string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarClave compara el hash bcrypt con la clave en texto y retorna true si coincide.
func VerificarClave(hash, clave string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(clave))
	return err == nil
}
