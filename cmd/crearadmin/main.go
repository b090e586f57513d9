package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/hojavida/api-curriculum/internal/auth"
	"github.com/hojavida/api-curriculum/internal/utils"
	"github.com/hojavida/api-curriculum/internal/utils/db"
)

// crearadmin crea o actualiza la cuenta administradora. La clave viene
// de la variable ADMIN_CLAVE o del flag -clave; si falta, se genera una
// temporal y se imprime una sola vez.
func main() {
	usuario := flag.String("usuario", "admin", "nombre de la cuenta administradora")
	clave := flag.String("clave", "", "clave de la cuenta (opcional)")
	flag.Parse()

	_ = godotenv.Load()

	database, err := db.ObtenerDB()
	if err != nil {
		logrus.WithError(err).Fatal("error al conectar a la base de datos")
	}
	if err := database.AutoMigrate(&auth.Usuario{}); err != nil {
		logrus.WithError(err).Fatal("error en AutoMigrate")
	}

	claveFinal := *clave
	if claveFinal == "" {
		claveFinal = os.Getenv("ADMIN_CLAVE")
	}
	generada := false
	if claveFinal == "" {
		claveFinal, err = utils.GenerarClaveTemporal()
		if err != nil {
			logrus.WithError(err).Fatal("error al generar clave temporal")
		}
		generada = true
	}

	hash, err := utils.HashClave(claveFinal)
	if err != nil {
		logrus.WithError(err).Fatal("error al procesar la clave")
	}

	var u auth.Usuario
	err = database.Where("nombre_usuario = ?", *usuario).First(&u).Error
	if err == nil {
		u.Clave = hash
		if err := database.Save(&u).Error; err != nil {
			logrus.WithError(err).Fatal("error al actualizar la cuenta")
		}
		fmt.Printf("cuenta %q actualizada\n", *usuario)
	} else {
		u = auth.Usuario{NombreUsuario: *usuario, Clave: hash}
		if err := database.Create(&u).Error; err != nil {
			logrus.WithError(err).Fatal("error al crear la cuenta")
		}
		fmt.Printf("cuenta %q creada\n", *usuario)
	}

	if generada {
		fmt.Printf("clave temporal: %s\n", claveFinal)
	}
}
