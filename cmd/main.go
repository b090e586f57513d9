package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/hojavida/api-curriculum/internal/auth"
	"github.com/hojavida/api-curriculum/internal/configuracion"
	"github.com/hojavida/api-curriculum/internal/curso"
	"github.com/hojavida/api-curriculum/internal/experiencia"
	"github.com/hojavida/api-curriculum/internal/paginas"
	"github.com/hojavida/api-curriculum/internal/perfil"
	"github.com/hojavida/api-curriculum/internal/productoacademico"
	"github.com/hojavida/api-curriculum/internal/productolaboral"
	"github.com/hojavida/api-curriculum/internal/reconocimiento"
	"github.com/hojavida/api-curriculum/internal/reporte"
	"github.com/hojavida/api-curriculum/internal/utils/db"
	"github.com/hojavida/api-curriculum/internal/ventagarage"
)

func main() {
	// .env es opcional; las variables ya definidas tienen prioridad
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	database, err := db.ObtenerDB()
	if err != nil {
		logrus.WithError(err).Fatal("error al conectar a la base de datos")
	}

	if err := database.AutoMigrate(
		&auth.Usuario{},
		&perfil.Perfil{},
		&configuracion.ConfiguracionSecciones{},
		&experiencia.ExperienciaLaboral{},
		&reconocimiento.Reconocimiento{},
		&curso.Curso{},
		&productoacademico.ProductoAcademico{},
		&productolaboral.ProductoLaboral{},
		&ventagarage.VentaGarage{},
	); err != nil {
		logrus.WithError(err).Fatal("error en AutoMigrate")
	}

	// Handlers
	authHandler := auth.NewHandler(database)
	perfilHandler := perfil.NewHandler(database)
	configHandler := configuracion.NewHandler(database)
	experienciaHandler := experiencia.NewHandler(database)
	reconocimientoHandler := reconocimiento.NewHandler(database)
	cursoHandler := curso.NewHandler(database)
	prodAcademicoHandler := productoacademico.NewHandler(database)
	prodLaboralHandler := productolaboral.NewHandler(database)
	ventaHandler := ventagarage.NewHandler(database)
	paginasHandler := paginas.NewHandler(database)
	reporteHandler := reporte.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Páginas públicas (solo lectura)
	r.HandleFunc("/", paginasHandler.Inicio).Methods("GET")
	r.HandleFunc("/experiencia-laboral/", paginasHandler.ExperienciaLaboral).Methods("GET")
	r.HandleFunc("/reconocimientos/", paginasHandler.Reconocimientos).Methods("GET")
	r.HandleFunc("/cursos-realizados/", paginasHandler.CursosRealizados).Methods("GET")
	r.HandleFunc("/productos-academicos/", paginasHandler.ProductosAcademicos).Methods("GET")
	r.HandleFunc("/productos-laborales/", paginasHandler.ProductosLaborales).Methods("GET")
	r.HandleFunc("/venta-garage/", paginasHandler.VentaGarage).Methods("GET")

	// APIs públicas
	r.HandleFunc("/api/configuracion/", configHandler.Actualizar).Methods("POST")
	r.HandleFunc("/api/generar-pdf/", reporteHandler.GenerarPDF).Methods("POST")

	// Superficie administrativa: única vía de escritura del dominio
	r.HandleFunc("/admin/api/login", authHandler.Login).Methods("POST")

	admin := r.PathPrefix("/admin/api").Subrouter()
	admin.Use(auth.MiddlewareAutenticacion)

	admin.HandleFunc("/configuracion", configHandler.Obtener).Methods("GET")

	admin.HandleFunc("/perfiles", perfilHandler.Crear).Methods("POST")
	admin.HandleFunc("/perfiles", perfilHandler.Listar).Methods("GET")
	admin.HandleFunc("/perfiles/{id}", perfilHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/perfiles/{id}", perfilHandler.Actualizar).Methods("PUT")
	admin.HandleFunc("/perfiles/{id}", perfilHandler.Eliminar).Methods("DELETE")

	admin.HandleFunc("/experiencias", experienciaHandler.Crear).Methods("POST")
	admin.HandleFunc("/experiencias", experienciaHandler.Listar).Methods("GET")
	admin.HandleFunc("/experiencias/{id}", experienciaHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/experiencias/{id}", experienciaHandler.Actualizar).Methods("PUT")
	admin.HandleFunc("/experiencias/{id}", experienciaHandler.Eliminar).Methods("DELETE")

	admin.HandleFunc("/reconocimientos", reconocimientoHandler.Crear).Methods("POST")
	admin.HandleFunc("/reconocimientos", reconocimientoHandler.Listar).Methods("GET")
	admin.HandleFunc("/reconocimientos/{id}", reconocimientoHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/reconocimientos/{id}", reconocimientoHandler.Actualizar).Methods("PUT")
	admin.HandleFunc("/reconocimientos/{id}", reconocimientoHandler.Eliminar).Methods("DELETE")

	admin.HandleFunc("/cursos", cursoHandler.Crear).Methods("POST")
	admin.HandleFunc("/cursos", cursoHandler.Listar).Methods("GET")
	admin.HandleFunc("/cursos/{id}", cursoHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/cursos/{id}", cursoHandler.Actualizar).Methods("PUT")
	admin.HandleFunc("/cursos/{id}", cursoHandler.Eliminar).Methods("DELETE")

	admin.HandleFunc("/productos-academicos", prodAcademicoHandler.Crear).Methods("POST")
	admin.HandleFunc("/productos-academicos", prodAcademicoHandler.Listar).Methods("GET")
	admin.HandleFunc("/productos-academicos/{id}", prodAcademicoHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/productos-academicos/{id}", prodAcademicoHandler.Actualizar).Methods("PUT")
	admin.HandleFunc("/productos-academicos/{id}", prodAcademicoHandler.Eliminar).Methods("DELETE")

	admin.HandleFunc("/productos-laborales", prodLaboralHandler.Crear).Methods("POST")
	admin.HandleFunc("/productos-laborales", prodLaboralHandler.Listar).Methods("GET")
	admin.HandleFunc("/productos-laborales/{id}", prodLaboralHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/productos-laborales/{id}", prodLaboralHandler.Actualizar).Methods("PUT")
	admin.HandleFunc("/productos-laborales/{id}", prodLaboralHandler.Eliminar).Methods("DELETE")

	admin.HandleFunc("/venta-garage", ventaHandler.Crear).Methods("POST")
	admin.HandleFunc("/venta-garage", ventaHandler.Listar).Methods("GET")
	admin.HandleFunc("/venta-garage/{id}", ventaHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/venta-garage/{id}", ventaHandler.Actualizar).Methods("PUT")
	admin.HandleFunc("/venta-garage/{id}", ventaHandler.Eliminar).Methods("DELETE")

	puerto := os.Getenv("PORT")
	if puerto == "" {
		puerto = "8080"
	}

	handler := cors.AllowAll().Handler(r)

	logrus.Infof("servidor escuchando en http://localhost:%s", puerto)
	logrus.Fatal(http.ListenAndServe(":"+puerto, handler))
}
