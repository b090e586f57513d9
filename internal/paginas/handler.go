package paginas

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hojavida/api-curriculum/internal/configuracion"
	"github.com/hojavida/api-curriculum/internal/curso"
	"github.com/hojavida/api-curriculum/internal/experiencia"
	"github.com/hojavida/api-curriculum/internal/perfil"
	"github.com/hojavida/api-curriculum/internal/productoacademico"
	"github.com/hojavida/api-curriculum/internal/productolaboral"
	"github.com/hojavida/api-curriculum/internal/reconocimiento"
	"github.com/hojavida/api-curriculum/internal/ventagarage"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Contexto es lo que reciben las plantillas públicas. Perfil en nil
// indica estado vacío: la página se renderiza igual, sin datos.
type Contexto struct {
	Perfil       *perfil.Perfil
	Config       *configuracion.ConfiguracionSecciones
	TituloPagina string

	Experiencias        []experiencia.ExperienciaLaboral
	Reconocimientos     []reconocimiento.Reconocimiento
	Cursos              []curso.Curso
	ProductosAcademicos []productoacademico.ProductoAcademico
	ProductosLaborales  []productolaboral.ProductoLaboral
	Articulos           []ventagarage.VentaGarage
}

// Handler agrupa los renderizadores de las páginas públicas; solo lee.
type Handler struct {
	DB                  *gorm.DB
	Perfiles            perfil.Repository
	Configuracion       configuracion.Repository
	Experiencias        experiencia.Repository
	RepoReconocimientos reconocimiento.Repository
	Cursos              curso.Repository
	ProdAcademicos      productoacademico.Repository
	ProdLaborales       productolaboral.Repository
	Articulos           ventagarage.Repository

	plantillas *template.Template
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:                  db,
		Perfiles:            perfil.NewRepository(),
		Configuracion:       configuracion.NewRepository(),
		Experiencias:        experiencia.NewRepository(),
		RepoReconocimientos: reconocimiento.NewRepository(),
		Cursos:              curso.NewRepository(),
		ProdAcademicos:      productoacademico.NewRepository(),
		ProdLaborales:       productolaboral.NewRepository(),
		Articulos:           ventagarage.NewRepository(),
		plantillas:          template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

func (h *Handler) render(w http.ResponseWriter, nombre string, ctx *Contexto) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.plantillas.ExecuteTemplate(w, nombre, ctx); err != nil {
		logrus.WithError(err).WithField("plantilla", nombre).Error("error al renderizar")
	}
}

// contextoBase resuelve perfil activo y configuración; ambos pueden
// quedar en nil con la base vacía.
func (h *Handler) contextoBase(titulo string) *Contexto {
	ctx := &Contexto{TituloPagina: titulo}

	p, err := h.Perfiles.BuscarActivo(h.DB)
	if err != nil {
		logrus.WithError(err).Error("error al resolver perfil activo")
		return ctx
	}
	if p == nil {
		return ctx
	}
	ctx.Perfil = p

	config, err := h.Configuracion.ObtenerOCrear(h.DB, p.ID)
	if err != nil {
		logrus.WithError(err).Error("error al resolver configuración")
		return ctx
	}
	ctx.Config = config
	return ctx
}

// Inicio es la página completa del perfil público.
func (h *Handler) Inicio(w http.ResponseWriter, r *http.Request) {
	ctx := h.contextoBase("Perfil Profesional")
	if ctx.Perfil != nil {
		id := ctx.Perfil.ID
		ctx.Experiencias, _ = h.Experiencias.ListarVisibles(h.DB, id)
		ctx.Reconocimientos, _ = h.RepoReconocimientos.ListarVisibles(h.DB, id)
		ctx.Cursos, _ = h.Cursos.ListarVisibles(h.DB, id)
		ctx.ProductosAcademicos, _ = h.ProdAcademicos.ListarVisibles(h.DB, id)
		ctx.ProductosLaborales, _ = h.ProdLaborales.ListarVisibles(h.DB, id)
		ctx.Articulos, _ = h.Articulos.ListarVisibles(h.DB, id)
	}
	h.render(w, "perfil.html", ctx)
}

func (h *Handler) ExperienciaLaboral(w http.ResponseWriter, r *http.Request) {
	ctx := h.contextoBase("Experiencia Laboral")
	if ctx.Perfil != nil {
		ctx.Experiencias, _ = h.Experiencias.ListarVisibles(h.DB, ctx.Perfil.ID)
	}
	h.render(w, "experiencia.html", ctx)
}

func (h *Handler) Reconocimientos(w http.ResponseWriter, r *http.Request) {
	ctx := h.contextoBase("Reconocimientos")
	if ctx.Perfil != nil {
		ctx.Reconocimientos, _ = h.RepoReconocimientos.ListarVisibles(h.DB, ctx.Perfil.ID)
	}
	h.render(w, "reconocimientos.html", ctx)
}

func (h *Handler) CursosRealizados(w http.ResponseWriter, r *http.Request) {
	ctx := h.contextoBase("Cursos Realizados")
	if ctx.Perfil != nil {
		ctx.Cursos, _ = h.Cursos.ListarVisibles(h.DB, ctx.Perfil.ID)
	}
	h.render(w, "cursos.html", ctx)
}

func (h *Handler) ProductosAcademicos(w http.ResponseWriter, r *http.Request) {
	ctx := h.contextoBase("Productos Académicos")
	if ctx.Perfil != nil {
		ctx.ProductosAcademicos, _ = h.ProdAcademicos.ListarVisibles(h.DB, ctx.Perfil.ID)
	}
	h.render(w, "productos_academicos.html", ctx)
}

func (h *Handler) ProductosLaborales(w http.ResponseWriter, r *http.Request) {
	ctx := h.contextoBase("Productos Laborales")
	if ctx.Perfil != nil {
		ctx.ProductosLaborales, _ = h.ProdLaborales.ListarVisibles(h.DB, ctx.Perfil.ID)
	}
	h.render(w, "productos_laborales.html", ctx)
}

func (h *Handler) VentaGarage(w http.ResponseWriter, r *http.Request) {
	ctx := h.contextoBase("Venta Garage")
	if ctx.Perfil != nil {
		ctx.Articulos, _ = h.Articulos.ListarVisibles(h.DB, ctx.Perfil.ID)
	}
	h.render(w, "venta_garage.html", ctx)
}
