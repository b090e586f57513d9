package reporte

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/jung-kurt/gofpdf"
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

// Errores con categoría propia hacia el cliente; cualquier otro fallo
// se responde como error genérico y el detalle queda solo en el log.
var (
	ErrSinSecciones = errors.New("no se seleccionaron secciones")
	ErrSinPerfil    = errors.New("no hay datos de perfil disponibles en el sistema")
)

// Identificadores de sección y su orden fijo de emisión. El orden en
// que el cliente pida las secciones no altera el documento.
const (
	SeccionPerfil              = "perfil"
	SeccionExperiencia         = "experiencia"
	SeccionReconocimientos     = "reconocimientos"
	SeccionCursos              = "cursos"
	SeccionProductosAcademicos = "productosacademicos"
	SeccionProductosLaborales  = "productoslaborales"
	SeccionVentaGarage         = "ventagarage"
)

var ordenSecciones = []string{
	SeccionPerfil,
	SeccionExperiencia,
	SeccionReconocimientos,
	SeccionCursos,
	SeccionProductosAcademicos,
	SeccionProductosLaborales,
	SeccionVentaGarage,
}

// Geometría de página en mm (A4 vertical).
const (
	margenIzq = 20
	margenDer = 20
	margenSup = 15
	margenInf = 25
	anchoUtil = 170 // 210 - márgenes laterales
)

// Assembler arma el documento PDF a partir de las colecciones visibles
// del perfil activo.
type Assembler struct {
	DB              *gorm.DB
	Perfiles        perfil.Repository
	Configuracion   configuracion.Repository
	Experiencias    experiencia.Repository
	Reconocimientos reconocimiento.Repository
	Cursos          curso.Repository
	ProdAcademicos  productoacademico.Repository
	ProdLaborales   productolaboral.Repository
	Articulos       ventagarage.Repository
}

func NewAssembler(db *gorm.DB) *Assembler {
	return &Assembler{
		DB:              db,
		Perfiles:        perfil.NewRepository(),
		Configuracion:   configuracion.NewRepository(),
		Experiencias:    experiencia.NewRepository(),
		Reconocimientos: reconocimiento.NewRepository(),
		Cursos:          curso.NewRepository(),
		ProdAcademicos:  productoacademico.NewRepository(),
		ProdLaborales:   productolaboral.NewRepository(),
		Articulos:       ventagarage.NewRepository(),
	}
}

// GenerarPDF construye el documento con las secciones pedidas y
// retorna los bytes junto al nombre de archivo sugerido.
//
// Semántica de override de exportación: la configuración almacenada se
// resuelve (conservando su efecto get-or-create) pero el conjunto de
// secciones del pedido es el que manda sobre lo que se renderiza.
func (a *Assembler) GenerarPDF(secciones []string) ([]byte, string, error) {
	if len(secciones) == 0 {
		return nil, "", ErrSinSecciones
	}

	p, err := a.Perfiles.BuscarActivo(a.DB)
	if err != nil {
		return nil, "", err
	}
	if p == nil {
		return nil, "", ErrSinPerfil
	}

	if _, err := a.Configuracion.ObtenerOCrear(a.DB, p.ID); err != nil {
		return nil, "", err
	}

	seleccion := make(map[string]bool, len(secciones))
	for _, s := range secciones {
		seleccion[s] = true
	}

	est := NuevosEstilos()
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("CV - %s %s", p.Nombres, p.Apellidos), true)
	pdf.SetMargins(margenIzq, margenSup, margenDer)
	pdf.SetAutoPageBreak(true, margenInf)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Paginado diferido: el pie se emite por página con el alias {nb}
	// y gofpdf sustituye el total real al cerrar el documento.
	pdf.AliasNbPages("")
	fechaGeneracion := time.Now().Format("02/01/2006")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetDrawColor(est.Primario.R, est.Primario.G, est.Primario.B)
		pdf.SetLineWidth(0.4)
		pdf.Line(margenIzq, pdf.GetY(), margenIzq+anchoUtil, pdf.GetY())
		pdf.SetY(-15)
		aplicar(pdf, est.GrisPequeno)
		pdf.CellFormat(anchoUtil/2, 6, tr("Generado: "+fechaGeneracion), "", 0, "L", false, 0, "")
		pdf.CellFormat(anchoUtil/2, 6, tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	a.emitirCabecera(pdf, tr, est, p)

	for _, s := range ordenSecciones {
		if !seleccion[s] {
			continue
		}
		switch s {
		case SeccionPerfil:
			a.emitirPerfil(pdf, tr, est, p)
		case SeccionExperiencia:
			if err := a.emitirExperiencia(pdf, tr, est, p.ID); err != nil {
				return nil, "", err
			}
		case SeccionReconocimientos:
			if err := a.emitirReconocimientos(pdf, tr, est, p.ID); err != nil {
				return nil, "", err
			}
		case SeccionCursos:
			if err := a.emitirCursos(pdf, tr, est, p.ID); err != nil {
				return nil, "", err
			}
		case SeccionProductosAcademicos:
			if err := a.emitirProductosAcademicos(pdf, tr, est, p.ID); err != nil {
				return nil, "", err
			}
		case SeccionProductosLaborales:
			if err := a.emitirProductosLaborales(pdf, tr, est, p.ID); err != nil {
				return nil, "", err
			}
		case SeccionVentaGarage:
			if err := a.emitirVentaGarage(pdf, tr, est, p.ID); err != nil {
				return nil, "", err
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("composición del PDF: %w", err)
	}

	nombre := slug.Make(fmt.Sprintf("cv %s %s", p.Nombres, p.Apellidos)) + ".pdf"
	return buf.Bytes(), nombre, nil
}

// emitirCabecera dibuja el bloque superior: foto (si hay y se pudo
// descargar), nombre, cédula y línea de contacto, más la regla de acento.
// Si la foto falla, la columna de texto ocupa todo el ancho.
func (a *Assembler) emitirCabecera(pdf *gofpdf.Fpdf, tr func(string) string, est Estilos, p *perfil.Perfil) {
	textoX := float64(margenIzq)
	inicioY := pdf.GetY()
	finFoto := inicioY

	if p.FotoPerfil != "" {
		if buf, err := descargarMiniatura(p.FotoPerfil, 300); err != nil {
			logrus.WithError(err).Warn("no se pudo cargar la foto de perfil; se omite")
		} else {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("foto-perfil", opts, buf)
			pdf.ImageOptions("foto-perfil", margenIzq, inicioY, 40, 40, false, opts, 0, "")
			textoX = margenIzq + 50
			finFoto = inicioY + 40
		}
	}

	pdf.SetXY(textoX, inicioY+2)
	aplicar(pdf, est.TituloPrincipal)
	pdf.CellFormat(0, 10, tr(p.Nombres+" "+p.Apellidos), "", 1, "L", false, 0, "")

	pdf.SetX(textoX)
	aplicar(pdf, est.Subtitulo)
	pdf.CellFormat(0, 6, tr("Cédula: "+p.NumeroCedula), "", 1, "L", false, 0, "")

	var contactos []string
	if p.TelefonoConvencional != "" {
		contactos = append(contactos, "Tel. "+p.TelefonoConvencional)
	}
	if p.SitioWeb != "" {
		contactos = append(contactos, "Web "+p.SitioWeb)
	}
	if p.DireccionDomiciliaria != "" {
		contactos = append(contactos, "Dir. "+p.DireccionDomiciliaria)
	}
	if len(contactos) > 0 {
		pdf.SetX(textoX)
		aplicar(pdf, est.GrisPequeno)
		pdf.MultiCell(0, 5, tr(strings.Join(contactos, " | ")), "", "L", false)
	}

	if pdf.GetY() < finFoto {
		pdf.SetY(finFoto)
	}
	pdf.Ln(3)

	y := pdf.GetY()
	pdf.SetDrawColor(est.Primario.R, est.Primario.G, est.Primario.B)
	pdf.SetLineWidth(0.8)
	pdf.Line(margenIzq, y, margenIzq+anchoUtil, y)
	pdf.Ln(4)
}

// encabezadoSeccion dibuja el título de sección con su marcador de acento.
func encabezadoSeccion(pdf *gofpdf.Fpdf, tr func(string) string, est Estilos, titulo string) {
	pdf.Ln(3)
	aplicar(pdf, est.EncabezadoSeccion)
	y := pdf.GetY() + 4.5
	pdf.SetDrawColor(est.Primario.R, est.Primario.G, est.Primario.B)
	pdf.SetLineWidth(1.4)
	pdf.Line(margenIzq, y, margenIzq+12, y)
	pdf.SetX(margenIzq + 15)
	pdf.CellFormat(0, 9, tr(titulo), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func (a *Assembler) emitirPerfil(pdf *gofpdf.Fpdf, tr func(string) string, est Estilos, p *perfil.Perfil) {
	encabezadoSeccion(pdf, tr, est, "PERFIL PROFESIONAL")

	aplicar(pdf, est.TituloEntrada)
	pdf.SetFontSize(est.Cuerpo.Tamano)
	pdf.Write(6, tr("Sobre mí: "))
	aplicar(pdf, est.Cuerpo)
	pdf.Write(6, tr(p.DescripcionPerfil))
	pdf.Ln(9)

	// grilla 2x4 etiqueta/valor sobre panel claro
	celdas := [][4]string{
		{"Fecha de Nacimiento:", p.FechaNacimiento.Format("02/01/2006"), "Nacionalidad:", p.Nacionalidad},
		{"Lugar de Nacimiento:", p.LugarNacimiento, "Estado Civil:", p.EstadoCivil},
	}
	anchos := [4]float64{38, 50, 30, 52}

	pdf.SetFillColor(est.FondoClaro.R, est.FondoClaro.G, est.FondoClaro.B)
	for _, fila := range celdas {
		for i, texto := range fila {
			if i%2 == 0 {
				pdf.SetFont("Helvetica", "B", 9)
			} else {
				pdf.SetFont("Helvetica", "", 9)
			}
			pdf.SetTextColor(est.Oscuro.R, est.Oscuro.G, est.Oscuro.B)
			pdf.CellFormat(anchos[i], 10, tr(texto), "", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

func (a *Assembler) emitirExperiencia(pdf *gofpdf.Fpdf, tr func(string) string, est Estilos, perfilID uint) error {
	experiencias, err := a.Experiencias.ListarVisibles(a.DB, perfilID)
	if err != nil {
		return err
	}
	if len(experiencias) == 0 {
		return nil
	}

	encabezadoSeccion(pdf, tr, est, "EXPERIENCIA LABORAL")
	for _, e := range experiencias {
		aplicar(pdf, est.TituloEntrada)
		pdf.CellFormat(0, 6, tr(e.CargoDesempenado), "", 1, "L", false, 0, "")

		fechas := mesAnio(e.FechaInicioGestion) + " - "
		if e.FechaFinGestion != nil {
			fechas += mesAnio(*e.FechaFinGestion)
		} else {
			fechas += "Actual"
		}
		linea := e.NombreEmpresa + " | " + fechas
		if e.LugarEmpresa != "" {
			linea += " | " + e.LugarEmpresa
		}
		aplicar(pdf, est.InfoEntidad)
		pdf.CellFormat(0, 5, tr(linea), "", 1, "L", false, 0, "")
		pdf.Ln(1)

		if e.DescripcionFunciones != "" {
			aplicar(pdf, est.Cuerpo)
			pdf.MultiCell(0, 5.5, tr(e.DescripcionFunciones), "", "J", false)
		}

		if e.RutaCertificado != "" {
			emitirEnlaceCertificado(pdf, tr, e.RutaCertificado)
		}
		pdf.Ln(4)
	}
	return nil
}

func (a *Assembler) emitirReconocimientos(pdf *gofpdf.Fpdf, tr func(string) string, est Estilos, perfilID uint) error {
	reconocimientos, err := a.Reconocimientos.ListarVisibles(a.DB, perfilID)
	if err != nil {
		return err
	}
	if len(reconocimientos) == 0 {
		return nil
	}

	encabezadoSeccion(pdf, tr, est, "RECONOCIMIENTOS")
	for _, rec := range reconocimientos {
		aplicar(pdf, est.TituloEntrada)
		pdf.CellFormat(0, 6, tr(rec.Tipo+" | "+mesAnio(rec.Fecha)), "", 1, "L", false, 0, "")

		aplicar(pdf, est.Cuerpo)
		pdf.MultiCell(0, 5.5, tr(rec.Descripcion), "", "J", false)

		pdf.SetFont(est.GrisPequeno.Familia, "I", est.GrisPequeno.Tamano)
		pdf.SetTextColor(est.Gris.R, est.Gris.G, est.Gris.B)
		pdf.CellFormat(0, 5, tr("Otorgado por: "+rec.EntidadPatrocinadora), "", 1, "L", false, 0, "")

		if rec.RutaCertificado != "" {
			emitirEnlaceCertificado(pdf, tr, rec.RutaCertificado)
		}
		pdf.Ln(3)
	}
	return nil
}

func (a *Assembler) emitirCursos(pdf *gofpdf.Fpdf, tr func(string) string, est Estilos, perfilID uint) error {
	cursos, err := a.Cursos.ListarVisibles(a.DB, perfilID)
	if err != nil {
		return err
	}
	if len(cursos) == 0 {
		return nil
	}

	encabezadoSeccion(pdf, tr, est, "CURSOS Y CERTIFICACIONES")
	for _, c := range cursos {
		aplicar(pdf, est.TituloEntrada)
		pdf.CellFormat(0, 6, tr(c.NombreCurso), "", 1, "L", false, 0, "")

		fechas := fmt.Sprintf("%s - %s | %d horas", mesAnio(c.FechaInicio), mesAnio(c.FechaFin), c.TotalHoras)
		aplicar(pdf, est.InfoEntidad)
		pdf.CellFormat(0, 5, tr(c.EntidadPatrocinadora+" | "+fechas), "", 1, "L", false, 0, "")
		pdf.Ln(1)

		if c.DescripcionCurso != "" {
			aplicar(pdf, est.Cuerpo)
			pdf.MultiCell(0, 5.5, tr(c.DescripcionCurso), "", "J", false)
		}

		if c.RutaCertificado != "" {
			emitirEnlaceCertificado(pdf, tr, c.RutaCertificado)
		}
		pdf.Ln(3)
	}
	return nil
}

func (a *Assembler) emitirProductosAcademicos(pdf *gofpdf.Fpdf, tr func(string) string, est Estilos, perfilID uint) error {
	productos, err := a.ProdAcademicos.ListarVisibles(a.DB, perfilID)
	if err != nil {
		return err
	}
	if len(productos) == 0 {
		return nil
	}

	encabezadoSeccion(pdf, tr, est, "PRODUCTOS ACADÉMICOS")
	for _, p := range productos {
		aplicar(pdf, est.TituloEntrada)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s (%s)", p.NombreRecurso, p.Clasificador)), "", 1, "L", false, 0, "")

		aplicar(pdf, est.Cuerpo)
		pdf.MultiCell(0, 5.5, tr(p.Descripcion), "", "J", false)
		pdf.Ln(2)
	}
	return nil
}

func (a *Assembler) emitirProductosLaborales(pdf *gofpdf.Fpdf, tr func(string) string, est Estilos, perfilID uint) error {
	productos, err := a.ProdLaborales.ListarVisibles(a.DB, perfilID)
	if err != nil {
		return err
	}
	if len(productos) == 0 {
		return nil
	}

	encabezadoSeccion(pdf, tr, est, "PRODUCTOS LABORALES")
	for _, p := range productos {
		aplicar(pdf, est.TituloEntrada)
		pdf.CellFormat(0, 6, tr(p.NombreProducto+" | "+mesAnio(p.FechaProducto)), "", 1, "L", false, 0, "")

		aplicar(pdf, est.Cuerpo)
		pdf.MultiCell(0, 5.5, tr(p.Descripcion), "", "J", false)
		pdf.Ln(2)
	}
	return nil
}

func (a *Assembler) emitirVentaGarage(pdf *gofpdf.Fpdf, tr func(string) string, est Estilos, perfilID uint) error {
	articulos, err := a.Articulos.ListarVisibles(a.DB, perfilID)
	if err != nil {
		return err
	}
	if len(articulos) == 0 {
		return nil
	}

	encabezadoSeccion(pdf, tr, est, "ARTÍCULOS EN VENTA")
	for _, v := range articulos {
		var miniatura *bytes.Buffer
		if v.ImagenProducto != "" {
			if buf, err := descargarMiniatura(v.ImagenProducto, 240); err != nil {
				logrus.WithError(err).WithField("articulo", v.ID).
					Warn("imagen de venta no disponible; se usa bloque de texto")
			} else {
				miniatura = buf
			}
		}

		if miniatura != nil {
			emitirArticuloConImagen(pdf, tr, est, v, miniatura)
		} else {
			emitirArticuloTexto(pdf, tr, est, v)
		}
		pdf.Ln(2)
	}
	return nil
}

// emitirArticuloConImagen dibuja la miniatura a la izquierda y el
// bloque de texto (nombre, estado, precio, descripción recortada) al lado.
func emitirArticuloConImagen(pdf *gofpdf.Fpdf, tr func(string) string, est Estilos, v ventagarage.VentaGarage, img *bytes.Buffer) {
	const lado = 30.0
	inicioY := pdf.GetY()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	nombreImg := fmt.Sprintf("venta-%d", v.ID)
	pdf.RegisterImageOptionsReader(nombreImg, opts, img)
	pdf.ImageOptions(nombreImg, margenIzq, inicioY, lado, lado, false, opts, 0, "")

	textoX := float64(margenIzq) + lado + 5
	pdf.SetXY(textoX, inicioY)
	aplicar(pdf, est.TituloEntrada)
	pdf.CellFormat(0, 6, tr(v.NombreProducto), "", 1, "L", false, 0, "")

	pdf.SetX(textoX)
	aplicar(pdf, est.GrisPequeno)
	pdf.CellFormat(0, 5, tr("Estado: "+v.EstadoProducto), "", 1, "L", false, 0, "")

	pdf.SetX(textoX)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0x19, 0x87, 0x54)
	pdf.CellFormat(0, 6, fmt.Sprintf("$%.2f", v.ValorDelBien), "", 1, "L", false, 0, "")

	pdf.SetX(textoX)
	aplicar(pdf, est.GrisPequeno)
	pdf.MultiCell(0, 4.5, tr(truncar(v.Descripcion, 100)), "", "L", false)

	if pdf.GetY() < inicioY+lado {
		pdf.SetY(inicioY + lado)
	}
	pdf.Ln(1)
}

// emitirArticuloTexto es el fallback sin imagen: nombre con precio,
// estado y descripción completa.
func emitirArticuloTexto(pdf *gofpdf.Fpdf, tr func(string) string, est Estilos, v ventagarage.VentaGarage) {
	aplicar(pdf, est.TituloEntrada)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s | $%.2f", v.NombreProducto, v.ValorDelBien)), "", 1, "L", false, 0, "")

	aplicar(pdf, est.GrisPequeno)
	pdf.CellFormat(0, 5, tr("Estado: "+v.EstadoProducto), "", 1, "L", false, 0, "")

	aplicar(pdf, est.Cuerpo)
	pdf.MultiCell(0, 5.5, tr(v.Descripcion), "", "J", false)
}

// emitirEnlaceCertificado escribe el enlace "Ver certificado" apuntando
// a la ruta raw del certificado con un parámetro anti-caché.
func emitirEnlaceCertificado(pdf *gofpdf.Fpdf, tr func(string) string, ruta string) {
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(0, 0, 255)
	pdf.WriteLinkString(5, tr("Ver certificado"), urlCertificado(ruta))
	pdf.Ln(5)
}

// urlCertificado reescribe las rutas estilo imagen a rutas de archivo
// crudo y agrega un timestamp para vencer cachés de CDN.
func urlCertificado(ruta string) string {
	u := strings.Replace(ruta, "/image/upload/", "/raw/upload/", 1)
	return fmt.Sprintf("%s?_=%d", u, time.Now().Unix())
}

// aplicar configura fuente y color de texto según el estilo.
func aplicar(pdf *gofpdf.Fpdf, e Estilo) {
	pdf.SetFont(e.Familia, e.Variante, e.Tamano)
	pdf.SetTextColor(e.Color.R, e.Color.G, e.Color.B)
}

var mesesCortos = [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// mesAnio formatea una fecha como "mes año" abreviado en español.
func mesAnio(t time.Time) string {
	return fmt.Sprintf("%s %d", mesesCortos[t.Month()-1], t.Year())
}

// truncar recorta el texto a n runas.
func truncar(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
