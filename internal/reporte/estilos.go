package reporte

// Color es un RGB simple para gofpdf.
type Color struct {
	R, G, B int
}

// Estilo describe una familia tipográfica con tamaño y color.
type Estilo struct {
	Familia  string
	Variante string // "" | "B" | "I" | "BI"
	Tamano   float64
	Color    Color
}

// Estilos agrupa la paleta y los estilos tipográficos del reporte.
// Se construye fresco en cada generación: nunca se comparte un
// registro mutable entre llamadas.
type Estilos struct {
	Primario   Color // acento
	Oscuro     Color // texto principal
	Gris       Color // texto secundario
	FondoClaro Color // paneles

	TituloPrincipal   Estilo
	Subtitulo         Estilo
	EncabezadoSeccion Estilo
	TituloEntrada     Estilo
	InfoEntidad       Estilo
	Cuerpo            Estilo
	GrisPequeno       Estilo
}

// NuevosEstilos retorna la configuración tipográfica del reporte.
func NuevosEstilos() Estilos {
	primario := Color{0xA7, 0xC7, 0xE7}
	oscuro := Color{0x55, 0x55, 0x55}
	gris := Color{0x99, 0x99, 0x99}
	fondo := Color{0xF4, 0xF7, 0xF9}

	return Estilos{
		Primario:   primario,
		Oscuro:     oscuro,
		Gris:       gris,
		FondoClaro: fondo,

		TituloPrincipal:   Estilo{Familia: "Helvetica", Variante: "B", Tamano: 24, Color: primario},
		Subtitulo:         Estilo{Familia: "Helvetica", Tamano: 11, Color: gris},
		EncabezadoSeccion: Estilo{Familia: "Helvetica", Variante: "B", Tamano: 16, Color: primario},
		TituloEntrada:     Estilo{Familia: "Helvetica", Variante: "B", Tamano: 13, Color: oscuro},
		InfoEntidad:       Estilo{Familia: "Helvetica", Tamano: 10, Color: gris},
		Cuerpo:            Estilo{Familia: "Helvetica", Tamano: 10, Color: Color{0, 0, 0}},
		GrisPequeno:       Estilo{Familia: "Helvetica", Tamano: 9, Color: gris},
	}
}
