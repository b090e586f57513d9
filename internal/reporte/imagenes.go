package reporte

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
)

// Las descargas de imágenes remotas son síncronas y acotadas: un
// timeout o un status distinto de 2xx se trata como "imagen no
// disponible", nunca como fallo del reporte. Sin reintentos.
var clienteImagenes = &http.Client{Timeout: 10 * time.Second}

// descargarMiniatura baja la imagen remota, la recorta a un cuadrado
// de lado px y la re-codifica como PNG listo para incrustar.
func descargarMiniatura(url string, lado int) (*bytes.Buffer, error) {
	resp, err := clienteImagenes.Get(url)
	if err != nil {
		return nil, fmt.Errorf("descarga de imagen: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("descarga de imagen: status %d", resp.StatusCode)
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decodificación de imagen: %w", err)
	}

	miniatura := imaging.Fill(img, lado, lado, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, miniatura, imaging.PNG); err != nil {
		return nil, fmt.Errorf("re-codificación de imagen: %w", err)
	}
	return &buf, nil
}
