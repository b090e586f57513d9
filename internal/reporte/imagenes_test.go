package reporte

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func imagenPrueba(t *testing.T, ancho, alto int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, ancho, alto))
	for x := 0; x < ancho; x++ {
		for y := 0; y < alto; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDescargarMiniaturaRecortaACuadrado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(imagenPrueba(t, 400, 250))
	}))
	defer srv.Close()

	buf, err := descargarMiniatura(srv.URL+"/foto.png", 120)
	require.NoError(t, err)

	img, err := imaging.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, 120, img.Bounds().Dx())
	require.Equal(t, 120, img.Bounds().Dy())
}

func TestDescargarMiniaturaStatusNoExitoso(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := descargarMiniatura(srv.URL+"/no-existe.png", 120)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 404")
}

func TestDescargarMiniaturaCuerpoNoEsImagen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>no soy una imagen</html>"))
	}))
	defer srv.Close()

	_, err := descargarMiniatura(srv.URL+"/pagina.html", 120)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decodificación")
}

func TestDescargarMiniaturaServidorInalcanzable(t *testing.T) {
	_, err := descargarMiniatura("http://127.0.0.1:1/img.png", 120)
	require.Error(t, err)
}
