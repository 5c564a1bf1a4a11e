package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewViewEngine cria o engine de templates a partir dos arquivos embutidos,
// para o binário (e os testes) não dependerem do diretório de trabalho.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("views embutidas ausentes: " + err.Error())
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
