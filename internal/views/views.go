// Package views embeds the HTML templates served by the web front.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// NewEngine returns a fiber template engine over the embedded templates.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
