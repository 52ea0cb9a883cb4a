package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

var functions = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
}

// Templates parses the embedded page templates. The result is handed to the gin
// engine once at router setup; handlers only ever pass a template name and a
// plain data payload.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(functions).ParseFS(templateFS, "templates/*.html"))
}

// HTML renders the named page with the given payload.
func HTML(ctx *gin.Context, status int, page string, data gin.H) {
	ctx.HTML(status, page, data)
}

// Error renders the shared error page.
func Error(ctx *gin.Context, status int, message string) {
	ctx.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}

// NotFound renders a 404 page.
func NotFound(ctx *gin.Context, message string) {
	Error(ctx, http.StatusNotFound, message)
}
