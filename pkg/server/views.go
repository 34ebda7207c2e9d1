package server

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opentap/tapwall/pkg/model"
)

//go:embed templates/*.html
var templateFS embed.FS

const viewsPattern = "templates/*.html"

type renderer struct {
	templates *template.Template
}

func newRenderer() *renderer {
	return &renderer{templates: template.Must(template.New("").ParseFS(templateFS, viewsPattern))}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

type viewData struct {
	Settings *model.DisplaySettings
	Beers    []*model.Beer
}

// wallHandler renders the public read-only display.
func (s *Server) wallHandler(c echo.Context) error {
	ctx := c.Request().Context()

	beers, err := s.repo.ListBeers(ctx, 0, -1)
	if err != nil {
		return s.httpError(err)
	}

	settings, err := s.repo.GetDisplaySettings(ctx)
	if err != nil {
		return s.httpError(err)
	}

	return c.Render(http.StatusOK, "wall.html", viewData{Settings: settings, Beers: beers})
}

// adminHandler renders the management page.
func (s *Server) adminHandler(c echo.Context) error {
	ctx := c.Request().Context()

	beers, err := s.repo.ListBeers(ctx, 0, -1)
	if err != nil {
		return s.httpError(err)
	}

	settings, err := s.repo.GetDisplaySettings(ctx)
	if err != nil {
		return s.httpError(err)
	}

	return c.Render(http.StatusOK, "admin.html", viewData{Settings: settings, Beers: beers})
}
