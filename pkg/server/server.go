package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/opentap/tapwall/configs"
	"github.com/opentap/tapwall/pkg/repository"
)

type Server struct {
	repo   *repository.Repository
	logger *zap.Logger
	config *configs.Config
}

func New(repo *repository.Repository, logger *zap.Logger, config *configs.Config) *Server {
	return &Server{repo: repo, logger: logger, config: config}
}

// Echo assembles the HTTP surface: REST endpoints for the admin frontend
// plus the rendered wall and admin pages.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Error(v.Error))

			return nil
		},
	}))

	e.Validator = &EchoValidator{}
	e.Renderer = newRenderer()

	s.setRoutes(e)

	return e
}

func (s *Server) setRoutes(e *echo.Echo) {
	e.GET("/", s.wallHandler)
	e.GET("/admin", s.adminHandler)

	e.GET("/beers", s.listBeersHandler)
	e.GET("/beers/:id", s.getBeerHandler)
	e.POST("/beers", s.createBeerHandler)
	e.PATCH("/beers/:id", s.updateBeerHandler)
	e.DELETE("/beers/:id", s.deleteBeerHandler)
	e.POST("/beers/upload-image/:id", s.uploadBeerImageHandler)
	e.POST("/beers/create", s.createBeerFormHandler)

	e.PATCH("/settings", s.updateSettingsHandler)
	e.POST("/settings/logo", s.uploadLogoHandler)

	e.GET("/images/:id", s.getImageHandler)

	if s.config != nil && s.config.Images.Dir != "" {
		// Old records may still point at files in the legacy directory.
		e.Static("/static/images", s.config.Images.Dir)
	}
}

// EchoValidator adapts go-playground/validator to echo's Validator
// interface. Validation failures surface as 422s.
type EchoValidator struct {
	Validator *validator.Validate
}

func (ev *EchoValidator) Validate(i interface{}) error {
	if ev.Validator == nil {
		ev.Validator = validator.New()
	}

	if err := ev.Validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf("invalid request body: %v", err))
	}

	return nil
}

func (s *Server) httpError(err error) error {
	switch {
	case errors.Is(err, repository.ErrBeerNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Beer not found")
	case errors.Is(err, repository.ErrImageNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Image not found")
	default:
		return err
	}
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return uint(id), nil
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
