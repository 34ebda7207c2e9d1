package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opentap/tapwall/pkg/model"
)

func (s *Server) updateSettingsHandler(c echo.Context) error {
	var in model.DisplaySettingsUpdate

	if err := c.Bind(&in); err != nil {
		return err
	}

	settings, err := s.repo.UpdateDisplaySettings(c.Request().Context(), in)
	if err != nil {
		return s.httpError(err)
	}

	return c.JSON(http.StatusOK, settings)
}
