package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/opentap/tapwall/pkg/model"
)

const (
	defaultListLimit = 100
)

func (s *Server) listBeersHandler(c echo.Context) error {
	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", defaultListLimit)

	beers, err := s.repo.ListBeers(c.Request().Context(), skip, limit)
	if err != nil {
		return s.httpError(err)
	}

	return c.JSON(http.StatusOK, beers)
}

func (s *Server) getBeerHandler(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	beer, err := s.repo.GetBeer(c.Request().Context(), id)
	if err != nil {
		return s.httpError(err)
	}

	return c.JSON(http.StatusOK, beer)
}

func (s *Server) createBeerHandler(c echo.Context) error {
	var in model.BeerCreate

	if err := c.Bind(&in); err != nil {
		return err
	}

	if err := c.Validate(&in); err != nil {
		return err
	}

	beer, err := s.repo.CreateBeer(c.Request().Context(), in)
	if err != nil {
		return s.httpError(err)
	}

	return c.JSON(http.StatusCreated, beer)
}

func (s *Server) updateBeerHandler(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var in model.BeerUpdate

	if err := c.Bind(&in); err != nil {
		return err
	}

	beer, err := s.repo.UpdateBeer(c.Request().Context(), id, in)
	if err != nil {
		return s.httpError(err)
	}

	return c.JSON(http.StatusOK, beer)
}

func (s *Server) deleteBeerHandler(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteBeer(c.Request().Context(), id); err != nil {
		return s.httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// createBeerFormHandler backs the plain HTML admin form. Numeric inputs
// arrive as strings; values that fail to parse are stored as unknown
// rather than rejecting the submission (documented leniency, kept for
// compatibility with the original admin page).
func (s *Server) createBeerFormHandler(c echo.Context) error {
	tapNumber, err := strconv.Atoi(c.FormValue("tap_number"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "tap_number must be an integer")
	}

	name := c.FormValue("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "name is required")
	}

	in := model.BeerCreate{
		TapNumber: &tapNumber,
		Name:      name,
		Style:     formString(c, "style"),
		ABV:       formFloat(c, "abv"),
		IBU:       formInt(c, "ibu"),
		EBC:       formInt(c, "ebc"),
	}

	beer, err := s.repo.CreateBeer(c.Request().Context(), in)
	if err != nil {
		return s.httpError(err)
	}

	return c.JSON(http.StatusOK, beer)
}

func formString(c echo.Context, name string) *string {
	value := c.FormValue(name)
	if value == "" {
		return nil
	}

	return &value
}

func formFloat(c echo.Context, name string) *float64 {
	value, err := strconv.ParseFloat(c.FormValue(name), 64)
	if err != nil {
		return nil
	}

	return &value
}

func formInt(c echo.Context, name string) *int {
	value, err := strconv.Atoi(c.FormValue(name))
	if err != nil {
		return nil
	}

	return &value
}
