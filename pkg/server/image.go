package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// maxImageBytes caps upload payloads. The cap is enforced here, before
// anything reaches storage.
const maxImageBytes = 1_000_000

// imageCacheControl is safe because a stored image is immutable: a new
// upload gets a new id, it never replaces an existing one.
const imageCacheControl = "public, max-age=86400"

func (s *Server) uploadBeerImageHandler(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	contentType, data, err := readImageUpload(c, "Image too large (max 1MB)")
	if err != nil {
		return err
	}

	beer, err := s.repo.AttachBeerImage(c.Request().Context(), id, contentType, data)
	if err != nil {
		return s.httpError(err)
	}

	return c.JSON(http.StatusOK, beer)
}

func (s *Server) uploadLogoHandler(c echo.Context) error {
	contentType, data, err := readImageUpload(c, "Logo too large (max 1MB)")
	if err != nil {
		return err
	}

	settings, err := s.repo.AttachLogo(c.Request().Context(), contentType, data)
	if err != nil {
		return s.httpError(err)
	}

	return c.JSON(http.StatusOK, settings)
}

func (s *Server) getImageHandler(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	img, err := s.repo.GetImage(c.Request().Context(), id)
	if err != nil {
		return s.httpError(err)
	}

	c.Response().Header().Set("Cache-Control", imageCacheControl)

	return c.Blob(http.StatusOK, img.ContentType, img.Data)
}

// readImageUpload pulls the multipart "file" part and validates it
// before any database write happens.
func readImageUpload(c echo.Context, tooLargeDetail string) (string, []byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, "File must be an image")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close() //nolint:errcheck // read-only handle

	data, err := io.ReadAll(src)
	if err != nil {
		return "", nil, err
	}

	if len(data) > maxImageBytes {
		return "", nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, tooLargeDetail)
	}

	return contentType, data, nil
}
