package server_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/opentap/tapwall/configs"
	"github.com/opentap/tapwall/pkg/repository"
	"github.com/opentap/tapwall/pkg/server"
)

// ServerSuite spins up the full echo surface over a migrated in-memory
// database, so tests exercise routing, binding, and status mapping the
// way real requests do.
type ServerSuite struct {
	suite.Suite
	repo *repository.Repository
	echo *echo.Echo
}

func (suite *ServerSuite) SetupTest() {
	logger := zap.NewNop()

	conf := &configs.Config{}
	conf.DB.Path = ":memory:"
	conf.DB.MaxIdleConnections = 1
	conf.DB.MaxOpenConnections = 1

	repo, err := repository.Open(conf, logger)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Migrate(context.Background()))

	suite.repo = repo
	suite.echo = server.New(repo, logger, conf).Echo()
}

func (suite *ServerSuite) TearDownTest() {
	if suite.repo != nil {
		suite.repo.Close()
	}
}

func (suite *ServerSuite) request(method string, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}

	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)

	return rec
}

func (suite *ServerSuite) jsonRequest(method string, target string, body string) *httptest.ResponseRecorder {
	return suite.request(method, target, strings.NewReader(body), echo.MIMEApplicationJSON)
}

func (suite *ServerSuite) formRequest(target string, form string) *httptest.ResponseRecorder {
	return suite.request(http.MethodPost, target, strings.NewReader(form), echo.MIMEApplicationForm)
}

func (suite *ServerSuite) uploadRequest(target string, filename string, contentType string, data []byte) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	suite.Require().NoError(err)

	_, err = part.Write(data)
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	return suite.request(http.MethodPost, target, body, writer.FormDataContentType())
}
