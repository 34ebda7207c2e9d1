package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/opentap/tapwall/pkg/model"
)

type ImageHandlerSuite struct {
	ServerSuite
}

func TestImageHandlerSuite(t *testing.T) {
	suite.Run(t, new(ImageHandlerSuite))
}

func (suite *ImageHandlerSuite) createBeer() model.Beer {
	rec := suite.jsonRequest(http.MethodPost, "/beers", `{"tap_number":1,"name":"Pale Ale"}`)
	suite.Require().Equal(http.StatusCreated, rec.Code)

	var beer model.Beer
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &beer))

	return beer
}

func (suite *ImageHandlerSuite) storedImageCount() int64 {
	var count int64

	suite.Require().NoError(suite.repo.DB.Model(&model.StoredImage{}).Count(&count).Error)

	return count
}

func (suite *ImageHandlerSuite) TestUploadBeerImage_AttachesAndServesBack() {
	beer := suite.createBeer()
	payload := bytes.Repeat([]byte{0x89}, 256)

	rec := suite.uploadRequest(fmt.Sprintf("/beers/upload-image/%d", beer.ID), "beer.png", "image/png", payload)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var updated model.Beer
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	suite.Require().NotNil(updated.ImageID)

	rec = suite.jsonRequest(http.MethodGet, fmt.Sprintf("/images/%d", *updated.ImageID), "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal("image/png", rec.Header().Get("Content-Type"))
	suite.Equal("public, max-age=86400", rec.Header().Get("Cache-Control"))
	suite.Equal(payload, rec.Body.Bytes())
}

func (suite *ImageHandlerSuite) TestUploadBeerImage_SecondUploadRepointsAndKeepsFirst() {
	beer := suite.createBeer()

	rec := suite.uploadRequest(fmt.Sprintf("/beers/upload-image/%d", beer.ID), "one.png", "image/png", []byte("first"))
	suite.Require().Equal(http.StatusOK, rec.Code)

	var afterFirst model.Beer
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &afterFirst))
	firstID := *afterFirst.ImageID

	rec = suite.uploadRequest(fmt.Sprintf("/beers/upload-image/%d", beer.ID), "two.jpg", "image/jpeg", []byte("second"))
	suite.Require().Equal(http.StatusOK, rec.Code)

	var afterSecond model.Beer
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &afterSecond))
	suite.NotEqual(firstID, *afterSecond.ImageID)

	rec = suite.jsonRequest(http.MethodGet, fmt.Sprintf("/images/%d", firstID), "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal([]byte("first"), rec.Body.Bytes())
}

func (suite *ImageHandlerSuite) TestUploadBeerImage_WrongContentTypeIsRejectedBeforeWrite() {
	beer := suite.createBeer()

	rec := suite.uploadRequest(fmt.Sprintf("/beers/upload-image/%d", beer.ID), "notes.txt", "text/plain", []byte("not an image"))
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Zero(suite.storedImageCount())
}

func (suite *ImageHandlerSuite) TestUploadBeerImage_OversizedPayloadIs413() {
	beer := suite.createBeer()

	rec := suite.uploadRequest(fmt.Sprintf("/beers/upload-image/%d", beer.ID), "big.png", "image/png", make([]byte, 2_000_000))
	suite.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	suite.Zero(suite.storedImageCount())
}

func (suite *ImageHandlerSuite) TestUploadBeerImage_UnknownBeerIs404() {
	rec := suite.uploadRequest("/beers/upload-image/999", "beer.png", "image/png", []byte("data"))
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Zero(suite.storedImageCount())
}

func (suite *ImageHandlerSuite) TestGetImage_UnknownIDIs404() {
	rec := suite.jsonRequest(http.MethodGet, "/images/999", "")
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ImageHandlerSuite) TestUploadLogo_AttachesToSettings() {
	rec := suite.uploadRequest("/settings/logo", "logo.png", "image/png", []byte("logo bytes"))
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var settings model.DisplaySettings
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &settings))
	suite.Require().NotNil(settings.LogoImageID)

	rec = suite.jsonRequest(http.MethodGet, fmt.Sprintf("/images/%d", *settings.LogoImageID), "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal([]byte("logo bytes"), rec.Body.Bytes())
}

func (suite *ImageHandlerSuite) TestUploadLogo_WrongContentTypeIs400() {
	rec := suite.uploadRequest("/settings/logo", "logo.pdf", "application/pdf", []byte("%PDF"))
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Zero(suite.storedImageCount())
}
