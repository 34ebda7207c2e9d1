package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/opentap/tapwall/pkg/model"
)

type OptionalTestSuite struct {
	suite.Suite
}

func TestOptionalTestSuite(t *testing.T) {
	suite.Run(t, new(OptionalTestSuite))
}

func (suite *OptionalTestSuite) TestUnmarshal_OmittedFieldIsNotSet() {
	var update model.BeerUpdate

	suite.Require().NoError(json.Unmarshal([]byte(`{}`), &update))

	suite.False(update.Style.Set)
	suite.Empty(update.Changes())
}

func (suite *OptionalTestSuite) TestUnmarshal_NullFieldIsSetButInvalid() {
	var update model.BeerUpdate

	suite.Require().NoError(json.Unmarshal([]byte(`{"style":null}`), &update))

	suite.True(update.Style.Set)
	suite.False(update.Style.Valid)

	changes := update.Changes()
	suite.Len(changes, 1)
	suite.Nil(changes["style"])
}

func (suite *OptionalTestSuite) TestUnmarshal_ValueFieldIsSetAndValid() {
	var update model.BeerUpdate

	suite.Require().NoError(json.Unmarshal([]byte(`{"style":"Lager","abv":4.8}`), &update))

	suite.True(update.Style.Set)
	suite.True(update.Style.Valid)
	suite.Equal("Lager", update.Style.Value)

	changes := update.Changes()
	suite.Len(changes, 2)
	suite.Equal("Lager", changes["style"])
	suite.InDelta(4.8, changes["abv"].(float64), 0.001)
}

func (suite *OptionalTestSuite) TestUnmarshal_ZeroValueIsDistinctFromNull() {
	var update model.BeerUpdate

	suite.Require().NoError(json.Unmarshal([]byte(`{"ibu":0}`), &update))

	suite.True(update.IBU.Set)
	suite.True(update.IBU.Valid)
	suite.Equal(0, update.IBU.Value)
}

func (suite *OptionalTestSuite) TestMarshal_RoundTripsValues() {
	out, err := json.Marshal(model.NewOptional("Saison"))
	suite.Require().NoError(err)
	suite.JSONEq(`"Saison"`, string(out))

	out, err = json.Marshal(model.NullOptional[string]())
	suite.Require().NoError(err)
	suite.JSONEq(`null`, string(out))
}
