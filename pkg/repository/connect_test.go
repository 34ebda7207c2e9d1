package repository_test

import (
	"context"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/opentap/tapwall/configs"
	"github.com/opentap/tapwall/pkg/repository"
)

// RepositorySuite backs every repository test with a fresh in-memory
// SQLite database, migrated the same way the server migrates at startup.
type RepositorySuite struct {
	suite.Suite
	observedLogs *observer.ObservedLogs
	repo         *repository.Repository
}

func (suite *RepositorySuite) SetupTest() {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	observedLogger := zap.New(observedZapCore)

	conf := &configs.Config{}
	conf.DB.Path = ":memory:"
	conf.DB.MaxIdleConnections = 1
	conf.DB.MaxOpenConnections = 1

	repo, err := repository.Open(conf, observedLogger)
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Migrate(context.Background()))

	suite.repo = repo
}

func (suite *RepositorySuite) TearDownTest() {
	if suite.repo != nil {
		suite.repo.Close()
	}
}

func (suite *RepositorySuite) warnMessages() []string {
	var messages []string

	for _, entry := range suite.observedLogs.All() {
		if entry.Level == zapcore.WarnLevel {
			messages = append(messages, entry.Message)
		}
	}

	return messages
}
