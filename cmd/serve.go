package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/opentap/tapwall/configs"
	"github.com/opentap/tapwall/pkg/repository"
	"github.com/opentap/tapwall/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".tapwall.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(_ *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error opening database", zap.Error(err))

		return err
	}
	defer repo.Close()

	ctx := context.Background()

	// Schema adjustments are best effort at startup: a partially applied
	// migration is retried on the next run, and the wall keeps serving
	// whatever schema state was reached.
	if err := repo.Migrate(ctx); err != nil {
		logger.Warn("migration incomplete, continuing with current schema", zap.Error(err))
	}

	if err := repo.SeedSampleBeers(ctx); err != nil {
		logger.Warn("could not seed sample beers", zap.Error(err))
	}

	// Legacy filesystem images live here; new uploads go to the database.
	if err := os.MkdirAll(conf.Images.Dir, 0o755); err != nil {
		logger.Warn("could not create legacy images directory", zap.String("dir", conf.Images.Dir), zap.Error(err))
	}

	e := server.New(repo, logger, conf).Echo()

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(e)

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           corsHandler,
	}

	logger.Info("listening", zap.String("address", address))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(handler http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"cache-control",
			"content-length",
			"content-type",
			"date",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(handler)
}
