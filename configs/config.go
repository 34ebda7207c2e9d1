package configs

import (
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Path               string `default:"/data/opentap.db"`
	MaxIdleConnections int    `default:"2"`
	MaxOpenConnections int    `default:"1"`
}

type Images struct {
	// Dir is the legacy filesystem image directory. New uploads are stored
	// in the database; the directory is kept for older records that still
	// reference files in it.
	Dir string `default:"/data/images"`
}

type Server struct {
	Port int `default:"8080"`
}

type Config struct {
	DB     DB
	Images Images
	Server Server
}

const envPrefix = "TAPWALL" // env prefix for env vars

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	return &config, nil
}
