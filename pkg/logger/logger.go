package logger

import (
	"time"

	"github.com/lintang-b-s/bipartite-matching/pkg/logger/config"
	myZap "github.com/lintang-b-s/bipartite-matching/pkg/logger/zap"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var envKeys = []string{
	"LOG_LEVEL",
	"LOG_TIME_FORMAT",
	"LOG_FILE",
	"LOG_FILE_MAX_SIZE",
	"LOG_FILE_MAX_BACKUPS",
	"LOG_FILE_MAX_AGE",
	"LOG_FILE_COMPRESS",
}

func New() (*zap.Logger, error) {
	// bound to the bare names so the cli env prefix does not apply to them.
	for _, key := range envKeys {
		if err := viper.BindEnv(key, key); err != nil {
			return nil, err
		}
	}

	viper.SetDefault("LOG_LEVEL", config.INFO_LEVEL)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LOG_FILE_MAX_SIZE", 100)
	viper.SetDefault("LOG_FILE_MAX_BACKUPS", 7)
	viper.SetDefault("LOG_FILE_MAX_AGE", 30)
	viper.SetDefault("LOG_FILE_COMPRESS", true)

	cfg := config.Configuration{
		Level:          viper.GetInt("LOG_LEVEL"),
		TimeFormat:     viper.GetString("LOG_TIME_FORMAT"),
		FilePath:       viper.GetString("LOG_FILE"),
		FileMaxSize:    viper.GetInt("LOG_FILE_MAX_SIZE"),
		FileMaxBackups: viper.GetInt("LOG_FILE_MAX_BACKUPS"),
		FileMaxAge:     viper.GetInt("LOG_FILE_MAX_AGE"),
		FileCompress:   viper.GetBool("LOG_FILE_COMPRESS"),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	log, err := myZap.New(cfg)

	if err != nil {
		return nil, err
	}

	return log, nil
}
