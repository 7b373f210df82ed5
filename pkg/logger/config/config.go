package config

import (
	"errors"
	"fmt"
)

// levels follow zapcore.Level
const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
	FATAL_LEVEL = 5
)

type Configuration struct {
	Level      int
	TimeFormat string

	// rotating log file, disabled when FilePath is empty
	FilePath       string
	FileMaxSize    int // megabytes
	FileMaxBackups int
	FileMaxAge     int // days
	FileCompress   bool
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return fmt.Errorf("log level %d not in [%d, %d]", c.Level, DEBUG_LEVEL, FATAL_LEVEL)
	}
	if c.TimeFormat == "" {
		return errors.New("log time format must not be empty")
	}
	if c.FilePath != "" && (c.FileMaxSize <= 0 || c.FileMaxBackups < 0 || c.FileMaxAge < 0) {
		return fmt.Errorf("invalid log file rotation: max size %d MB, max backups %d, max age %d days",
			c.FileMaxSize, c.FileMaxBackups, c.FileMaxAge)
	}
	return nil
}
