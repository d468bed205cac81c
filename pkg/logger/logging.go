package logger

import (
	"os"

	"github.com/rs/zerolog"
)

var Log zerolog.Logger

func init() {
	// Default to stdout-only so packages can log before InitLogger runs
	// (tests never call it).
	Log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// InitLogger routes logs to stdout and logs/server.log.
func InitLogger() {
	if err := os.MkdirAll("logs", os.ModePerm); err != nil {
		panic(err)
	}

	file, err := os.OpenFile("logs/server.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(err)
	}

	multi := zerolog.MultiLevelWriter(os.Stdout, file)
	Log = zerolog.New(multi).With().Timestamp().Logger()
}
