package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/tluettje/pdfstamp/pkg/logging"
)

func main() {
	// a .env next to the working directory may carry PDFSTAMP_LOG_LEVEL
	// or PDFSTAMP_CONFIG; its absence is fine
	_ = godotenv.Load()
	logger := logging.InitLogger("")

	rootCommand := newRootCommand(&logger)
	if err := rootCommand.Execute(); err != nil {
		logger.Error().Msg(err.Error())
		os.Exit(1)
	}
	os.Exit(0)
}
