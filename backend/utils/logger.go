package utils

import (
	"log"
	"os"
)

// InitLogger initializes the process-wide request logger.
func InitLogger() *log.Logger {
	return log.New(os.Stdout, "[Academix] ", log.LstdFlags|log.LUTC)
}
