package main

import (
	"log"

	"samtalsstod/internal/app"
	"samtalsstod/internal/config"
	"samtalsstod/internal/logger"
)

func main() {
	cfg, cfgErr := config.Load()

	level, levelErr := logger.ParseLevel(cfg.LogLevel)
	appLogger := logger.New(level, cfg.JSONLogs)

	if cfgErr != nil {
		appLogger.Warning("Main", "invalid environment, using defaults", map[string]interface{}{
			"error": cfgErr.Error(),
		})
	}
	if levelErr != nil {
		appLogger.Warning("Main", "invalid log level, using info", map[string]interface{}{
			"error": levelErr.Error(),
		})
	}

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
