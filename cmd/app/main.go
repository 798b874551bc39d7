package main

import (
	"posada/config"
	"posada/di"
	"posada/shared/logger"
)

// @title Posada API
// @version 1.0
// @description Hotel, customer, and reservation management service.
// @BasePath /v1
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
