package main

import (
	"taskbox/config"
	"taskbox/di"
	"taskbox/shared/logger"
)

// @title Taskbox API
// @version 1.0
// @description Multi-tenant todo backend with an LLM chat relay.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
