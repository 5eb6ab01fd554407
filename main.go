package main

import (
	"lokalin/config"
	_ "lokalin/docs"
	"lokalin/middleware"
	"lokalin/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// @title Lokal.in API
// @version 1.0
// @description Directory of local businesses (UMKM) with WhatsApp ordering.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.ConnectRedis()
	defer config.CloseRedis()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Info().
		Str("port", port).
		Str("env", config.AppConfig.AppEnv).
		Msgf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
