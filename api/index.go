package api

import (
	"net/http"
	"sync"

	"lokalin/config"
	"lokalin/middleware"
	"lokalin/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		config.ConnectRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.RequestLogger())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
