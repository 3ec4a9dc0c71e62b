package api

import (
	"log"
	"net/http"
	"sync"

	"coffee-order/config"
	"coffee-order/middleware"
	"coffee-order/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)
		cfg := config.LoadConfig()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware(cfg.OriginURL))

		deps, _, err := routes.NewDeps(cfg, false)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		routes.SetupRoutes(router, deps)
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
