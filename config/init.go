package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitApp builds the gin engine with CORS for the configured origins.
func InitApp(cfg *Config) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AllowOrigins = cfg.CORSOrigins
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	return router
}
