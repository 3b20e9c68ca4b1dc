package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storeratings/commands"
	"storeratings/config"
	middlewares "storeratings/middleware"
	"storeratings/routes"
)

func main() {
	seed := flag.Bool("seed", false, "seed the database with demo data and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	if *seed {
		if err := commands.NewSeedCommand(db).Execute(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		log.Println("Database seeded")
		return
	}

	redisCli, err := config.ConnectRedis(cfg)
	if err != nil {
		log.Printf("Warning: Redis unavailable, logout revocation disabled: %v", err)
	}

	router := config.InitApp(cfg)
	router.Use(middlewares.RequestID())
	router.Use(middlewares.ErrorHandler())

	routes.SetupRoutes(router, db, redisCli, cfg)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
