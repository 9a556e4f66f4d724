package main

import (
	"flag"
	"log"
	"time"

	"notes-app/config"
	"notes-app/database"
	routes "notes-app/internal/app/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	seed := flag.Bool("seed", false, "provision demo tenants, users and notes, then exit")
	flag.Parse()

	config.LoadEnv()

	db, err := database.Init(config.DB_URL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if *seed {
		if err := database.Seed(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		return
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, config.JWT_SECRET)

	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
