package main

import (
	"log"

	"github.com/Meakshayar/spacedrevisionapp/config"
	"github.com/Meakshayar/spacedrevisionapp/controllers"
	"github.com/Meakshayar/spacedrevisionapp/helpers"
	"github.com/Meakshayar/spacedrevisionapp/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {

	log.Println("Starting application...")

	key := config.GenerateRandomKey()
	helpers.SetJWTKey(key)

	if pwd := config.AdminPassword(); pwd != "" {
		hash, err := helpers.HashPassword(pwd)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		controllers.SetAdminPasswordHash(hash)
	} else {
		log.Println("ADMIN_PASSWORD not set; admin endpoints disabled")
	}

	//Init gin router
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	api := r.Group("/api")
	routes.SetupRoutes(api)

	port := config.Port()
	log.Printf("Server listening on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
