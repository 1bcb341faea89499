package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"

	"playtoy-backend/config"
	"playtoy-backend/middleware"
	"playtoy-backend/routes"
)

func main() {
	_ = godotenv.Load()
	config.Load()

	config.InitDB()
	defer config.CloseDB()

	stripe.Key = config.App.StripeKey

	r := gin.Default()
	r.Use(middleware.RequestID)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.SetupRoutes(r)

	log.Printf("Server is running on port %s", config.App.Port)
	if err := r.Run(":" + config.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
