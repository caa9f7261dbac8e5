package main

import (
	"log"
	"net/http"
	"os"

	"hostelsync-be/config"
	"hostelsync-be/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}

	log.Println("MongoDB connection established successfully!")

	if err := config.EnsureUserIndexes(config.GetCollection("users")); err != nil {
		log.Printf("Failed to ensure user indexes: %v", err)
	}

	config.ConnectRedis()

	if err := os.MkdirAll("uploads", 0o755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	r := gin.Default()
	r.Use(cors.Default())

	routes.AuthRoutes(r)
	routes.IssueRoutes(r)
	routes.AnalyticsRoutes(r)
	routes.AnnouncementRoutes(r)
	routes.LostFoundRoutes(r)
	routes.CarouselRoutes(r)

	r.Static("/uploads", "./uploads")

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
