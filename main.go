package main

import (
	"fmt"
	"log"
	"os"

	"vendora-backend/config"
	"vendora-backend/controllers"
	"vendora-backend/models"
	"vendora-backend/routes"
	"vendora-backend/services"
	"vendora-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.KVEntry{},
		&models.User{},
	)

	controllers.Repos = storage.NewRepositories(storage.NewGormStore(config.DB))
}

func main() {
	backup := services.NewBackupService(controllers.Repos)
	backup.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
