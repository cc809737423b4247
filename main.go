package main

import (
	"fmt"
	"log"
	"os"

	"cleanpro-backend/config"
	"cleanpro-backend/models"
	"cleanpro-backend/routes"
	"cleanpro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()
	config.ConnectRedis()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Business{},
		&models.Customer{},
		&models.Service{},
		&models.ServiceMaterial{},
		&models.InventoryItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.DebtReminderLog{},
	)
}

func main() {
	services.NewReminderService(config.DB).StartScheduler()

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
