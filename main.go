package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"barberbook-backend/config"
	"barberbook-backend/models"
	"barberbook-backend/routes"
	"barberbook-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	logger := config.NewLogger()

	config.ConnectDB()
	if err := config.DB.AutoMigrate(
		&models.Barbershop{},
		&models.Barber{},
		&models.Customer{},
		&models.Service{},
		&models.Appointment{},
		&models.Holiday{},
		&models.TimeOffRequest{},
		&models.ConflictScanLog{},
	); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	scanner := services.NewConflictScanService(config.DB, logger)
	if err := scanner.StartScheduler(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start conflict scan scheduler")
	}
	defer scanner.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(logger)
	printRoutes(r)

	logger.Info().Str("port", port).Msg("listening")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
