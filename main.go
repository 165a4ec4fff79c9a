package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"barberbook-backend/config"
	"barberbook-backend/routes"
	"barberbook-backend/services"
	"barberbook-backend/utils"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}
	utils.InitializeLogger()
}

func main() {
	logger := utils.GetLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx := context.Background()
	sheetsService, err := config.NewSheetsService(ctx, cfg.CredentialsFile)
	if err != nil {
		logger.Fatal("failed to connect to Google Sheets", zap.Error(err))
	}

	store := services.NewSheetsStore(sheetsService, cfg.SpreadsheetID, logger)
	if err := store.EnsureSheets(ctx); err != nil {
		logger.Fatal("failed to prepare worksheets", zap.Error(err))
	}

	r := routes.SetupRouter(cfg, store)
	printRoutes(r)

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
