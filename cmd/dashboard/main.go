package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"hugo-hotel/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080/api/v1"
	}

	if err := ui.StartDashboard(baseURL); err != nil {
		log.Fatalf("❌ Dashboard error: %v", err)
	}
}
