package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/shipora/console-golang/internal/handlers"
	"github.com/shipora/console-golang/internal/routes"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		UploadDir: uploadDir,
		BaseURL:   baseURL,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	log.Println("Starting console product-form API server on port 8080...")
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
