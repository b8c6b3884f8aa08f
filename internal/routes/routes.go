package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shipora/console-golang/internal/handlers"
)

// CORSMiddleware tells the browser that the console dev server is
// allowed to talk to us.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		// Preflight OPTIONS requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Ping Route ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Product Form Routes ---
		v1.POST("/products/payload", h.BuildProductPayload)
		v1.POST("/products/form", h.SeedProductForm)

		// --- Image Upload ---
		v1.POST("/upload", h.UploadImage)
	}

	// Serve what the upload handler stored.
	router.Static("/uploads", h.UploadDir)

	return router
}
