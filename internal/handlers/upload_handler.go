package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shipora/console-golang/internal/models"
	"github.com/shipora/console-golang/internal/variant"
)

// UploadImage handles POST /v1/upload.
// It saves the file locally and returns a ready-made image row for
// the product form, keyed with a fresh uuid.
func (h *Handlers) UploadImage(c *gin.Context) {
	// 1. Get the file from the request
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	// 2. Create the upload directory if it doesn't exist
	if _, err := os.Stat(h.UploadDir); os.IsNotExist(err) {
		os.Mkdir(h.UploadDir, 0755)
	}

	// 3. Generate a safe unique filename (uuid + extension)
	ext := filepath.Ext(file.Filename)
	key := uuid.New().String()
	savePath := filepath.Join(h.UploadDir, key+ext)

	// 4. Save the file
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	// 5. Return the form image row with the public URL
	image := models.ImageFile{
		URL:      fmt.Sprintf("%s/uploads/%s%s", h.BaseURL, key, ext),
		Type:     variant.ImageTypeImage,
		Key:      key,
		FileName: file.Filename,
	}

	c.JSON(http.StatusOK, gin.H{"image": image})
}
