package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 100 << 20 // 100MB to accommodate videos

// SaveUploadedFile stores a multipart file under the uploads directory and
// returns the stored filename. Only images and videos are accepted.
func SaveUploadedFile(c *gin.Context, file *multipart.FileHeader) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		return "", fmt.Errorf("only images and videos allowed")
	}

	if file.Size > maxUploadSize {
		return "", fmt.Errorf("file exceeds the 100MB limit")
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join("uploads", filename)); err != nil {
		return "", err
	}

	return filename, nil
}

// BaseURL returns the deployment origin used to build absolute file URLs
func BaseURL() string {
	if base := os.Getenv("BASE_URL"); base != "" {
		return strings.TrimSuffix(base, "/")
	}
	return "http://localhost:8080"
}

// GenerateResetToken returns a random hex token for one-shot password resets
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
