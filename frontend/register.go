package frontend

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	IndexFile      = "index.html"
	missingMessage = "index.html not found. Ensure Render root includes /frontend."
)

// RegisterRoutes serves dir/index.html at basePath. A missing file is
// reported as a JSON diagnostic with status 200 rather than an HTTP error.
func RegisterRoutes(r gin.IRoutes, basePath, dir string, logger *zap.Logger) {
	if basePath == "" {
		basePath = "/"
	}
	r.GET(basePath, HandleIndex(dir, logger))
}

func HandleIndex(dir string, logger *zap.Logger) gin.HandlerFunc {
	indexPath := filepath.Join(dir, IndexFile)
	return func(ctx *gin.Context) {
		info, err := os.Stat(indexPath)
		if err != nil || !info.Mode().IsRegular() {
			logger.Warn("Frontend index not found", zap.String("path", indexPath))
			ctx.JSON(http.StatusOK, gin.H{"error": missingMessage})
			return
		}
		ctx.File(indexPath)
	}
}
