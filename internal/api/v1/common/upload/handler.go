package upload

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ShakeelGadafi/crediflow-sub000/config"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/utils"
	"github.com/ShakeelGadafi/crediflow-sub000/pkg/logger"
)

const maxUploadSize = 10 << 20

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// Upload godoc
// @Summary Upload an attachment
// @Description Stores an invoice scan or receipt on local disk and returns its relative URL
// @Tags common
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "File to upload"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /common/upload [post]
func Upload(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "file field is required"))
			return
		}
		if file.Size > maxUploadSize {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "File exceeds the 10MB limit"))
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedExtensions[ext] {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Unsupported file type"))
			return
		}

		if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
			logger.Log.Error("failed to create upload directory", zap.Error(err))
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to store file"))
			return
		}

		name := uuid.NewString() + ext
		dst := filepath.Join(cfg.UploadDir, name)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			logger.Log.Error("failed to save uploaded file", zap.String("path", dst), zap.Error(err))
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to store file"))
			return
		}

		c.JSON(http.StatusCreated, utils.NewSuccessResponse("File uploaded successfully", gin.H{
			"url":      fmt.Sprintf("/uploads/%s", name),
			"filename": file.Filename,
			"size":     file.Size,
		}))
	}
}
