package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"expertly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// tempUploadPath maps a client-supplied filename to a scratch path. Only the
// base name is kept so the upload cannot escape the temp directory.
func tempUploadPath(filename string) string {
	return filepath.Join(os.TempDir(), filepath.Base(filename))
}

// AddVideoHandler handles POST /experts/videos. It accepts either a multipart
// "file" upload (pushed to Cloudinary) or a JSON body with an external "url".
func (h *ExpertHandler) AddVideoHandler(c *gin.Context) {
	logger := utils.GetLogger()
	expertID := c.GetString("profileID")

	if fileHeader, err := c.FormFile("file"); err == nil {
		tempFilePath := tempUploadPath(fileHeader.Filename)
		if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "details": err.Error()})
			return
		}
		defer os.Remove(tempFilePath)

		video, err := h.Experts.AddVideo(c.Request.Context(), expertID, tempFilePath, "")
		if err != nil {
			logger.Error("Failed to upload video", zap.String("expert_id", expertID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, video)
		return
	}

	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide a video file or a url", "details": err.Error()})
		return
	}

	video, err := h.Experts.AddVideo(c.Request.Context(), expertID, "", req.URL)
	if err != nil {
		logger.Error("Failed to add video", zap.String("expert_id", expertID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, video)
}

// DeleteVideoHandler handles DELETE /experts/videos/:id.
func (h *ExpertHandler) DeleteVideoHandler(c *gin.Context) {
	logger := utils.GetLogger()
	expertID := c.GetString("profileID")
	videoID := c.Param("id")

	if err := h.Experts.DeleteVideo(c.Request.Context(), videoID, expertID); err != nil {
		logger.Error("Failed to delete video", zap.String("video_id", videoID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}
