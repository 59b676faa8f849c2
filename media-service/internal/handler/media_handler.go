package handler

import (
	"net/http"

	"dreamforge-app/media-service/internal/models"
	"dreamforge-app/media-service/internal/services"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	svc *services.MediaService
}

func NewMediaHandler(svc *services.MediaService) *MediaHandler {
	return &MediaHandler{svc: svc}
}

// POST /media/avatar — any authenticated user.
func (h *MediaHandler) UploadAvatar(c *gin.Context) {
	userID := c.GetString("userID")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	url, err := h.svc.Upload(
		c.Request.Context(), file, header.Size,
		header.Header.Get("Content-Type"),
		header.Filename,
		models.AvatarMedia,
		userID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// POST /media/project — creators only; portfolio images.
func (h *MediaHandler) UploadProjectImage(c *gin.Context) {
	if c.GetString("role") != "creator" {
		c.JSON(http.StatusForbidden, gin.H{"error": "only creators can upload project images"})
		return
	}
	userID := c.GetString("userID")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	url, err := h.svc.Upload(
		c.Request.Context(), file, header.Size,
		header.Header.Get("Content-Type"),
		header.Filename,
		models.ProjectMedia,
		userID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GET /media/avatars — the caller's own avatars.
func (h *MediaHandler) GetAvatars(c *gin.Context) {
	userID := c.GetString("userID")

	medias, err := h.svc.GetAvatars(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, medias)
}

// GET /media/projects/:userId — anyone may browse a creator's portfolio.
func (h *MediaHandler) GetProjectImages(c *gin.Context) {
	userID := c.Param("userId")

	medias, err := h.svc.GetProjectImages(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, medias)
}
