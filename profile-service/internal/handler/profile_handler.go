package handler

import (
	"net/http"

	"dreamforge-app/profile-service/internal/models"
	"dreamforge-app/profile-service/internal/services"
	"dreamforge-app/profile-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service *services.ProfileService
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// POST /api/profiles
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	profile.UserID = c.GetString("userID")

	if err := utils.GetValidator().Struct(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ParseErrors(err)})
		return
	}

	if err := h.service.CreateProfile(c.Request.Context(), &profile); err != nil {
		if err == models.ErrAlreadyExists {
			c.JSON(http.StatusConflict, gin.H{"error": "profile already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GET /api/profiles/me
func (h *ProfileHandler) GetMe(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GET /api/profiles/:userId
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GET /api/profiles?role=creator
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.service.ListProfiles(c.Request.Context(), models.ToRole(c.Query("role")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch profiles"})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// PUT /api/profiles/me
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req services.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.service.UpdateProfile(c.Request.Context(), c.GetString("userID"), req); err != nil {
		if err == models.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

// GET /api/profiles/me/settings
func (h *ProfileHandler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PUT /api/profiles/me/settings
func (h *ProfileHandler) SaveSettings(c *gin.Context) {
	var settings models.UserSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	settings.UserID = c.GetString("userID")
	if err := h.service.SaveSettings(c.Request.Context(), &settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}
