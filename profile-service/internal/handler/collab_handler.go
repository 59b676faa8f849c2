package handler

import (
	"net/http"

	"dreamforge-app/profile-service/internal/models"
	"dreamforge-app/profile-service/internal/services"
	"dreamforge-app/profile-service/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CollabHandler struct {
	service *services.CollabService
}

func NewCollabHandler(service *services.CollabService) *CollabHandler {
	return &CollabHandler{service: service}
}

// POST /api/collaborations
func (h *CollabHandler) CreateRequest(c *gin.Context) {
	var req models.CollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	req.PatronID = c.GetString("userID")

	if err := utils.GetValidator().Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ParseErrors(err)})
		return
	}

	if err := h.service.CreateRequest(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create request"})
		return
	}
	c.JSON(http.StatusOK, req)
}

// GET /api/collaborations
func (h *CollabHandler) ListRequests(c *gin.Context) {
	requests, err := h.service.ListRequests(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GET /api/collaborations/:id
func (h *CollabHandler) GetRequest(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}
	req, err := h.service.GetRequest(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	c.JSON(http.StatusOK, req)
}

// PUT /api/collaborations/:id/respond
func (h *CollabHandler) RespondToRequest(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}
	var body struct {
		Status models.RequestStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if err := h.service.RespondToRequest(c.Request.Context(), id, body.Status); err != nil {
		switch err {
		case models.ErrInvalidStatus:
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be accepted or declined"})
		case models.ErrAlreadyResolved:
			c.JSON(http.StatusConflict, gin.H{"error": "request already resolved"})
		case models.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update request"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
