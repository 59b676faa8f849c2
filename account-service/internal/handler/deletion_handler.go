package handler

import (
	"log"
	"net/http"

	"dreamforge-app/account-service/internal/models"
	"dreamforge-app/account-service/internal/services"

	"github.com/gin-gonic/gin"
)

type DeletionHandler struct {
	Service *services.DeletionService
}

func NewDeletionHandler(service *services.DeletionService) *DeletionHandler {
	return &DeletionHandler{Service: service}
}

// POST /functions/delete-account
func (h *DeletionHandler) DeleteAccount(c *gin.Context) {
	var req models.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	if stepErr := h.Service.DeleteAccount(c.Request.Context(), req.UserID); stepErr != nil {
		log.Printf("Account deletion failed at step %s for user %s: %v", stepErr.Step, req.UserID, stepErr.Err)
		body := gin.H{
			"error":   "Failed to delete account",
			"details": stepErr.Err.Error(),
		}
		if stepErr.Code != "" {
			body["code"] = stepErr.Code
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

// MethodNotAllowed answers any non-POST, non-preflight request on the
// function route.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}
