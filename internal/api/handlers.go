package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/canteenhq/canteen-backend/internal/models"
	"github.com/canteenhq/canteen-backend/internal/service"
)

// identity pulls the authenticated (id, role) pair out of the gin
// context, where the auth middleware left it.
func identity(c *gin.Context) (uuid.UUID, models.Role, bool) {
	userIDValue, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, "", false
	}
	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}

	roleValue, exists := c.Get("role")
	if !exists {
		return uuid.Nil, "", false
	}
	roleStr, ok := roleValue.(string)
	if !ok {
		return uuid.Nil, "", false
	}

	return userID, models.Role(roleStr), true
}

// writeServiceError maps the workflow error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is an unexpected storage fault.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "operation not allowed for this role"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, service.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": "purchase order has no line items"})
	case errors.Is(err, service.ErrAlreadyResolved):
		c.JSON(http.StatusConflict, gin.H{"error": "purchase order already resolved"})
	case errors.Is(err, service.ErrDuplicateRedemption):
		c.JSON(http.StatusConflict, gin.H{"error": "meal already taken today"})
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
