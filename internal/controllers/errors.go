package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"linkly-be/internal/apperrors"
)

// respondError maps the service error taxonomy onto HTTP responses. Anything
// outside the taxonomy is logged and reported as a generic server error.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
	case errors.Is(err, apperrors.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Passwords do not match"})
	case errors.Is(err, apperrors.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email has already been taken"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, apperrors.ErrNoToken), errors.Is(err, apperrors.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, apperrors.ErrLinkNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Short link not found"})
	case errors.Is(err, apperrors.ErrLinkExpired):
		c.JSON(http.StatusGone, gin.H{"message": "This link has expired"})
	case errors.Is(err, apperrors.ErrNothingToUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"message": "No data to update"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
