package controllers

import (
	"errors"
	"log"
	"net/http"

	"cleanpro-backend/config"
	"cleanpro-backend/repository"
	"cleanpro-backend/services"
	"cleanpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// invalidateDashboard drops the cached overview after a write that moves
// its numbers. No-op when caching is disabled.
func invalidateDashboard(c *gin.Context) {
	if config.Cache != nil {
		config.Cache.Invalidate(c.Request.Context(), dashboardCacheKey)
	}
}

// handleServiceError maps service layer failures onto HTTP responses.
// Validation failures carry their field map; persistence failures are logged
// with their stage and surfaced as a generic database error.
func handleServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	var pErr *repository.PersistenceError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  vErr.Fields,
		})
	case errors.Is(err, repository.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, services.ErrInvalidTransition):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrDuplicatePhone):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.As(err, &pErr):
		log.Printf("Persistence failure at %s: %v", pErr.Stage, pErr.Err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	default:
		log.Printf("Unexpected error: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
