package handler

import (
	"errors"
	"net/http"

	"gameshelf/backend/internal/search"
	"gameshelf/backend/internal/store"

	"github.com/gin-gonic/gin"
)

var (
	dataStore *store.Store
	searchSvc *search.Service
)

// Setup wires the handler package to its backing services. Handlers parse
// requests and shape responses; all data access goes through these two.
func Setup(st *store.Store, svc *search.Service) {
	dataStore = st
	searchSvc = svc
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// writeStoreError maps data-layer errors onto HTTP statuses. The wrapped
// message is passed through for client errors; internal failures stay opaque.
func writeStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrConstraintViolation):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
