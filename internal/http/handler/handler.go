// Package handler contains the gin HTTP handlers for the REST API. Handlers
// bind and validate request bodies, delegate to the service layer and map
// service errors onto HTTP status codes.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/craftline/backoffice/internal/service"
	"github.com/craftline/backoffice/internal/store"
)

// parseID extracts the id path parameter, writing a 400 response on failure.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// listFilter builds a store filter from the supported query parameters.
func listFilter(c *gin.Context) store.Filter {
	return store.Filter{OrganizationID: c.Query("organizationId")}
}

// bindError writes a 400 response for a failed request binding, naming the
// first offending field when the validator reports one.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid field: " + verrs[0].Field()})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}

// respondError translates service errors into HTTP responses. Unexpected
// errors become an opaque 500; details stay in the server log.
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
