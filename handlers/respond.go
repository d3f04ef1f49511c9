package handlers

import (
	"errors"
	"net/http"

	"quickbite-api/apperr"

	"github.com/gin-gonic/gin"
)

// writeError maps the domain error taxonomy onto HTTP: bad request 400,
// not found 404, everything else 500.
func writeError(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Internal("unexpected error", err)
	}

	status := http.StatusInternalServerError
	switch ae.Kind {
	case apperr.KindBadRequest:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	}

	body := gin.H{"error": ae.Message}
	if ae.Details != "" {
		body["details"] = ae.Details
	}
	c.JSON(status, body)
}
