package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"notetaker/apperror"
)

// respondError maps application error kinds to HTTP status codes in one
// place; handlers never pick status codes for service failures themselves.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperror.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthorized):
		status = http.StatusUnauthorized
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
