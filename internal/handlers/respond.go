package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"exam-service/internal/repository"
	"exam-service/internal/service"
)

// fail maps service errors onto the JSON error envelope. Store faults
// are the only 5xx; everything else is a client problem.
func fail(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrSessionNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrQuestionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrSessionEnded):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"success": false, "message": message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}
