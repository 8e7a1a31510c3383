package controller

import (
	"errors"
	"net/http"

	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/repository"
	"github.com/geekofia/quizdesk/internal/service"
	"github.com/gin-gonic/gin"
)

// respondError maps service/repository errors onto the HTTP status scheme:
// 400 validation, 404 not found, 409 conflict, 500 everything else.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidID), errors.Is(err, service.ErrInvalidStatus):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrDuplicateRegdNo), errors.Is(err, service.ErrAlreadySubmitted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}
