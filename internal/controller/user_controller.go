package controller

import (
	"net/http"

	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUser godoc
// @Summary Get a user by email
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} dto.UserResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{email} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.userService.GetUser(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update a user's profile
// @Description Partial merge of name and image; the email cannot be changed.
// @Tags Users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param user body dto.UserUpdateDTO true "Fields to merge"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{email} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req dto.UserUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateUser: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	count, err := c.userService.UpdateUser(ctx.Request.Context(), ctx.Param("email"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if count == 0 {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User already up to date"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User updated"})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/id/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	count, err := c.userService.DeleteUser(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if count == 0 {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted"})
}
