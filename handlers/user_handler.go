package handlers

import (
	"blogify/helper"
	"blogify/middleware"
	"blogify/models"
	"blogify/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.userService.GetByEmail(c.Request.Context(), middleware.CurrentEmail(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.UserResponse{
		Envelope: models.Envelope{Success: true},
		User:     *user,
	})
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	h.Helper.SendSuccess(c, models.UserListResponse{
		Envelope: models.Envelope{Success: true},
		Data:     users,
	})
}

func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	if err := h.userService.SetStatus(c.Request.Context(), c.Param("id"), c.Param("status")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, nil)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, nil)
}
