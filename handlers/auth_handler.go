package handlers

import (
	"blogify/helper"
	"blogify/models"
	"blogify/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	cookies     SessionCookies
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, cookies SessionCookies, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies, Helper: h}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.cookies.Set(c, result.Token)
	h.Helper.SendSuccess(c, models.InsertResponse{
		Envelope:   models.Envelope{Success: true},
		InsertedID: result.User.ID.Hex(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.cookies.Set(c, result.Token)
	h.Helper.SendSuccess(c, models.UserResponse{
		Envelope: models.Envelope{Success: true},
		User:     result.User,
	})
}

// Logout only clears the client cookie; tokens are stateless.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.Clear(c)
	h.Helper.SendSuccess(c, nil)
}
