package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/funfriday/backend/internal/auth"
	"github.com/funfriday/backend/internal/middleware"
	"github.com/funfriday/backend/internal/service"
	"github.com/funfriday/backend/pkg/resp"
)

// AuthHandler exposes register, login, and current-user endpoints.
type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	session, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrWeakPassword) || errors.Is(err, auth.ErrEmailExists) {
			resp.BadRequest(c, err.Error())
			return
		}
		writeServiceError(c, err)
		return
	}
	resp.Created(c, session)
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	session, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		writeServiceError(c, err)
		return
	}
	resp.OK(c, session)
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.CurrentUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}
