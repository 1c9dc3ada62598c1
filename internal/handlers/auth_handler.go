package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joblyhq/jobly/internal/auth"
	"github.com/joblyhq/jobly/internal/dtos"
	"github.com/joblyhq/jobly/internal/services"
)

type AuthHandler struct {
	Users  *services.UserService
	Tokens *auth.TokenIssuer
}

func NewAuthHandler(users *services.UserService, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

// Register is the POST /auth/register endpoint. New signups are never
// admins; only an existing admin can mint one via POST /users.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	user, err := h.Users.Register(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	token, err := h.Tokens.Issue(user.Username, user.IsAdmin)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dtos.TokenResponse{Token: token})
}

// Login is the POST /auth/token endpoint.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	user, err := h.Users.Authenticate(req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	token, err := h.Tokens.Issue(user.Username, user.IsAdmin)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.TokenResponse{Token: token})
}
