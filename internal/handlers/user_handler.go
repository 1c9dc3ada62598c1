package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joblyhq/jobly/internal/auth"
	"github.com/joblyhq/jobly/internal/dtos"
	"github.com/joblyhq/jobly/internal/services"
)

type UserHandler struct {
	Users  *services.UserService
	Tokens *auth.TokenIssuer
}

func NewUserHandler(users *services.UserService, tokens *auth.TokenIssuer) *UserHandler {
	return &UserHandler{Users: users, Tokens: tokens}
}

// Create is the POST /users endpoint (admin only). Unlike signup it may
// create admins, and it returns a token so the new user can log in
// without a second round trip.
func (h *UserHandler) Create(c *gin.Context) {
	var req dtos.UserCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	user, err := h.Users.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	token, err := h.Tokens.Issue(user.Username, user.IsAdmin)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// List is the GET /users endpoint (admin only).
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Get is the GET /users/:username endpoint (admin or self).
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.Users.Get(c.Param("username"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Update is the PATCH /users/:username endpoint (admin or self).
func (h *UserHandler) Update(c *gin.Context) {
	var req dtos.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	user, err := h.Users.Update(c.Param("username"), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Delete is the DELETE /users/:username endpoint (admin or self).
func (h *UserHandler) Delete(c *gin.Context) {
	username := c.Param("username")
	if err := h.Users.Delete(username); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": username})
}

// Apply is the POST /users/:username/jobs/:id endpoint (admin or self).
func (h *UserHandler) Apply(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	app, err := h.Users.Apply(c.Param("username"), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"applied": app.JobID})
}
