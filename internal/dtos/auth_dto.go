package dtos

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=30"`
	Password  string `json:"password" binding:"required,min=5,max=72"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
