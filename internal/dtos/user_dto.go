package dtos

type UserCreationRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=30"`
	Password  string `json:"password" binding:"required,min=5,max=72"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	IsAdmin   bool   `json:"is_admin"`
}

// UserUpdateRequest is a partial update: nil fields are left untouched.
// Username and is_admin cannot be changed through this endpoint.
type UserUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=5,max=72"`
}
