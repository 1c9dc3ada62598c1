package dtos

type CompanyCreationRequest struct {
	Handle       string `json:"handle" binding:"required,min=1,max=25"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	NumEmployees int    `json:"num_employees" binding:"omitempty,min=0"`
	LogoURL      string `json:"logo_url" binding:"omitempty,url"`
}

// CompanyUpdateRequest is a partial update: nil fields are left untouched.
// The handle is immutable and deliberately absent.
type CompanyUpdateRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"num_employees" binding:"omitempty,min=0"`
	LogoURL      *string `json:"logo_url" binding:"omitempty,url"`
}

// CompanyFilter carries the optional query parameters of GET /companies.
type CompanyFilter struct {
	Name         string `form:"name"`
	MinEmployees *int   `form:"min_employees" binding:"omitempty,min=0"`
	MaxEmployees *int   `form:"max_employees" binding:"omitempty,min=0"`
}
