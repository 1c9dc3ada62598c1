package dtos

type JobCreationRequest struct {
	Title         string  `json:"title" binding:"required"`
	Salary        int     `json:"salary" binding:"omitempty,min=0"`
	Equity        float64 `json:"equity" binding:"omitempty,min=0,max=1"`
	CompanyHandle string  `json:"company_handle" binding:"required"`
}

// JobUpdateRequest is a partial update: nil fields are left untouched.
// The id and owning company are immutable.
type JobUpdateRequest struct {
	Title  *string  `json:"title"`
	Salary *int     `json:"salary" binding:"omitempty,min=0"`
	Equity *float64 `json:"equity" binding:"omitempty,min=0,max=1"`
}

// JobFilter carries the optional query parameters of GET /jobs.
type JobFilter struct {
	Title     string `form:"title"`
	MinSalary *int   `form:"min_salary" binding:"omitempty,min=0"`
	HasEquity bool   `form:"has_equity"`
}
