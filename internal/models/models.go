package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// Never serialized; only the auth package reads it.
	PasswordHash []byte `gorm:"not null" json:"-"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`

	Applications []Application `json:"applications,omitempty"`
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Handle is the URL slug routes address a company by.
	Handle       string `gorm:"uniqueIndex;not null" json:"handle"`
	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	NumEmployees int    `json:"num_employees"`
	LogoURL      string `json:"logo_url"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Foreign Key
	CompanyID uint `json:"company_id"`
	// Association: GORM needs Preload() to fill this
	Company *Company `json:"company,omitempty"`

	Title  string  `gorm:"not null" json:"title"`
	Salary int     `json:"salary"`
	Equity float64 `json:"equity"`
}

// Application links a user to a job they applied for. The composite unique
// index keeps a user from applying to the same job twice.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID uint   `gorm:"uniqueIndex:idx_user_job;not null" json:"user_id"`
	JobID  uint   `gorm:"uniqueIndex:idx_user_job;not null" json:"job_id"`
	Status string `gorm:"default:'applied'" json:"status"`
}
