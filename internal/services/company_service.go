package services

import (
	"fmt"
	"strings"

	"github.com/joblyhq/jobly/internal/dtos"
	"github.com/joblyhq/jobly/internal/models"
	"gorm.io/gorm"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

func (s *CompanyService) Create(req *dtos.CompanyCreationRequest) (*models.Company, error) {
	company := &models.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	}
	if err := s.DB.Create(company).Error; err != nil {
		return nil, translate(err)
	}
	return company, nil
}

// List returns companies matching the filter, every clause optional.
func (s *CompanyService) List(filter *dtos.CompanyFilter) ([]models.Company, error) {
	if filter.MinEmployees != nil && filter.MaxEmployees != nil &&
		*filter.MinEmployees > *filter.MaxEmployees {
		return nil, fmt.Errorf("%w: min_employees cannot exceed max_employees", ErrInvalidFilter)
	}

	query := s.DB.Model(&models.Company{})
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.MinEmployees != nil {
		query = query.Where("num_employees >= ?", *filter.MinEmployees)
	}
	if filter.MaxEmployees != nil {
		query = query.Where("num_employees <= ?", *filter.MaxEmployees)
	}

	var companies []models.Company
	if err := query.Order("handle").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// Get fetches a company by handle together with its jobs.
func (s *CompanyService) Get(handle string) (*models.Company, error) {
	var company models.Company
	err := s.DB.Preload("Jobs").Where("handle = ?", handle).First(&company).Error
	if err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

// Update applies a partial update. Only non-nil fields become SQL
// assignments; the handle itself is never touched.
func (s *CompanyService) Update(handle string, req *dtos.CompanyUpdateRequest) (*models.Company, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.NumEmployees != nil {
		updates["num_employees"] = *req.NumEmployees
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if len(updates) == 0 {
		return nil, ErrEmptyUpdate
	}

	company, err := s.Get(handle)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(company).Updates(updates).Error; err != nil {
		return nil, translate(err)
	}
	return company, nil
}

func (s *CompanyService) Delete(handle string) error {
	res := s.DB.Where("handle = ?", handle).Delete(&models.Company{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
