package services

import (
	"strings"

	"github.com/joblyhq/jobly/internal/dtos"
	"github.com/joblyhq/jobly/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Create inserts a job under the company named by handle. The company
// must already exist.
func (s *JobService) Create(req *dtos.JobCreationRequest) (*models.Job, error) {
	var company models.Company
	err := s.DB.Where("handle = ?", req.CompanyHandle).First(&company).Error
	if err != nil {
		return nil, translate(err)
	}

	job := &models.Job{
		CompanyID: company.ID,
		Title:     req.Title,
		Salary:    req.Salary,
		Equity:    req.Equity,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, translate(err)
	}
	job.Company = &company
	return job, nil
}

// List returns jobs matching the filter, every clause optional.
func (s *JobService) List(filter *dtos.JobFilter) ([]models.Job, error) {
	query := s.DB.Model(&models.Job{}).Preload("Company")
	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.MinSalary != nil {
		query = query.Where("salary >= ?", *filter.MinSalary)
	}
	if filter.HasEquity {
		query = query.Where("equity > 0")
	}

	var jobs []models.Job
	if err := query.Order("id").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.Preload("Company").First(&job, id).Error; err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

// Update applies a partial update. Only non-nil fields become SQL
// assignments; the id and owning company are never touched.
func (s *JobService) Update(id uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.Equity != nil {
		updates["equity"] = *req.Equity
	}
	if len(updates) == 0 {
		return nil, ErrEmptyUpdate
	}

	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(job).Updates(updates).Error; err != nil {
		return nil, translate(err)
	}
	return job, nil
}

func (s *JobService) Delete(id uint) error {
	res := s.DB.Delete(&models.Job{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
