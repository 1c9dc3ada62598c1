package services

import (
	"github.com/joblyhq/jobly/internal/auth"
	"github.com/joblyhq/jobly/internal/dtos"
	"github.com/joblyhq/jobly/internal/models"
	"gorm.io/gorm"
)

type UserService struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewUserService(db *gorm.DB, bcryptCost int) *UserService {
	return &UserService{DB: db, BcryptCost: bcryptCost}
}

// Register creates a regular (non-admin) user from the public signup
// endpoint.
func (s *UserService) Register(req *dtos.RegisterRequest) (*models.User, error) {
	return s.create(req.Username, req.Password, req.Email, req.FirstName, req.LastName, false)
}

// Create is the admin endpoint; unlike Register it may mint admins.
func (s *UserService) Create(req *dtos.UserCreationRequest) (*models.User, error) {
	return s.create(req.Username, req.Password, req.Email, req.FirstName, req.LastName, req.IsAdmin)
}

func (s *UserService) create(username, password, email, firstName, lastName string, isAdmin bool) (*models.User, error) {
	hash, err := auth.HashPassword(password, s.BcryptCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// Authenticate verifies a username/password pair. Unknown users and bad
// passwords return the same error so callers cannot probe for accounts.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, ErrBadCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrBadCredentials
	}
	return &user, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Get fetches a user by username together with their job applications.
func (s *UserService) Get(username string) (*models.User, error) {
	var user models.User
	err := s.DB.Preload("Applications").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Update applies a partial update. Only non-nil fields become SQL
// assignments; username and is_admin are never touched, and a new
// password is re-hashed before it reaches the database.
func (s *UserService) Update(username string, req *dtos.UserUpdateRequest) (*models.User, error) {
	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password, s.BcryptCost)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = hash
	}
	if len(updates) == 0 {
		return nil, ErrEmptyUpdate
	}

	user, err := s.Get(username)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (s *UserService) Delete(username string) error {
	res := s.DB.Where("username = ?", username).Delete(&models.User{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Apply records that the user applied to the job. Both must exist, and a
// user can only apply to a given job once.
func (s *UserService) Apply(username string, jobID uint) (*models.Application, error) {
	user, err := s.Get(username)
	if err != nil {
		return nil, err
	}
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		return nil, translate(err)
	}

	app := &models.Application{UserID: user.ID, JobID: job.ID, Status: "applied"}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, translate(err)
	}
	return app, nil
}
