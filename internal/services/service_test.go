package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/joblyhq/jobly/internal/database"
	"github.com/joblyhq/jobly/internal/dtos"
	"github.com/joblyhq/jobly/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway in-memory database with the full schema.
// cache=shared keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedCompany(t *testing.T, db *gorm.DB, handle, name string, employees int) *models.Company {
	t.Helper()
	company := &models.Company{Handle: handle, Name: name, NumEmployees: employees}
	require.NoError(t, db.Create(company).Error)
	return company
}

func seedJob(t *testing.T, db *gorm.DB, company *models.Company, title string, salary int, equity float64) *models.Job {
	t.Helper()
	job := &models.Job{CompanyID: company.ID, Title: title, Salary: salary, Equity: equity}
	require.NoError(t, db.Create(job).Error)
	return job
}

func seedUser(t *testing.T, db *gorm.DB, svc *UserService, username string, isAdmin bool) *models.User {
	t.Helper()
	user, err := svc.Create(&dtos.UserCreationRequest{
		Username:  username,
		Password:  "password",
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
		IsAdmin:   isAdmin,
	})
	require.NoError(t, err)
	return user
}
