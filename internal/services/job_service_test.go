package services

import (
	"testing"

	"github.com/joblyhq/jobly/internal/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestJobCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	seedCompany(t, db, "acme", "Acme Corp", 100)

	job, err := svc.Create(&dtos.JobCreationRequest{
		Title:         "Engineer",
		Salary:        120000,
		Equity:        0.05,
		CompanyHandle: "acme",
	})
	require.NoError(t, err)
	assert.NotZero(t, job.ID)
	require.NotNil(t, job.Company)
	assert.Equal(t, "acme", job.Company.Handle)
}

func TestJobCreateUnknownCompany(t *testing.T) {
	svc := NewJobService(newTestDB(t))

	_, err := svc.Create(&dtos.JobCreationRequest{Title: "Engineer", CompanyHandle: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	acme := seedCompany(t, db, "acme", "Acme Corp", 100)
	globex := seedCompany(t, db, "globex", "Globex", 5000)
	seedJob(t, db, acme, "Software Engineer", 120000, 0.05)
	seedJob(t, db, acme, "Designer", 90000, 0)
	seedJob(t, db, globex, "Senior Engineer", 180000, 0)

	tests := []struct {
		name   string
		filter dtos.JobFilter
		titles []string
	}{
		{"no filter", dtos.JobFilter{}, []string{"Software Engineer", "Designer", "Senior Engineer"}},
		{"title substring is case-insensitive", dtos.JobFilter{Title: "engineer"}, []string{"Software Engineer", "Senior Engineer"}},
		{"min salary", dtos.JobFilter{MinSalary: intPtr(100000)}, []string{"Software Engineer", "Senior Engineer"}},
		{"has equity", dtos.JobFilter{HasEquity: true}, []string{"Software Engineer"}},
		{"combined", dtos.JobFilter{Title: "engineer", MinSalary: intPtr(150000)}, []string{"Senior Engineer"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			jobs, err := svc.List(&tc.filter)
			require.NoError(t, err)
			var titles []string
			for _, j := range jobs {
				titles = append(titles, j.Title)
			}
			assert.Equal(t, tc.titles, titles)
		})
	}
}

func TestJobGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	acme := seedCompany(t, db, "acme", "Acme Corp", 100)
	seeded := seedJob(t, db, acme, "Engineer", 120000, 0)

	job, err := svc.Get(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", job.Title)
	require.NotNil(t, job.Company)
	assert.Equal(t, "acme", job.Company.Handle)

	_, err = svc.Get(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	acme := seedCompany(t, db, "acme", "Acme Corp", 100)
	seeded := seedJob(t, db, acme, "Engineer", 120000, 0)

	job, err := svc.Update(seeded.ID, &dtos.JobUpdateRequest{
		Salary: intPtr(130000),
		Equity: floatPtr(0.02),
	})
	require.NoError(t, err)
	assert.Equal(t, 130000, job.Salary)
	assert.Equal(t, 0.02, job.Equity)
	assert.Equal(t, "Engineer", job.Title)
	// The owning company never changes.
	assert.Equal(t, acme.ID, job.CompanyID)

	_, err = svc.Update(seeded.ID, &dtos.JobUpdateRequest{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	_, err = svc.Update(9999, &dtos.JobUpdateRequest{Salary: intPtr(1)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	acme := seedCompany(t, db, "acme", "Acme Corp", 100)
	seeded := seedJob(t, db, acme, "Engineer", 120000, 0)

	require.NoError(t, svc.Delete(seeded.ID))
	_, err := svc.Get(seeded.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(seeded.ID), ErrNotFound)
}
