package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joblyhq/jobly/internal/dtos"
	"github.com/joblyhq/jobly/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// jobID parses the :id route parameter. A non-numeric id can never name
// a job, so it reads as 404 rather than 400.
func jobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such job"})
		return 0, false
	}
	return uint(id), true
}

// List is the GET /jobs endpoint.
func (h *JobHandler) List(c *gin.Context) {
	var filter dtos.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		writeBindError(c, err)
		return
	}
	jobs, err := h.Jobs.List(&filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Get is the GET /jobs/:id endpoint.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := h.Jobs.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Create is the POST /jobs endpoint (admin only).
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	job, err := h.Jobs.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

// Update is the PATCH /jobs/:id endpoint (admin only).
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	job, err := h.Jobs.Update(id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Delete is the DELETE /jobs/:id endpoint (admin only).
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	if err := h.Jobs.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
