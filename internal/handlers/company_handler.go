package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joblyhq/jobly/internal/dtos"
	"github.com/joblyhq/jobly/internal/services"
)

type CompanyHandler struct {
	Companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

// List is the GET /companies endpoint.
func (h *CompanyHandler) List(c *gin.Context) {
	var filter dtos.CompanyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		writeBindError(c, err)
		return
	}
	companies, err := h.Companies.List(&filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// Get is the GET /companies/:handle endpoint.
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.Companies.Get(c.Param("handle"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// Create is the POST /companies endpoint (admin only).
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dtos.CompanyCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	company, err := h.Companies.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// Update is the PATCH /companies/:handle endpoint (admin only).
func (h *CompanyHandler) Update(c *gin.Context) {
	var req dtos.CompanyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	company, err := h.Companies.Update(c.Param("handle"), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// Delete is the DELETE /companies/:handle endpoint (admin only).
func (h *CompanyHandler) Delete(c *gin.Context) {
	handle := c.Param("handle")
	if err := h.Companies.Delete(handle); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": handle})
}
