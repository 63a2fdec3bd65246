package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	jobpostUC "github.com/recruai/platform-api/internal/application/usecase/jobpost"
	"github.com/recruai/platform-api/internal/domain/jobpost"
)

type JobPostHandler struct {
	useCase *jobpostUC.UseCase
}

func NewJobPostHandler(uc *jobpostUC.UseCase) *JobPostHandler {
	return &JobPostHandler{useCase: uc}
}

type JobPostRequest struct {
	OrganizationID      int64   `json:"organization_id"`
	Title               string  `json:"title"`
	Description         *string `json:"description"`
	Location            *string `json:"location"`
	EmploymentType      *string `json:"employment_type"`
	Category            *string `json:"category"`
	SalaryMin           *int64  `json:"salary_min"`
	SalaryMax           *int64  `json:"salary_max"`
	SalaryCurrency      string  `json:"salary_currency"`
	Requirements        *string `json:"requirements"`
	ApplicationDeadline string  `json:"application_deadline"`
	Status              string  `json:"status"`
}

func (r JobPostRequest) toInput() jobpostUC.Input {
	input := jobpostUC.Input{
		OrganizationID: r.OrganizationID,
		Title:          r.Title,
		Description:    r.Description,
		Location:       r.Location,
		EmploymentType: r.EmploymentType,
		Category:       r.Category,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		SalaryCurrency: r.SalaryCurrency,
		Requirements:   r.Requirements,
		Status:         r.Status,
	}
	if r.ApplicationDeadline != "" {
		if deadline, err := time.Parse("2006-01-02", r.ApplicationDeadline); err == nil {
			input.ApplicationDeadline = &deadline
		}
	}
	return input
}

func (h *JobPostHandler) List(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	filter := jobpost.Filter{
		Status:         c.Query("status"),
		Category:       c.Query("category"),
		Location:       c.Query("location"),
		EmploymentType: c.Query("employment_type"),
	}
	if orgID := c.Param("id"); orgID != "" {
		id, err := strconv.ParseInt(orgID, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
			return
		}
		filter.OrganizationID = id
	}

	posts, err := h.useCase.List(c.Request.Context(), identity, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *JobPostHandler) Get(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job post id"})
		return
	}

	p, err := h.useCase.Get(c.Request.Context(), identity, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": p})
}

func (h *JobPostHandler) Create(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var req JobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	p, err := h.useCase.Create(c.Request.Context(), identity, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Job post created successfully",
		"post":    p,
	})
}

func (h *JobPostHandler) Update(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job post id"})
		return
	}

	var req JobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	p, err := h.useCase.Update(c.Request.Context(), identity, id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job post updated successfully",
		"post":    p,
	})
}

func (h *JobPostHandler) Delete(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job post id"})
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), identity, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job post deleted successfully"})
}
