package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	orgUC "github.com/recruai/platform-api/internal/application/usecase/org"
)

type OrgHandler struct {
	useCase *orgUC.UseCase
}

func NewOrgHandler(uc *orgUC.UseCase) *OrgHandler {
	return &OrgHandler{useCase: uc}
}

type OrgRequest struct {
	Name             string  `json:"name"`
	Description      *string `json:"description"`
	Website          *string `json:"website"`
	ContactEmail     *string `json:"contact_email"`
	ContactName      *string `json:"contact_name"`
	Location         *string `json:"location"`
	CompanySize      *string `json:"company_size"`
	Industry         *string `json:"industry"`
	Mission          *string `json:"mission"`
	Vision           *string `json:"vision"`
	SocialMediaLinks *string `json:"social_media_links"`
	ProfileImage     *string `json:"profile_image"`
	BannerImage      *string `json:"banner_image"`
	Timezone         string  `json:"timezone"`
}

func (r OrgRequest) toInput() orgUC.Input {
	return orgUC.Input{
		Name:             r.Name,
		Description:      r.Description,
		Website:          r.Website,
		ContactEmail:     r.ContactEmail,
		ContactName:      r.ContactName,
		Location:         r.Location,
		CompanySize:      r.CompanySize,
		Industry:         r.Industry,
		Mission:          r.Mission,
		Vision:           r.Vision,
		SocialMediaLinks: r.SocialMediaLinks,
		ProfileImage:     r.ProfileImage,
		BannerImage:      r.BannerImage,
		Timezone:         r.Timezone,
	}
}

func (h *OrgHandler) List(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	orgs, err := h.useCase.List(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}

func (h *OrgHandler) Get(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}

	o, err := h.useCase.Get(c.Request.Context(), identity, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organization": o})
}

func (h *OrgHandler) Create(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var req OrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	o, err := h.useCase.Create(c.Request.Context(), identity, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Organization created successfully",
		"organization": o,
	})
}

func (h *OrgHandler) Update(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}

	var req OrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	o, err := h.useCase.Update(c.Request.Context(), identity, id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Organization updated successfully",
		"organization": o,
	})
}

func (h *OrgHandler) Delete(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), identity, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Organization deleted successfully"})
}
