package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/recruai/platform-api/internal/application/usecase/profile"
)

type ProfileHandler struct {
	useCase *profileUC.UseCase
}

func NewProfileHandler(uc *profileUC.UseCase) *ProfileHandler {
	return &ProfileHandler{useCase: uc}
}

func (h *ProfileHandler) GetFullProfile(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	profile, err := h.useCase.GetFullProfile(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateFullProfile(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	profile, err := h.useCase.UpdateFullProfile(c.Request.Context(), identity, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}
