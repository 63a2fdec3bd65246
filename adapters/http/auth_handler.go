package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/recruai/platform-api/internal/application/usecase/auth"
	"github.com/recruai/platform-api/internal/domain/owner"
)

type AuthHandler struct {
	registerUC *authUC.RegisterUseCase
	loginUC    *authUC.LoginUseCase
	accountUC  *authUC.AccountUseCase
}

func NewAuthHandler(
	registerUC *authUC.RegisterUseCase,
	loginUC *authUC.LoginUseCase,
	accountUC *authUC.AccountUseCase,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		accountUC:  accountUC,
	}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Timezone string `json:"timezone"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	out, err := h.registerUC.Execute(c.Request.Context(), authUC.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
		Timezone: req.Timezone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"access_token": out.AccessToken,
		"user":         ToUserDTO(out.Owner),
	})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	out, err := h.loginUC.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": out.AccessToken,
		"user":         ToUserDTO(out.Owner),
	})
}

// Verify answers 200 with the token subject; the middleware already rejected
// missing, malformed and expired tokens with their distinct 401 bodies.
func (h *AuthHandler) Verify(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "user_id": identity})
}

func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	o, err := h.accountUC.Me(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": ToUserDTO(o)})
}

func (h *AuthHandler) GetPlan(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	o, err := h.accountUC.Me(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": o.Plan, "is_pro": o.IsPro()})
}

type UpdatePlanRequest struct {
	Plan string `json:"plan"`
}

func (h *AuthHandler) UpdatePlan(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	o, err := h.accountUC.UpdatePlan(c.Request.Context(), identity, req.Plan)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Plan updated successfully",
		"plan":    o.Plan,
		"is_pro":  o.IsPro(),
	})
}

// UserDTO is the public shape of an account record.
type UserDTO struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Username       *string `json:"username"`
	Name           *string `json:"name"`
	Role           string  `json:"role"`
	Plan           string  `json:"plan"`
	ProfilePicture *string `json:"profile_picture"`
	Timezone       *string `json:"timezone"`
}

func ToUserDTO(o *owner.Owner) UserDTO {
	return UserDTO{
		ID:             o.ID.String(),
		Email:          o.Email,
		Username:       o.Username,
		Name:           o.Name,
		Role:           o.Role,
		Plan:           o.Plan,
		ProfilePicture: o.ProfilePicture,
		Timezone:       o.Timezone,
	}
}
