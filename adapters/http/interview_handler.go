package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	interviewUC "github.com/recruai/platform-api/internal/application/usecase/interview"
)

type InterviewHandler struct {
	useCase *interviewUC.UseCase
}

func NewInterviewHandler(uc *interviewUC.UseCase) *InterviewHandler {
	return &InterviewHandler{useCase: uc}
}

func (h *InterviewHandler) List(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	interviews, err := h.useCase.List(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interviews": interviews})
}

type ScheduleInterviewRequest struct {
	Title       string    `json:"title"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

func (h *InterviewHandler) Schedule(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var req ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	iv, err := h.useCase.Schedule(c.Request.Context(), identity, interviewUC.ScheduleInput{
		Title:       req.Title,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Interview scheduled successfully",
		"interview": iv,
	})
}
