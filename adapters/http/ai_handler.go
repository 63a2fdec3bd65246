package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	chatUC "github.com/recruai/platform-api/internal/application/usecase/chat"
)

type AIHandler struct {
	chatUseCase *chatUC.UseCase
}

func NewAIHandler(uc *chatUC.UseCase) *AIHandler {
	return &AIHandler{chatUseCase: uc}
}

func (h *AIHandler) Chat(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	out, err := h.chatUseCase.Execute(c.Request.Context(), identity, chatUC.Input{Message: req.Message})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
