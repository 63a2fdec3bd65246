package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	slidesUC "github.com/recruai/platform-api/internal/application/usecase/slides"
)

type SlidesHandler struct {
	generateUC *slidesUC.GenerateUseCase
	listUC     *slidesUC.ListUseCase
	getUC      *slidesUC.GetSlidesUseCase
}

func NewSlidesHandler(generateUC *slidesUC.GenerateUseCase, listUC *slidesUC.ListUseCase, getUC *slidesUC.GetSlidesUseCase) *SlidesHandler {
	return &SlidesHandler{
		generateUC: generateUC,
		listUC:     listUC,
		getUC:      getUC,
	}
}

type GenerateRequest struct {
	Topic      string `json:"topic"`
	SlideCount int    `json:"slide_count"`
	Approval   bool   `json:"approval"`
}

// Generate streams the generation pipeline as server-sent events. Validation
// failures before the first frame answer as plain JSON errors; everything
// after the stream opens arrives as an error event.
func (h *SlidesHandler) Generate(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}
	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	// Headers go out with the first frame, so failures before any frame
	// (bad identity, missing owner) can still answer as plain JSON.
	opened := false
	emit := func(ev slidesUC.Event) error {
		if !opened {
			c.Writer.Header().Set("Content-Type", "text/event-stream")
			c.Writer.Header().Set("Cache-Control", "no-cache")
			c.Writer.Header().Set("Connection", "keep-alive")
			c.Writer.WriteHeader(http.StatusOK)
			opened = true
		}
		frame, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", frame); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	input := slidesUC.GenerateInput{
		Topic:      req.Topic,
		SlideCount: req.SlideCount,
		Approval:   req.Approval,
	}
	if err := h.generateUC.Execute(c.Request.Context(), identity, input, emit); err != nil {
		if !opened {
			respondError(c, err)
			return
		}
		// The stream is already open; the best we can do is one final frame.
		emit(slidesUC.Event{Status: "error", Message: err.Error()})
	}
}

func (h *SlidesHandler) List(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	presentations, err := h.listUC.Execute(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"presentations": presentations})
}

func (h *SlidesHandler) Slides(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	slides, err := h.getUC.Execute(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slides": slides})
}
