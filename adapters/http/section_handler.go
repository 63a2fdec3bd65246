package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	sectionUC "github.com/recruai/platform-api/internal/application/usecase/section"
	"github.com/recruai/platform-api/internal/domain/section"
)

type SectionHandler struct {
	useCase *sectionUC.UseCase
}

func NewSectionHandler(uc *sectionUC.UseCase) *SectionHandler {
	return &SectionHandler{useCase: uc}
}

// RegisterRoutes mounts LIST/CREATE/UPDATE/DELETE for one schema under its
// resource path and every alias path. The closures are the only per-resource
// state; all behavior differences live in the schema.
func (h *SectionHandler) RegisterRoutes(rg *gin.RouterGroup, schema *section.Schema) {
	paths := append([]string{schema.Resource}, schema.Aliases...)
	for _, path := range paths {
		rg.GET("/"+path, h.list(schema))
		rg.POST("/"+path, h.create(schema))
		rg.PUT("/"+path+"/:id", h.update(schema))
		rg.DELETE("/"+path+"/:id", h.delete(schema))
	}
}

// RegisterAll mounts every registered section kind.
func (h *SectionHandler) RegisterAll(rg *gin.RouterGroup) {
	for _, schema := range section.All() {
		h.RegisterRoutes(rg, schema)
	}
}

func (h *SectionHandler) list(schema *section.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentityFromGinContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
			return
		}

		items, err := h.useCase.List(c.Request.Context(), schema, identity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{schema.ListKey: items})
	}
}

func (h *SectionHandler) create(schema *section.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		item, err := h.useCase.Create(c.Request.Context(), schema, identity, payload)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":        schema.Label + " added successfully",
			schema.SingleKey: item,
		})
	}
}

func (h *SectionHandler) update(schema *section.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentityFromGinContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
			return
		}
		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + schema.SingleKey + " id"})
			return
		}

		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
			return
		}

		item, err := h.useCase.Update(c.Request.Context(), schema, identity, itemID, payload)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":        schema.Label + " updated successfully",
			schema.SingleKey: item,
		})
	}
}

func (h *SectionHandler) delete(schema *section.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentityFromGinContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
			return
		}
		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + schema.SingleKey + " id"})
			return
		}

		if err := h.useCase.Delete(c.Request.Context(), schema, identity, itemID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": schema.Label + " deleted successfully"})
	}
}
