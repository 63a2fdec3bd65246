package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/recruai/platform-api/internal/application/usecase/media"
)

type UploadHandler struct {
	useCase *mediaUC.UploadPictureUseCase
}

func NewUploadHandler(uc *mediaUC.UploadPictureUseCase) *UploadHandler {
	return &UploadHandler{useCase: uc}
}

func (h *UploadHandler) UploadProfilePicture(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	fileHeader, err := c.FormFile("profile_picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile_picture file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.useCase.Execute(c.Request.Context(), identity, mediaUC.UploadPictureInput{
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		File:        file,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Profile picture uploaded successfully",
		"profile_picture": url,
	})
}
