package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradeos/internal/domain"
	"tradeos/internal/service"
)

// FileHandler handles storage upload endpoints.
type FileHandler struct {
	fileService service.FileService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Upload handles POST /api/v1/files/upload. Stores the binary and returns
// {url, name} for attaching to downstream records.
func (h *FileHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrMissingFile)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	stored, err := h.fileService.Upload(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stored)
}
