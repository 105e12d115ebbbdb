package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradeos/internal/domain"
	"tradeos/internal/service"
)

// ExtractHandler handles the document extraction endpoint.
type ExtractHandler struct {
	extractService service.ExtractService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractService service.ExtractService) *ExtractHandler {
	return &ExtractHandler{extractService: extractService}
}

// Extract handles POST /api/v1/extract.
//
// Multipart form fields: "file" (raw bytes, always attached), "mode"
// ("product", the default, or "client"), and — when the file is not an
// image — "text" (client-side parser output) and optionally "images"
// (JSON-encoded array of base64 strings). 200 responses carry the result
// body directly; everything else is {"error": message}.
func (h *ExtractHandler) Extract(c *gin.Context) {
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

	var images []string
	if raw := c.PostForm("images"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &images); err != nil {
			RespondError(c, http.StatusBadRequest, "images must be a JSON array of base64 strings")
			return
		}
	}

	mode := domain.ExtractMode(c.DefaultPostForm("mode", string(domain.ModeProduct)))
	if mode != domain.ModeProduct && mode != domain.ModeClient {
		HandleError(c, domain.ErrInvalidMode)
		return
	}

	req := service.ExtractRequest{
		FileName:  header.Filename,
		FileBytes: data,
		MimeType:  header.Header.Get("Content-Type"),
		Text:      c.PostForm("text"),
		Images:    images,
		Mode:      mode,
	}

	if mode == domain.ModeClient {
		client, err := h.extractService.ExtractClient(c.Request.Context(), req)
		if err != nil {
			HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, client)
		return
	}

	result, err := h.extractService.ExtractProducts(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
