package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradeos/internal/domain"
)

// ErrorBody is the wire shape for every non-2xx response: a bare error
// message the upload driver can surface verbatim.
type ErrorBody struct {
	Error string `json:"error"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}

// MapDomainError translates domain errors to HTTP status codes and
// user-facing messages. Validation messages are Korean, matching the UI.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "파일 크기는 10MB를 초과할 수 없습니다."
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "지원하지 않는 파일 형식입니다."
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "지원하지 않는 파일 형식입니다."
	case errors.Is(err, domain.ErrParseFailure):
		return http.StatusUnprocessableEntity, "파일을 읽을 수 없습니다. 파일이 손상되었을 수 있습니다."
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "file field is required"
	case errors.Is(err, domain.ErrInvalidMode):
		return http.StatusBadRequest, "mode must be 'product' or 'client'"
	case errors.Is(err, domain.ErrClientExtraction):
		return http.StatusUnprocessableEntity, "업체 정보를 자동으로 추출하지 못했습니다. 수동으로 입력해 주세요."
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "file upload to storage failed"
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, msg)
}
