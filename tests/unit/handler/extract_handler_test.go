package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tradeos/internal/domain"
	"tradeos/internal/handler"
	"tradeos/internal/service"
	"tradeos/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newExtractRouter(svc service.ExtractService) *gin.Engine {
	r := gin.New()
	r.POST("/api/v1/extract", handler.NewExtractHandler(svc).Extract)
	return r
}

// multipartBody builds a multipart request body with a file plus form fields.
func multipartBody(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestExtract_ProductSuccess(t *testing.T) {
	svc := new(mocks.MockExtractService)
	svc.On("ExtractProducts", mock.Anything, mock.MatchedBy(func(req service.ExtractRequest) bool {
		return req.FileName == "products.csv" && req.Mode == domain.ModeProduct && req.Text == "name\nLED"
	})).Return(&service.ProductExtraction{
		AnalysisResult: domain.AnalysisResult{
			Products:   []domain.ProductData{{Name: "LED"}},
			Source:     domain.SourceGemini,
			Confidence: 0.9,
		},
	}, nil)

	body, contentType := multipartBody(t, "products.csv", []byte("name\nLED"), map[string]string{
		"mode": "product",
		"text": "name\nLED",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newExtractRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var decoded service.ProductExtraction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, domain.SourceGemini, decoded.Source)
	require.Len(t, decoded.Products, 1)
	svc.AssertExpectations(t)
}

func TestExtract_DefaultsToProductMode(t *testing.T) {
	svc := new(mocks.MockExtractService)
	svc.On("ExtractProducts", mock.Anything, mock.MatchedBy(func(req service.ExtractRequest) bool {
		return req.Mode == domain.ModeProduct
	})).Return(&service.ProductExtraction{
		AnalysisResult: domain.AnalysisResult{Products: []domain.ProductData{}, Source: domain.SourceGemini, Confidence: 0.9},
	}, nil)

	body, contentType := multipartBody(t, "a.csv", []byte("x"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newExtractRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestExtract_ClientSuccess(t *testing.T) {
	svc := new(mocks.MockExtractService)
	svc.On("ExtractClient", mock.Anything, mock.Anything).Return(&domain.ClientData{
		ClientName: "한빛상사",
		BusinessNo: "123-45-67890",
		CEO:        "김철수",
	}, nil)

	body, contentType := multipartBody(t, "cert.jpg", []byte{0xFF, 0xD8}, map[string]string{"mode": "client"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newExtractRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var decoded domain.ClientData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, "한빛상사", decoded.ClientName)
}

func TestExtract_MissingFile(t *testing.T) {
	svc := new(mocks.MockExtractService)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("mode", "product"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()

	newExtractRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "file field is required", body["error"])
	svc.AssertNotCalled(t, "ExtractProducts", mock.Anything, mock.Anything)
}

func TestExtract_InvalidMode(t *testing.T) {
	svc := new(mocks.MockExtractService)

	body, contentType := multipartBody(t, "a.csv", []byte("x"), map[string]string{"mode": "invoice"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newExtractRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtract_InvalidImagesField(t *testing.T) {
	svc := new(mocks.MockExtractService)

	body, contentType := multipartBody(t, "a.csv", []byte("x"), map[string]string{"images": "not-json"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newExtractRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtract_ImagesForwarded(t *testing.T) {
	svc := new(mocks.MockExtractService)
	svc.On("ExtractProducts", mock.Anything, mock.MatchedBy(func(req service.ExtractRequest) bool {
		return len(req.Images) == 2 && req.Images[0] == "Zm9v"
	})).Return(&service.ProductExtraction{
		AnalysisResult: domain.AnalysisResult{Products: []domain.ProductData{}, Source: domain.SourceGemini, Confidence: 0.9},
	}, nil)

	body, contentType := multipartBody(t, "a.xlsx", []byte("x"), map[string]string{
		"images": `["Zm9v","YmFy"]`,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newExtractRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestExtract_FileTooLarge(t *testing.T) {
	svc := new(mocks.MockExtractService)
	svc.On("ExtractProducts", mock.Anything, mock.Anything).Return(nil, domain.ErrFileTooLarge)

	body, contentType := multipartBody(t, "a.csv", []byte("x"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newExtractRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "파일 크기는 10MB를 초과할 수 없습니다.", errBody["error"])
}

func TestExtract_ClientExtractionFailed(t *testing.T) {
	svc := new(mocks.MockExtractService)
	svc.On("ExtractClient", mock.Anything, mock.Anything).Return(nil, domain.ErrClientExtraction)

	body, contentType := multipartBody(t, "cert.jpg", []byte{0xFF}, map[string]string{"mode": "client"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newExtractRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Contains(t, errBody["error"], "수동으로 입력해 주세요")
}
