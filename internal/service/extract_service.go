package service

import (
	"context"
	"encoding/base64"
	"log"
	"path/filepath"
	"strings"

	"tradeos/internal/dedupe"
	"tradeos/internal/domain"
	"tradeos/internal/extract"
	"tradeos/internal/fileparse"
	"tradeos/internal/port"
)

// ExtractRequest is the DTO for an extraction call. Text and Images carry
// the client-side parser output when present; FileBytes always carries the
// raw upload so the server can parse files the client deferred (PDFs) or
// re-parse when the client sent nothing.
type ExtractRequest struct {
	FileName  string
	FileBytes []byte
	MimeType  string
	Text      string
	Images    []string
	Mode      domain.ExtractMode
}

// ProductExtraction is the product-mode result: the analysis envelope plus
// duplicate candidates against the existing catalog.
type ProductExtraction struct {
	domain.AnalysisResult
	Duplicates map[int][]domain.CatalogProduct `json:"duplicates,omitempty"`
}

// ExtractService runs the full server-side pipeline: validation, parsing,
// provider-fallback extraction, and (for products) duplicate detection.
type ExtractService interface {
	ExtractProducts(ctx context.Context, req ExtractRequest) (*ProductExtraction, error)
	ExtractClient(ctx context.Context, req ExtractRequest) (*domain.ClientData, error)
}

type extractService struct {
	orchestrator *extract.Orchestrator
	catalog      port.CatalogReader
}

// NewExtractService creates a new ExtractService implementation.
func NewExtractService(orchestrator *extract.Orchestrator, catalog port.CatalogReader) ExtractService {
	return &extractService{orchestrator: orchestrator, catalog: catalog}
}

func (s *extractService) ExtractProducts(ctx context.Context, req ExtractRequest) (*ProductExtraction, error) {
	text, parts, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	result := s.orchestrator.ExtractProducts(ctx, text, parts)

	existing, err := s.catalog.ListProducts(ctx)
	if err != nil {
		// Extraction already succeeded; a catalog outage only costs the
		// duplicate hints.
		log.Printf("extractService.ExtractProducts: catalog lookup failed: %v", err)
		existing = nil
	}

	return &ProductExtraction{
		AnalysisResult: *result,
		Duplicates:     dedupe.Detect(result.Products, existing),
	}, nil
}

func (s *extractService) ExtractClient(ctx context.Context, req ExtractRequest) (*domain.ClientData, error) {
	text, parts, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	return s.orchestrator.ExtractClientInfo(ctx, text, parts)
}

// prepare validates the upload and assembles the extraction evidence.
// Validation and parse errors surface here, before any provider call.
func (s *extractService) prepare(req ExtractRequest) (string, []domain.ImagePart, error) {
	if len(req.FileBytes) == 0 {
		return "", nil, domain.ErrMissingFile
	}
	if err := fileparse.ValidateFile(req.FileName, int64(len(req.FileBytes)), req.MimeType); err != nil {
		return "", nil, err
	}

	text := req.Text
	parts := extract.NormalizeParts(req.Images)

	if text == "" && len(parts) == 0 {
		parsed, err := fileparse.ParseFile(req.FileName, req.FileBytes)
		if err != nil {
			return "", nil, err
		}
		text = parsed.Text
		for _, img := range parsed.Images {
			parts = append(parts, domain.ImagePart{Data: img, MimeType: imageMIME(req.FileName)})
		}
	}

	// PDFs carry no client-extracted text; the raw bytes go to the provider
	// as an inline part instead (the GPT path drops it, Gemini reads it).
	if isPDF(req.FileName) {
		parts = append(parts, domain.ImagePart{
			Data:     base64.StdEncoding.EncodeToString(req.FileBytes),
			MimeType: "application/pdf",
		})
	}

	return text, parts, nil
}

func isPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// imageMIME maps an image file's extension to its MIME type, defaulting to JPEG.
func imageMIME(name string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
