package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"tradeos/internal/domain"
	"tradeos/internal/port"
)

// FinalFailbackWarning marks a product result produced after both providers
// failed.
const FinalFailbackWarning = "Final Failback"

// ErrClientExtractionMessage is the user-facing message when client info
// cannot be extracted by any provider.
const ErrClientExtractionMessage = "업체 정보를 자동으로 추출하지 못했습니다. 수동으로 입력해 주세요."

// Orchestrator runs structured extraction against a primary provider and
// falls back to a secondary one. Providers are always tried strictly in
// order, never concurrently.
type Orchestrator struct {
	primary   port.Extractor
	secondary port.Extractor
}

// NewOrchestrator creates an Orchestrator from the ordered provider pair.
func NewOrchestrator(primary, secondary port.Extractor) *Orchestrator {
	return &Orchestrator{primary: primary, secondary: secondary}
}

// productResult mirrors the product prompt contract.
type productResult struct {
	Products []domain.ProductData `json:"products"`
}

// ExtractProducts extracts catalog line items. It never returns an error:
// when both providers fail the caller gets a degraded empty envelope with
// source "error" and confidence 0 instead.
func (o *Orchestrator) ExtractProducts(ctx context.Context, text string, parts []domain.ImagePart) *domain.AnalysisResult {
	input := port.ExtractInput{Text: text, Parts: parts, Mode: domain.ModeProduct}

	if out, err := o.primary.Extract(ctx, input); err == nil {
		if res, decErr := productEnvelope(out.Raw, domain.SourceGemini); decErr == nil {
			return res
		} else {
			log.Printf("extract.Orchestrator: gemini result decode failed: %v", decErr)
		}
	} else {
		log.Printf("extract.Orchestrator: gemini extraction failed: %v", err)
	}

	if out, err := o.secondary.Extract(ctx, input); err == nil {
		if res, decErr := productEnvelope(out.Raw, domain.SourceGPT); decErr == nil {
			return res
		} else {
			log.Printf("extract.Orchestrator: gpt result decode failed: %v", decErr)
		}
	} else {
		log.Printf("extract.Orchestrator: gpt extraction failed: %v", err)
	}

	return &domain.AnalysisResult{
		Products:   []domain.ProductData{},
		Source:     domain.SourceError,
		Confidence: domain.Confidence[domain.SourceError],
		Warnings:   []string{FinalFailbackWarning},
	}
}

func productEnvelope(raw json.RawMessage, source domain.Source) (*domain.AnalysisResult, error) {
	var parsed productResult
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	products := parsed.Products
	if products == nil {
		products = []domain.ProductData{}
	}
	return &domain.AnalysisResult{
		Products:   products,
		Source:     source,
		Confidence: domain.Confidence[source],
	}, nil
}

// ExtractClientInfo extracts a business-registration record. A primary
// result with all identifying fields empty counts as a failure and triggers
// fallback; whatever the secondary returns is accepted as-is. When both
// providers fail the error carries a fixed manual-entry instruction — unlike
// product extraction there is no degraded envelope.
func (o *Orchestrator) ExtractClientInfo(ctx context.Context, text string, parts []domain.ImagePart) (*domain.ClientData, error) {
	input := port.ExtractInput{Text: text, Parts: parts, Mode: domain.ModeClient}

	if out, err := o.primary.Extract(ctx, input); err == nil {
		var client domain.ClientData
		if decErr := json.Unmarshal(out.Raw, &client); decErr == nil && !client.Empty() {
			return &client, nil
		}
		log.Printf("extract.Orchestrator: gemini returned an empty client record, falling back")
	} else {
		log.Printf("extract.Orchestrator: gemini client extraction failed: %v", err)
	}

	if out, err := o.secondary.Extract(ctx, input); err == nil {
		var client domain.ClientData
		if decErr := json.Unmarshal(out.Raw, &client); decErr == nil {
			return &client, nil
		}
	} else {
		log.Printf("extract.Orchestrator: gpt client extraction failed: %v", err)
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrClientExtraction, ErrClientExtractionMessage)
}

// NormalizeParts turns bare base64 strings into typed image parts. Untyped
// payloads are assumed to be JPEG.
func NormalizeParts(images []string) []domain.ImagePart {
	parts := make([]domain.ImagePart, 0, len(images))
	for _, img := range images {
		if img == "" {
			continue
		}
		parts = append(parts, domain.ImagePart{Data: img, MimeType: "image/jpeg"})
	}
	return parts
}
