package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"tradeos/internal/config"
	"tradeos/internal/domain"
	"tradeos/internal/extract"
	"tradeos/internal/port"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Extractor implements port.Extractor using Google's Gemini API. It walks an
// ordered list of model variants: an unknown-model failure moves to the next
// variant, any other failure aborts the provider immediately.
type Extractor struct {
	apiKey  string
	models  []string
	baseURL string
	client  *http.Client
}

// NewExtractor creates a Gemini-based extractor from the provider config.
func NewExtractor(cfg *config.GeminiConfig) *Extractor {
	return newExtractor(cfg, apiBaseURL)
}

// NewExtractorWithBaseURL creates an extractor pointing at a custom API base URL (for testing).
func NewExtractorWithBaseURL(cfg *config.GeminiConfig, baseURL string) *Extractor {
	return newExtractor(cfg, baseURL)
}

func newExtractor(cfg *config.GeminiConfig, baseURL string) *Extractor {
	models := cfg.Models
	if len(models) == 0 {
		models = []string{"gemini-2.0-flash"}
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Extractor{
		apiKey:  cfg.APIKey,
		models:  models,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (e *Extractor) Extract(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	var lastErr error
	for _, model := range e.models {
		out, err := e.callModel(ctx, model, input)
		if err == nil {
			return out, nil
		}
		if extract.IsModelNotFound(err) {
			log.Printf("gemini.Extractor: model %s unavailable, trying next variant: %v", model, err)
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("all model variants exhausted: %w", lastErr)
}

func (e *Extractor) callModel(ctx context.Context, model string, input port.ExtractInput) (*port.ExtractOutput, error) {
	prompt := extract.BuildPrompt(input.Mode)

	var parts []map[string]interface{}
	for _, p := range input.Parts {
		parts = append(parts, map[string]interface{}{
			"inline_data": map[string]interface{}{
				"mime_type": p.MimeType,
				"data":      p.Data,
			},
		})
	}
	text := prompt
	if input.Text != "" {
		text = prompt + "\n\nDocument content:\n" + input.Text
	}
	parts = append(parts, map[string]interface{}{"text": text})

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role":  "user",
				"parts": parts,
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"maxOutputTokens":  16384,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent", e.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusNotFound {
			return nil, &extract.ModelNotFoundError{Model: model, Err: baseErr}
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := extract.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return nil, extract.NewRateLimitError("gemini", baseErr, retryAfter)
		}
		return nil, baseErr
	}

	return parseResponse(respBody, model, input.Mode)
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func parseResponse(body []byte, model string, mode domain.ExtractMode) (*port.ExtractOutput, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from API: no candidates")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from API: no parts")
	}

	text := extract.StripCodeFence(resp.Candidates[0].Content.Parts[0].Text)

	raw := json.RawMessage(text)
	if err := extract.ValidateOutput(mode, raw); err != nil {
		return nil, err
	}

	return &port.ExtractOutput{
		Raw:       raw,
		ModelUsed: model,
	}, nil
}
