package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"tradeos/internal/domain"
)

const productSchemaJSON = `{
  "type": "object",
  "required": ["products"],
  "properties": {
    "products": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string"},
          "model": {"type": "string"},
          "specs": {"type": "string"},
          "price": {"type": "number"},
          "currency": {"type": "string"},
          "quantity": {"type": "number"},
          "category": {"type": "string"},
          "manufacturer": {"type": "string"},
          "notes": {"type": "string"}
        }
      }
    }
  }
}`

const clientSchemaJSON = `{
  "type": "object",
  "required": ["clientName", "businessNo", "ceo", "address", "industry", "type"],
  "properties": {
    "clientName": {"type": "string"},
    "businessNo": {"type": "string"},
    "ceo": {"type": "string"},
    "address": {"type": "string"},
    "industry": {"type": "string"},
    "type": {"type": "string"},
    "email": {"type": "string"},
    "tel": {"type": "string"},
    "fax": {"type": "string"}
  }
}`

var (
	productSchema = jsonschema.MustCompileString("product.json", productSchemaJSON)
	clientSchema  = jsonschema.MustCompileString("client.json", clientSchemaJSON)
)

// ValidateOutput checks a provider's JSON output against the mode's expected
// shape. A mismatch is a provider failure and feeds fallback, so missing or
// mistyped fields never pass through silently.
func ValidateOutput(mode domain.ExtractMode, raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("parsing LLM JSON output: %w", err)
	}

	schema := productSchema
	if mode == domain.ModeClient {
		schema = clientSchema
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("output does not match %s schema: %w", mode, err)
	}
	return nil
}

// StripCodeFence removes a leading/trailing markdown code fence from model
// output. Providers are asked for raw JSON but some still wrap it.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
