package port

import (
	"context"
	"encoding/json"

	"tradeos/internal/domain"
)

// ExtractInput carries the evidence handed to an extraction provider.
type ExtractInput struct {
	Text  string
	Parts []domain.ImagePart
	Mode  domain.ExtractMode
}

// ExtractOutput is the shape-validated JSON a provider produced.
type ExtractOutput struct {
	Raw       json.RawMessage
	ModelUsed string
}

// Extractor abstracts one AI extraction backend. Implementations must
// request strict JSON output and treat a JSON-parse or shape failure as an
// error so the caller can fall back.
type Extractor interface {
	Extract(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}
