package textclass

import (
	"context"
)

// Prediction is the external service's best guess for a question.
type Prediction struct {
	Category    string  `json:"category"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// Provider defines the contract for an external text-classification
// backend. The call is idempotent and stateless from the pipeline's point
// of view; callers must treat it as untrusted, possibly slow and possibly
// failing, and fall back to local rules on error.
type Provider interface {
	ClassifyIntent(ctx context.Context, question string, role string) (*Prediction, error)
}
