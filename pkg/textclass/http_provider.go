package textclass

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPProvider calls an external intent-classification service over HTTP.
type HTTPProvider struct {
	BaseURL string
	Client  *http.Client
}

// Ensure HTTPProvider implements Provider
var _ Provider = &HTTPProvider{}

func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPProvider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type classifyRequest struct {
	Question string `json:"question"`
	Context  struct {
		Role string `json:"role,omitempty"`
	} `json:"context"`
}

type classifyResponse struct {
	Category    string  `json:"category"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// ClassifyIntent posts the question to the service and returns its guess.
// Timeouts and non-200 responses surface as errors; the caller decides how
// to degrade.
func (p *HTTPProvider) ClassifyIntent(ctx context.Context, question string, role string) (*Prediction, error) {
	reqPayload := classifyRequest{Question: question}
	reqPayload.Context.Role = role

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := p.BaseURL + "/v1/classify"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("text classification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("text classification service returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if parsed.Confidence < 0 {
		parsed.Confidence = 0
	}
	if parsed.Confidence > 1 {
		parsed.Confidence = 1
	}

	return &Prediction{
		Category:    parsed.Category,
		Confidence:  parsed.Confidence,
		Explanation: parsed.Explanation,
	}, nil
}
