package dto

import (
	"github.com/DjordjeVuckovic/cryptolang/internal/analyst"
	"github.com/google/uuid"
)

type DetectRequest struct {
	Text string `json:"text"`
}

// DetectResponse flattens an analyst.Report. Detected, Key and Plaintext are
// only set when Status is "found".
type DetectResponse struct {
	ID         uuid.UUID           `json:"id"`
	Status     analyst.Status      `json:"status"`
	Detected   string              `json:"detected,omitempty"`
	Key        *int                `json:"key,omitempty"`
	Confidence float64             `json:"confidence"`
	Plaintext  string              `json:"plaintext,omitempty"`
	Message    string              `json:"message"`
	Candidates []analyst.Candidate `json:"candidates"`
}

func NewDetectResponse(id uuid.UUID, r *analyst.Report) *DetectResponse {
	resp := &DetectResponse{
		ID:         id,
		Status:     r.Status,
		Confidence: r.Confidence(),
		Message:    r.String(),
		Candidates: analyst.Rank(r.Candidates),
	}

	if r.Best != nil {
		key := r.Best.Parameter
		resp.Detected = r.Best.Label
		resp.Key = &key
		resp.Plaintext = r.Best.Plaintext
	}

	return resp
}
