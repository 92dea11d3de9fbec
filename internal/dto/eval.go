package dto

import (
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/google/uuid"
)

type EvalRequest struct {
	Source string `json:"source"`
}

type EvalResponse struct {
	ID     uuid.UUID          `json:"id"`
	Kind   domain.CommandType `json:"kind"`
	Output string             `json:"output"`
	Report *DetectResponse    `json:"report,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
	Title string `json:"title,omitempty"`
}
