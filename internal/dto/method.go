package dto

import "github.com/DjordjeVuckovic/cryptolang/internal/domain"

type MethodResponse struct {
	Method      domain.Method `json:"method"`
	Description string        `json:"description"`
	KeyHint     string        `json:"keyHint"`
}

type MethodsResponse struct {
	Methods []MethodResponse `json:"methods"`
}
