package cipher

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/cryptolang/internal/apperr"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
)

func Base64Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Base64Decode decodes standard, padded Base64 and requires the result to be UTF-8 text.
func Base64Decode(text string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return "", apperr.NewEncoding("text is not valid base64", err)
	}
	if !utf8.Valid(raw) {
		return "", apperr.NewEncoding("decoded base64 is not valid UTF-8 text", nil)
	}
	return string(raw), nil
}

type Base64Operation struct {
	BaseOperation
}

func NewBase64Operation() *Base64Operation {
	return &Base64Operation{
		BaseOperation: BaseOperation{
			MethodValue:      domain.MethodBase64,
			DescriptionValue: "Standard Base64 encoding of the UTF-8 bytes",
			KeyHintValue:     "ignored (use 0)",
		},
	}
}

// Apply accepts any key kind; the key plays no part in the encoding.
func (o *Base64Operation) Apply(text string, _ domain.Key, verb domain.Verb) (string, error) {
	if verb == domain.Encrypt {
		return Base64Encode(text), nil
	}
	return Base64Decode(text)
}
