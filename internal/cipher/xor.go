package cipher

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/cryptolang/internal/apperr"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
)

// XOR xors every code point of text with key. It is its own inverse.
func XOR(text string, key int64) (string, error) {
	var b strings.Builder
	b.Grow(len(text))
	for _, ch := range text {
		v := int64(ch) ^ key
		if v < 0 || v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
			return "", apperr.NewEncoding(fmt.Sprintf("xor key %d maps %q outside valid unicode code points", key, ch), nil)
		}
		b.WriteRune(rune(v))
	}
	return b.String(), nil
}

type XOROperation struct {
	BaseOperation
}

func NewXOROperation() *XOROperation {
	return &XOROperation{
		BaseOperation: BaseOperation{
			MethodValue:      domain.MethodXOR,
			DescriptionValue: "Xor each character code with a number",
			KeyHintValue:     "number (e.g. 123)",
		},
	}
}

// Apply ignores verb: both directions are the same operation.
func (o *XOROperation) Apply(text string, key domain.Key, _ domain.Verb) (string, error) {
	if key.Kind != domain.KeyInt {
		return "", apperr.NewType("xor key must be a number")
	}
	return XOR(text, key.Int)
}
