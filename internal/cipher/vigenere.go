package cipher

import (
	"strings"

	"github.com/DjordjeVuckovic/cryptolang/internal/apperr"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
)

// Vigenere shifts each letter of text by the position of the matching key letter
// in the alphabet. Only letters consume key letters; the case of text is kept.
func Vigenere(text, key string, verb domain.Verb) (string, error) {
	k := []rune(strings.ToUpper(key))
	if len(k) == 0 {
		return "", apperr.NewType("vigenere key must not be empty")
	}

	var b strings.Builder
	b.Grow(len(text))
	idx := 0
	for _, ch := range text {
		if !isLetter(ch) {
			b.WriteRune(ch)
			continue
		}
		shift := int64(k[idx%len(k)] - 'A')
		if verb == domain.Decrypt {
			shift = -shift
		}
		b.WriteRune(rotate(ch, shift))
		idx++
	}
	return b.String(), nil
}

type VigenereOperation struct {
	BaseOperation
}

func NewVigenereOperation() *VigenereOperation {
	return &VigenereOperation{
		BaseOperation: BaseOperation{
			MethodValue:      domain.MethodVigenere,
			DescriptionValue: "Polyalphabetic shift driven by a repeating key word",
			KeyHintValue:     `text (e.g. "ABC")`,
		},
	}
}

func (o *VigenereOperation) Apply(text string, key domain.Key, verb domain.Verb) (string, error) {
	if key.Kind != domain.KeyText {
		return "", apperr.NewType("vigenere key must be text")
	}
	return Vigenere(text, key.Text, verb)
}
