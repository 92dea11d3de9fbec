package cipher

import (
	"strings"

	"github.com/DjordjeVuckovic/cryptolang/internal/apperr"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
)

// Caesar rotates every ASCII letter of text by shift positions.
func Caesar(text string, shift int64) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, ch := range text {
		b.WriteRune(rotate(ch, shift))
	}
	return b.String()
}

type CaesarOperation struct {
	BaseOperation
}

func NewCaesarOperation() *CaesarOperation {
	return &CaesarOperation{
		BaseOperation: BaseOperation{
			MethodValue:      domain.MethodCaesar,
			DescriptionValue: "Shift each letter by a fixed number of positions",
			KeyHintValue:     "number (e.g. 3)",
		},
	}
}

func (o *CaesarOperation) Apply(text string, key domain.Key, verb domain.Verb) (string, error) {
	if key.Kind != domain.KeyInt {
		return "", apperr.NewType("caesar key must be a number")
	}
	shift := key.Int % alphabetSize
	if verb == domain.Decrypt {
		shift = -shift
	}
	return Caesar(text, shift), nil
}
