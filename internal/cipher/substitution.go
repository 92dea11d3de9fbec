package cipher

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/DjordjeVuckovic/cryptolang/internal/apperr"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
)

// Substitute maps the standard alphabet onto key when encrypting and key back
// onto the alphabet when decrypting. key must be a permutation of A-Z; its case
// is irrelevant and the case of text is preserved.
func Substitute(text, key string, verb domain.Verb) (string, error) {
	table, err := substitutionTable(key, verb)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, ch := range text {
		base, ok := caseBase(ch)
		if !ok {
			b.WriteRune(ch)
			continue
		}
		mapped := table[unicode.ToUpper(ch)-'A']
		if base == 'a' {
			mapped = unicode.ToLower(mapped)
		}
		b.WriteRune(mapped)
	}
	return b.String(), nil
}

// substitutionTable returns, for each upper-case letter index, its replacement.
func substitutionTable(key string, verb domain.Verb) ([alphabetSize]rune, error) {
	var table [alphabetSize]rune

	k := []rune(strings.ToUpper(key))
	if len(k) != alphabetSize {
		return table, apperr.NewType(fmt.Sprintf("substitution key must have exactly %d letters, got %d", alphabetSize, len(k)))
	}

	var seen [alphabetSize]bool
	for i, ch := range k {
		if ch < 'A' || ch > 'Z' || seen[ch-'A'] {
			return table, apperr.NewType("substitution key must be a permutation of the letters A-Z")
		}
		seen[ch-'A'] = true

		if verb == domain.Encrypt {
			table[i] = ch
		} else {
			table[ch-'A'] = 'A' + rune(i)
		}
	}
	return table, nil
}

type SubstitutionOperation struct {
	BaseOperation
}

func NewSubstitutionOperation() *SubstitutionOperation {
	return &SubstitutionOperation{
		BaseOperation: BaseOperation{
			MethodValue:      domain.MethodSubstitution,
			DescriptionValue: "Monoalphabetic substitution with a 26-letter key alphabet",
			KeyHintValue:     `text (26-letter alphabet, e.g. "QWERTYUIOPASDFGHJKLZXCVBNM")`,
		},
	}
}

func (o *SubstitutionOperation) Apply(text string, key domain.Key, verb domain.Verb) (string, error) {
	if key.Kind != domain.KeyText {
		return "", apperr.NewType("substitution key must be text")
	}
	return Substitute(text, key.Text, verb)
}
