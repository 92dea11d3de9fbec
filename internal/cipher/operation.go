package cipher

import "github.com/DjordjeVuckovic/cryptolang/internal/domain"

// Operation applies one cipher method in either direction.
type Operation interface {
	// Method returns the keyword this operation is registered under
	Method() domain.Method

	// Description returns a human-readable description
	Description() string

	// KeyHint describes the key the operation expects
	KeyHint() string

	// Apply transforms text with key in the direction given by verb
	Apply(text string, key domain.Key, verb domain.Verb) (string, error)
}

// BaseOperation provides the descriptive half of an Operation.
type BaseOperation struct {
	MethodValue      domain.Method
	DescriptionValue string
	KeyHintValue     string
}

func (b *BaseOperation) Method() domain.Method {
	return b.MethodValue
}

func (b *BaseOperation) Description() string {
	return b.DescriptionValue
}

func (b *BaseOperation) KeyHint() string {
	return b.KeyHintValue
}
