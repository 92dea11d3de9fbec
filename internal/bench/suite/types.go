package suite

import (
	"github.com/DjordjeVuckovic/cryptolang/internal/analyst"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
)

// Suite is a set of detection cases with known answers.
type Suite struct {
	Name        string `yaml:"name" schema:"required"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Cases       []Case `yaml:"cases" schema:"required,minItems=1"`
}

// Case either names a ciphertext directly or derives it by encrypting Plaintext.
// Derived cases expect the analyst to recover the method, key and plaintext
// unless Expect overrides it.
type Case struct {
	ID          string       `yaml:"id" schema:"required"`
	Description string       `yaml:"description,omitempty"`
	Plaintext   string       `yaml:"plaintext,omitempty"`
	Encrypt     *EncryptSpec `yaml:"encrypt,omitempty"`
	Ciphertext  string       `yaml:"ciphertext,omitempty"`
	Expect      *Expectation `yaml:"expect,omitempty"`
}

type EncryptSpec struct {
	Method domain.Method `yaml:"method" schema:"required,enum=CESAR|VIGENERE|XOR|BASE64|SUBSTITUICAO"`
	Key    int64         `yaml:"key"`
}

type Expectation struct {
	Status    analyst.Status `yaml:"status" json:"status" schema:"required,enum=found|no_match"`
	Detected  string         `yaml:"detected,omitempty" json:"detected,omitempty"`
	Key       *int           `yaml:"key,omitempty" json:"key,omitempty"`
	Plaintext string         `yaml:"plaintext,omitempty" json:"plaintext,omitempty"`
}

// derivable reports whether the analyst can be expected to undo method on its own.
func derivable(m domain.Method) bool {
	return m == domain.MethodCaesar || m == domain.MethodBase64
}
