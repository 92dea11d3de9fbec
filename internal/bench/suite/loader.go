package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/cryptolang/internal/analyst"
	"github.com/DjordjeVuckovic/cryptolang/internal/cipher"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("case %q: %w", c.ID, err)
		}
	}

	return &s, nil
}

func (c *Case) validate() error {
	switch {
	case c.Ciphertext != "" && c.Encrypt != nil:
		return fmt.Errorf("set either ciphertext or encrypt, not both")
	case c.Ciphertext == "" && c.Encrypt == nil:
		return fmt.Errorf("missing ciphertext or encrypt")
	case c.Encrypt != nil && c.Plaintext == "":
		return fmt.Errorf("encrypt requires plaintext")
	case c.Ciphertext != "" && c.Expect == nil:
		return fmt.Errorf("ciphertext cases need an expect block")
	case c.Encrypt != nil && c.Expect == nil && !derivable(c.Encrypt.Method):
		return fmt.Errorf("method %s cannot be detected, add an expect block", c.Encrypt.Method)
	}

	if c.Expect != nil {
		switch c.Expect.Status {
		case analyst.StatusFound, analyst.StatusNoMatch:
		default:
			return fmt.Errorf("expect.status must be %q or %q, got %q", analyst.StatusFound, analyst.StatusNoMatch, c.Expect.Status)
		}
	}
	return nil
}

// Resolve returns the ciphertext to analyse and the expected outcome.
func (c *Case) Resolve(registry *cipher.Registry) (string, Expectation, error) {
	if c.Encrypt == nil {
		return c.Ciphertext, *c.Expect, nil
	}

	ciphertext, err := registry.Apply(c.Encrypt.Method, c.Plaintext, domain.IntKey(c.Encrypt.Key), domain.Encrypt)
	if err != nil {
		return "", Expectation{}, fmt.Errorf("encrypt plaintext: %w", err)
	}

	if c.Expect != nil {
		return ciphertext, *c.Expect, nil
	}

	key := 0
	if c.Encrypt.Method == domain.MethodCaesar {
		key = int(((c.Encrypt.Key % 26) + 26) % 26)
	}

	return ciphertext, Expectation{
		Status:    analyst.StatusFound,
		Detected:  string(c.Encrypt.Method),
		Key:       &key,
		Plaintext: c.Plaintext,
	}, nil
}
