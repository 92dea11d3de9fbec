package cipher

import (
	"testing"

	"github.com/DjordjeVuckovic/cryptolang/internal/apperr"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	ops := reg.List()
	require.Len(t, ops, len(domain.SupportedMethods))
	for i, m := range domain.SupportedMethods {
		assert.Equal(t, m, ops[i].Method())
		assert.NotEmpty(t, ops[i].Description())
		assert.NotEmpty(t, ops[i].KeyHint())
	}
}

func TestRegistry_Apply(t *testing.T) {
	reg := DefaultRegistry()

	out, err := reg.Apply(domain.MethodCaesar, "Ola Mundo", domain.IntKey(3), domain.Encrypt)
	require.NoError(t, err)
	assert.Equal(t, "Rod Pxqgr", out)
}

func TestRegistry_UnknownMethod(t *testing.T) {
	reg := DefaultRegistry()

	_, err := reg.Apply(domain.Method("ROT13"), "x", domain.IntKey(13), domain.Encrypt)

	assertKind(t, err, apperr.KindUnknownMethod)
	assert.Contains(t, err.Error(), "ROT13")
}

func TestNewRegistry_Rejects(t *testing.T) {
	_, err := NewRegistry(NewCaesarOperation(), NewCaesarOperation())
	assert.ErrorContains(t, err, "already registered")

	_, err = NewRegistry(nil)
	assert.ErrorContains(t, err, "nil operation")

	_, err = NewRegistry(&CaesarOperation{})
	assert.ErrorContains(t, err, "cannot be empty")
}
