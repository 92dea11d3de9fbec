package interpreter

import (
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/cryptolang/internal/analyst"
	"github.com/DjordjeVuckovic/cryptolang/internal/apperr"
	"github.com/DjordjeVuckovic/cryptolang/internal/cipher"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterpreter(opts ...Option) *Interpreter {
	store := dictionary.NewStaticStore(dictionary.Words{
		domain.LanguagePortuguese: {"ola", "mundo"},
	})
	return New(store, opts...)
}

func TestEval_Actions(t *testing.T) {
	interp := newTestInterpreter()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"caesar encrypt", `ENCRIPTAR "Ola Mundo" USANDO CESAR COM CHAVE 3`, "Rod Pxqgr"},
		{"caesar decrypt", `DESENCRIPTAR "Rod Pxqgr" USANDO CESAR COM CHAVE 3`, "Ola Mundo"},
		{"lowercase keywords", `encriptar "abc" usando cesar com chave 1`, "bcd"},
		{"vigenere", `ENCRIPTAR "attack at dawn" USANDO VIGENERE COM CHAVE "LEMON"`, "lxfopv ef rnhr"},
		{"xor", `ENCRIPTAR "A" USANDO XOR COM CHAVE 1`, "@"},
		{"base64 encrypt", `ENCRIPTAR "Ola Mundo" USANDO BASE64 COM CHAVE 0`, "T2xhIE11bmRv"},
		{"base64 decrypt", `DESENCRIPTAR "T2xhIE11bmRv" USANDO BASE64 COM CHAVE 0`, "Ola Mundo"},
		{"substitution", `ENCRIPTAR "Abc" USANDO SUBSTITUICAO COM CHAVE "QWERTYUIOPASDFGHJKLZXCVBNM"`, "Qwe"},
		{"trailing tokens ignored", `ENCRIPTAR "a" USANDO CESAR COM CHAVE 1 EXTRA`, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := interp.Eval(tt.source)

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Output)
			assert.Nil(t, result.Report)
			assert.Equal(t, domain.CommandAction, result.Command.Type())
		})
	}
}

func TestEval_ParsedCommand(t *testing.T) {
	result, err := newTestInterpreter().Eval(`ENCRIPTAR "Ola Mundo" USANDO CESAR COM CHAVE 3`)

	require.NoError(t, err)
	assert.Equal(t, domain.ActionCommand{
		Verb:   domain.Encrypt,
		Text:   "Ola Mundo",
		Method: domain.MethodCaesar,
		Key:    domain.IntKey(3),
	}, result.Command)
}

func TestEval_Detect(t *testing.T) {
	result, err := newTestInterpreter().Eval(`DETECTAR "Rod Pxqgr"`)

	require.NoError(t, err)
	require.NotNil(t, result.Report)
	assert.Equal(t, analyst.StatusFound, result.Report.Status)
	assert.Equal(t,
		"DETECTED: CESAR\nKEY: 3\nCONFIDENCE: 100.0%\n----------------------\nPLAINTEXT: Ola Mundo",
		result.Output)
}

func TestEval_DetectNotReady(t *testing.T) {
	interp := New(dictionary.NewStore())

	result, err := interp.Eval(`DETECTAR "Rod Pxqgr"`)

	require.NoError(t, err)
	assert.Equal(t, analyst.StatusNotReady, result.Report.Status)
	assert.Equal(t, "Dictionaries are still loading... try again shortly.", result.Output)
	assert.False(t, interp.Ready())
}

func TestEval_Errors(t *testing.T) {
	interp := newTestInterpreter()

	tests := []struct {
		name     string
		source   string
		wantKind apperr.Kind
		wantMsg  string
	}{
		{"lexical", `ENCRIPTAR "a" @`, apperr.KindLexical, "'@'"},
		{"unknown command", `APAGAR "a"`, apperr.KindSyntax, "unknown command"},
		{"missing text", `DETECTAR`, apperr.KindSyntax, "expected quoted text after DETECTAR"},
		{"invalid key", `ENCRIPTAR "a" USANDO CESAR COM CHAVE USANDO`, apperr.KindSyntax, "invalid key"},
		{"unknown method", `ENCRIPTAR "a" USANDO ROT13 COM CHAVE 1`, apperr.KindUnknownMethod, "unknown method 'ROT13'"},
		{"key type", `ENCRIPTAR "a" USANDO CESAR COM CHAVE "x"`, apperr.KindType, "caesar key must be a number"},
		{"substitution length", `ENCRIPTAR "a" USANDO SUBSTITUICAO COM CHAVE "ABC"`, apperr.KindType, "exactly 26 letters"},
		{"bad base64", `DESENCRIPTAR "***" USANDO BASE64 COM CHAVE 0`, apperr.KindEncoding, "not valid base64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := interp.Eval(tt.source)

			require.Error(t, err)
			assert.Nil(t, result)
			kind, ok := apperr.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, kind)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestEval_StrictTrailing(t *testing.T) {
	interp := newTestInterpreter(WithStrictTrailing())

	_, err := interp.Eval(`ENCRIPTAR "a" USANDO CESAR COM CHAVE 1 EXTRA`)

	require.Error(t, err)
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindSyntax, kind)

	result, err := interp.Eval(`ENCRIPTAR "a" USANDO CESAR COM CHAVE 1`)
	require.NoError(t, err)
	assert.Equal(t, "b", result.Output)
}

func TestEval_UnterminatedStringRunsToEnd(t *testing.T) {
	result, err := newTestInterpreter().Eval(`DETECTAR "Rod Pxqgr`)

	require.NoError(t, err)
	assert.Equal(t, domain.DetectCommand{Text: "Rod Pxqgr"}, result.Command)
}

type upperOperation struct {
	cipher.BaseOperation
}

func (*upperOperation) Apply(text string, _ domain.Key, _ domain.Verb) (string, error) {
	return "UPPER:" + text, nil
}

func TestWithRegistry(t *testing.T) {
	registry, err := cipher.NewRegistry(&upperOperation{cipher.BaseOperation{MethodValue: "UPPER"}})
	require.NoError(t, err)

	interp := newTestInterpreter(WithRegistry(registry))

	result, err := interp.Eval(`ENCRIPTAR "x" USANDO UPPER COM CHAVE 0`)
	require.NoError(t, err)
	assert.Equal(t, "UPPER:x", result.Output)

	_, err = interp.Eval(`ENCRIPTAR "x" USANDO CESAR COM CHAVE 0`)
	assert.Error(t, err)
	assert.Len(t, interp.Methods(), 1)
}

func TestExecute_UnsupportedCommand(t *testing.T) {
	_, err := newTestInterpreter().Execute(nil)

	assert.Error(t, err)
}

func TestEval_Concurrent(t *testing.T) {
	interp := newTestInterpreter()

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for n := 0; n < 50; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			source := `ENCRIPTAR "Ola Mundo" USANDO CESAR COM CHAVE 3`
			if n%2 == 0 {
				source = `DETECTAR "Rod Pxqgr"`
			}
			if _, err := interp.Eval(source); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParse(t *testing.T) {
	cmd, err := newTestInterpreter().Parse(`DETECTAR "abc" TRAILING`)

	require.NoError(t, err)
	assert.Equal(t, domain.DetectCommand{Text: "abc"}, cmd)
}
