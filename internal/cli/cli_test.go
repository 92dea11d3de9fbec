package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/cryptolang/internal/apperr"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/DjordjeVuckovic/cryptolang/internal/interpreter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, interactive bool, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := NewRootCommand(IO{
		In:         strings.NewReader(stdin),
		Out:        &out,
		Err:        &errOut,
		IsTerminal: func() bool { return interactive },
	})
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRun_Action(t *testing.T) {
	out, err := execute(t, "", false, "run", `ENCRIPTAR "Ola Mundo" USANDO CESAR COM CHAVE 3`)

	require.NoError(t, err)
	assert.Equal(t, "Rod Pxqgr\n", out)
}

func TestRun_JoinsArguments(t *testing.T) {
	out, err := execute(t, "", false, "run", "DESENCRIPTAR", `"Rod Pxqgr"`, "USANDO", "CESAR", "COM", "CHAVE", "3")

	require.NoError(t, err)
	assert.Equal(t, "Ola Mundo\n", out)
}

func TestRun_DetectWaitsForDictionaries(t *testing.T) {
	out, err := execute(t, "", false, "run", "--wait", "5s", `DETECTAR "Rod Pxqgr"`)

	require.NoError(t, err)
	assert.Contains(t, out, "DETECTED: CESAR")
	assert.Contains(t, out, "KEY: 3")
	assert.Contains(t, out, "PLAINTEXT: Ola Mundo")
}

func TestRun_Error(t *testing.T) {
	_, err := execute(t, "", false, "run", `ENCRIPTAR "a" USANDO ROT13 COM CHAVE 1`)

	require.Error(t, err)
	kind, ok := apperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindUnknownMethod, kind)
}

func TestRun_Strict(t *testing.T) {
	_, err := execute(t, "", false, "run", "--strict", `ENCRIPTAR "a" USANDO CESAR COM CHAVE 1 MAIS`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after end of command")
}

func TestRun_DictManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "words.txt"), []byte("segredo\n"), 0o644))
	manifest := filepath.Join(dir, "dictionary.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("languages:\n  - language: pt\n    files: [words.txt]\n"), 0o644))

	// "segredo" shifted by 1
	out, err := execute(t, "", false, "run", "--dict-manifest", manifest, `DETECTAR "tfhsfep"`)

	require.NoError(t, err)
	assert.Contains(t, out, "PLAINTEXT: segredo")
}

func TestRun_MissingManifest(t *testing.T) {
	_, err := execute(t, "", false, "run", "--dict-manifest", filepath.Join(t.TempDir(), "none.yaml"), `DETECTAR "x"`)

	assert.Error(t, err)
}

func TestRepl_Command(t *testing.T) {
	stdin := "ENCRIPTAR \"abc\" USANDO CESAR COM CHAVE 1\n\nENCRIPTAR @\nquit\nENCRIPTAR \"never\" USANDO CESAR COM CHAVE 1\n"

	out, err := execute(t, stdin, false, "repl")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "bcd", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "ERROR: invalid character '@'"))
	assert.NotContains(t, out, prompt)
}

func TestRepl_PromptOnTerminal(t *testing.T) {
	out, err := execute(t, "ENCRIPTAR \"a\" USANDO XOR COM CHAVE 1\n", true, "repl")

	require.NoError(t, err)
	assert.Equal(t, prompt+"`\n"+prompt+"\n", out)
}

func TestRepl_Detect(t *testing.T) {
	store := dictionary.NewStaticStore(dictionary.Words{domain.LanguagePortuguese: {"ola", "mundo"}})
	var out bytes.Buffer

	err := repl(interpreter.New(store), strings.NewReader("DETECTAR \"Rod Pxqgr\"\n"), &out, false)

	require.NoError(t, err)
	assert.Equal(t,
		"DETECTED: CESAR\nKEY: 3\nCONFIDENCE: 100.0%\n----------------------\nPLAINTEXT: Ola Mundo\n",
		out.String())
}
