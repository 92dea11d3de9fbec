package token

// Tokenizer turns one statement into a token stream ending in a single EOF.
type Tokenizer interface {
	Tokenize(input string) ([]Token, error)
}

var _ Tokenizer = (*CommandTokenizer)(nil)

// Tokenize scans input with a fresh CommandTokenizer, so it is safe for concurrent use.
func Tokenize(input string) ([]Token, error) {
	return NewCommandTokenizer().Tokenize(input)
}
