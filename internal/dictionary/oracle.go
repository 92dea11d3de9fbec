package dictionary

import "github.com/DjordjeVuckovic/cryptolang/internal/domain"

// Oracle answers whether a token is a known word. Implementations must be safe
// for concurrent reads once Ready reports true.
type Oracle interface {
	// Ready reports whether the word lists are loaded. It never blocks.
	Ready() bool

	// IsKnownWord looks word up in lang, or in every loaded language when lang is empty.
	IsKnownWord(word string, lang domain.Language) bool
}
