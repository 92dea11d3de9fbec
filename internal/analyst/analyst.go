// Package analyst guesses how a ciphertext was produced by brute-forcing a small
// set of decodings and ranking them by how many dictionary words they contain.
package analyst

import (
	"math"
	"strings"
	"unicode"

	"github.com/DjordjeVuckovic/cryptolang/internal/cipher"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
)

const (
	// Base64Threshold is lower than CaesarThreshold: a clean structural decode is
	// stronger evidence than a lexically plausible shift.
	Base64Threshold = 20.0
	Base64Boost     = 10.0
	CaesarThreshold = 30.0
	MaxCaesarShift  = 25
	MaxScore        = 100.0
)

type Analyst struct {
	oracle    dictionary.Oracle
	languages []domain.Language
}

type Option func(*Analyst)

// WithLanguages restricts scoring to the given dictionaries.
func WithLanguages(langs ...domain.Language) Option {
	return func(a *Analyst) {
		a.languages = langs
	}
}

func New(oracle dictionary.Oracle, opts ...Option) *Analyst {
	a := &Analyst{
		oracle:    oracle,
		languages: domain.DefaultLanguages,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ready reports whether the dictionary behind the analyst is loaded.
func (a *Analyst) Ready() bool {
	return a.oracle != nil && a.oracle.Ready()
}

// Detect tries a Base64 decode and every Caesar shift from 1 to MaxCaesarShift and
// reports the best candidate. It never blocks on the dictionary: when it is not
// loaded yet the report has StatusNotReady.
func (a *Analyst) Detect(ciphertext string) *Report {
	if !a.Ready() {
		return &Report{Status: StatusNotReady}
	}

	var candidates []Candidate

	if decoded, err := cipher.Base64Decode(ciphertext); err == nil && isPrintableText(decoded) {
		if score := a.Score(decoded); score > Base64Threshold {
			candidates = append(candidates, Candidate{
				Score:     math.Min(score+Base64Boost, MaxScore),
				Label:     LabelBase64,
				Parameter: 0,
				Plaintext: decoded,
			})
		}
	}

	for k := 1; k <= MaxCaesarShift; k++ {
		decoded := cipher.Caesar(ciphertext, -int64(k))
		if score := a.Score(decoded); score > CaesarThreshold {
			candidates = append(candidates, Candidate{
				Score:     score,
				Label:     LabelCaesar,
				Parameter: k,
				Plaintext: decoded,
			})
		}
	}

	return newReport(candidates)
}

func newReport(candidates []Candidate) *Report {
	best, ok := SelectBest(candidates)
	if !ok {
		return &Report{Status: StatusNoMatch}
	}
	return &Report{
		Status:     StatusFound,
		Best:       &best,
		Candidates: Rank(candidates),
	}
}

// Score is the percentage of whitespace-separated words found in any configured
// dictionary. Words are stripped to their letters and lower-cased; a word with no
// letters never matches but still counts toward the total.
func (a *Analyst) Score(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	valid := 0
	for _, w := range words {
		clean := strings.ToLower(strings.Map(keepLetter, w))
		if clean == "" {
			continue
		}
		if a.isKnown(clean) {
			valid++
		}
	}

	return float64(valid) / float64(len(words)) * 100
}

func (a *Analyst) isKnown(word string) bool {
	if a.oracle == nil {
		return false
	}
	if len(a.languages) == 0 {
		return a.oracle.IsKnownWord(word, "")
	}
	for _, lang := range a.languages {
		if a.oracle.IsKnownWord(word, lang) {
			return true
		}
	}
	return false
}

func keepLetter(r rune) rune {
	if unicode.IsLetter(r) {
		return r
	}
	return -1
}

func isPrintableText(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
