package analyst

import "sort"

const (
	LabelBase64 = "BASE64"
	LabelCaesar = "CESAR"
)

// Candidate is one hypothesized decoding of a ciphertext.
type Candidate struct {
	Score     float64 `json:"score"`
	Label     string  `json:"label"`
	Parameter int     `json:"parameter"`
	Plaintext string  `json:"plaintext"`
}

// SelectBest returns the highest-scoring candidate. Ties go to the candidate
// recorded first.
func SelectBest(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best, true
}

// Rank returns a copy of candidates ordered by score, highest first, keeping
// recording order among equal scores.
func Rank(candidates []Candidate) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
