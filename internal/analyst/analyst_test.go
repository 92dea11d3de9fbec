package analyst

import (
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOracle struct {
	ready bool
	words map[domain.Language]map[string]bool
}

func newFakeOracle(pt, en []string) *fakeOracle {
	o := &fakeOracle{
		ready: true,
		words: map[domain.Language]map[string]bool{
			domain.LanguagePortuguese: {},
			domain.LanguageEnglish:    {},
		},
	}
	for _, w := range pt {
		o.words[domain.LanguagePortuguese][w] = true
	}
	for _, w := range en {
		o.words[domain.LanguageEnglish][w] = true
	}
	return o
}

func (o *fakeOracle) Ready() bool {
	return o.ready
}

func (o *fakeOracle) IsKnownWord(word string, lang domain.Language) bool {
	if lang == "" {
		for _, set := range o.words {
			if set[word] {
				return true
			}
		}
		return false
	}
	return o.words[lang][word]
}

func TestAnalyst_Score(t *testing.T) {
	a := New(newFakeOracle([]string{"ola", "mundo", "ação"}, []string{"hello", "world"}))

	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{name: "empty", text: "", expected: 0},
		{name: "only whitespace", text: "   \n\t", expected: 0},
		{name: "all words known", text: "Ola mundo hello world", expected: 100},
		{name: "punctuation stripped", text: "Hello, world!", expected: 100},
		{name: "accented words", text: "ação", expected: 100},
		{name: "either language counts", text: "ola world", expected: 100},
		{name: "half known", text: "ola xyz", expected: 50},
		{name: "symbol-only word counts in total", text: "ola 123 ---", expected: 100.0 / 3},
		{name: "nothing known", text: "qwx zzv", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, a.Score(tt.text), 1e-9)
		})
	}
}

func TestAnalyst_Score_WithLanguages(t *testing.T) {
	oracle := newFakeOracle([]string{"ola"}, []string{"hello"})

	assert.Equal(t, 50.0, New(oracle, WithLanguages(domain.LanguageEnglish)).Score("ola hello"))
	assert.Equal(t, 100.0, New(oracle, WithLanguages()).Score("ola hello"))
}

func TestAnalyst_Detect_NotReady(t *testing.T) {
	oracle := newFakeOracle([]string{"ola"}, nil)
	oracle.ready = false

	report := New(oracle).Detect("Rod")

	assert.Equal(t, StatusNotReady, report.Status)
	assert.Nil(t, report.Best)
	assert.Contains(t, report.String(), "try again shortly")
}

func TestAnalyst_Detect_NilOracle(t *testing.T) {
	report := New(nil).Detect("Rod")

	assert.Equal(t, StatusNotReady, report.Status)
	assert.Equal(t, 0.0, New(nil).Score("ola"))
}

func TestAnalyst_Detect_Caesar(t *testing.T) {
	a := New(newFakeOracle([]string{"ola", "mundo"}, nil))

	report := a.Detect("Rod Pxqgr")

	require.Equal(t, StatusFound, report.Status)
	require.NotNil(t, report.Best)
	assert.Equal(t, LabelCaesar, report.Best.Label)
	assert.Equal(t, 3, report.Best.Parameter)
	assert.Equal(t, "Ola Mundo", report.Best.Plaintext)
	assert.Equal(t, 100.0, report.Confidence())
	assert.Equal(t,
		"DETECTED: CESAR\nKEY: 3\nCONFIDENCE: 100.0%\n----------------------\nPLAINTEXT: Ola Mundo",
		report.String())
}

func TestAnalyst_Detect_Base64(t *testing.T) {
	a := New(newFakeOracle([]string{"ola", "mundo"}, nil))

	report := a.Detect("T2xhIE11bmRv")

	require.Equal(t, StatusFound, report.Status)
	assert.Equal(t, LabelBase64, report.Best.Label)
	assert.Equal(t, 0, report.Best.Parameter)
	assert.Equal(t, "Ola Mundo", report.Best.Plaintext)
	assert.Equal(t, MaxScore, report.Best.Score)
}

func TestAnalyst_Detect_Base64ThresholdAndBoost(t *testing.T) {
	// "ola xx yy zz": one of four words known
	a := New(newFakeOracle([]string{"ola"}, nil))

	report := a.Detect("b2xhIHh4IHl5IHp6")

	require.Equal(t, StatusFound, report.Status)
	assert.Equal(t, LabelBase64, report.Best.Label)
	assert.Equal(t, 35.0, report.Best.Score)
	assert.Equal(t, "CONFIDENCE: 35.0%", strings.Split(report.String(), "\n")[2])
}

func TestAnalyst_Detect_CaesarBeatsWeakBase64(t *testing.T) {
	// shifting "b2xhIHh4IHl5IHp6" back by 7 yields the single word "uqabaabaebai"
	a := New(newFakeOracle([]string{"ola"}, []string{"uqabaabaebai"}))

	report := a.Detect("b2xhIHh4IHl5IHp6")

	require.Equal(t, StatusFound, report.Status)
	assert.Equal(t, LabelCaesar, report.Best.Label)
	assert.Equal(t, 7, report.Best.Parameter)
	require.Len(t, report.Candidates, 2)
	assert.Equal(t, LabelCaesar, report.Candidates[0].Label)
	assert.Equal(t, LabelBase64, report.Candidates[1].Label)
}

func TestAnalyst_Detect_TieGoesToBase64(t *testing.T) {
	// "b2xh" decodes to "ola"; shifting it back by 7 gives "u2qa"
	a := New(newFakeOracle([]string{"ola"}, []string{"uqa"}))

	report := a.Detect("b2xh")

	require.Equal(t, StatusFound, report.Status)
	assert.Equal(t, LabelBase64, report.Best.Label)
	assert.Equal(t, MaxScore, report.Best.Score)
}

func TestAnalyst_Detect_BelowThresholds(t *testing.T) {
	// shift 3 recovers "ola", but one word in four stays under the Caesar threshold
	a := New(newFakeOracle([]string{"ola"}, nil))

	report := a.Detect("Rod Pxq Abc Def")

	assert.Equal(t, StatusNoMatch, report.Status)
	assert.Nil(t, report.Best)
	assert.Equal(t, "Result: no pattern could be identified automatically.", report.String())
}

func TestAnalyst_Detect_EmptyInput(t *testing.T) {
	report := New(newFakeOracle([]string{"ola"}, nil)).Detect("")

	assert.Equal(t, StatusNoMatch, report.Status)
}

func TestSelectBest(t *testing.T) {
	t.Run("higher raw score wins", func(t *testing.T) {
		candidates := []Candidate{
			{Score: 25 + Base64Boost, Label: LabelBase64},
			{Score: 40, Label: LabelCaesar, Parameter: 7},
		}

		best, ok := SelectBest(candidates)

		require.True(t, ok)
		assert.Equal(t, LabelCaesar, best.Label)
		assert.Equal(t, 7, best.Parameter)
	})

	t.Run("ties keep recording order", func(t *testing.T) {
		candidates := []Candidate{
			{Score: 50, Label: LabelCaesar, Parameter: 4},
			{Score: 50, Label: LabelCaesar, Parameter: 9},
		}

		best, ok := SelectBest(candidates)

		require.True(t, ok)
		assert.Equal(t, 4, best.Parameter)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := SelectBest(nil)
		assert.False(t, ok)
	})
}

func TestRank_IsStable(t *testing.T) {
	candidates := []Candidate{
		{Score: 40, Parameter: 1},
		{Score: 60, Parameter: 2},
		{Score: 40, Parameter: 3},
	}

	ranked := Rank(candidates)

	assert.Equal(t, []int{2, 1, 3}, []int{ranked[0].Parameter, ranked[1].Parameter, ranked[2].Parameter})
	assert.Equal(t, 1, candidates[0].Parameter, "input must not be reordered")
}
