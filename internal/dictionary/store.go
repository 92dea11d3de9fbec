package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
)

var ErrAlreadyLoaded = errors.New("dictionary store already loaded")

// Store holds per-language word sets. It is written once by Load and read-only
// afterwards; lookups before the load completes report unknown.
type Store struct {
	started atomic.Bool
	ready   atomic.Bool
	done    chan struct{}

	words map[domain.Language]map[string]struct{}

	mu     sync.RWMutex
	status string
	err    error
}

func NewStore() *Store {
	return &Store{
		done:   make(chan struct{}),
		status: "dictionaries not loaded",
	}
}

// NewStaticStore returns a store already loaded with words.
func NewStaticStore(words Words) *Store {
	s := NewStore()
	_ = s.Load(context.Background(), NewStaticLoader(words))
	return s
}

// Load populates the store from loader. Only the first call does any work.
func (s *Store) Load(ctx context.Context, loader Loader) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyLoaded
	}
	defer close(s.done)

	s.setStatus("loading dictionaries...", nil)
	start := time.Now()

	words, err := loader.Load(ctx)
	if err != nil {
		err = fmt.Errorf("load dictionaries: %w", err)
		s.setStatus("failed to load dictionaries: "+err.Error(), err)
		slog.Error("Failed to load dictionaries", "error", err)
		return err
	}

	sets := make(map[domain.Language]map[string]struct{}, len(words))
	total := 0
	for lang, list := range words {
		set := make(map[string]struct{}, len(list))
		for _, w := range list {
			if n := normalize(w); n != "" {
				set[n] = struct{}{}
			}
		}
		sets[lang] = set
		total += len(set)
		slog.Info("Dictionary loaded", "language", lang, "words", len(set))
	}

	s.words = sets
	s.setStatus(fmt.Sprintf("dictionaries ready: %d words", total), nil)
	s.ready.Store(true)

	slog.Info("Dictionaries ready", "languages", len(sets), "words", total, "took", time.Since(start))
	return nil
}

// LoadAsync runs Load in a background goroutine and returns immediately.
func (s *Store) LoadAsync(ctx context.Context, loader Loader) {
	go func() {
		_ = s.Load(ctx, loader)
	}()
}

func (s *Store) Ready() bool {
	return s.ready.Load()
}

// Done is closed once a load attempt has finished, successfully or not.
func (s *Store) Done() <-chan struct{} {
	return s.done
}

// WaitReady blocks until the load finishes or ctx is done.
func (s *Store) WaitReady(ctx context.Context) error {
	select {
	case <-s.done:
		return s.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) IsKnownWord(word string, lang domain.Language) bool {
	if !s.Ready() {
		return false
	}
	w := normalize(word)
	if lang != "" {
		_, ok := s.words[lang][w]
		return ok
	}
	for _, set := range s.words {
		if _, ok := set[w]; ok {
			return true
		}
	}
	return false
}

// Languages lists the loaded languages.
func (s *Store) Languages() []domain.Language {
	if !s.Ready() {
		return nil
	}
	langs := make([]domain.Language, 0, len(s.words))
	for _, l := range domain.DefaultLanguages {
		if _, ok := s.words[l]; ok {
			langs = append(langs, l)
		}
	}
	return langs
}

// Size returns the number of distinct words loaded for lang.
func (s *Store) Size(lang domain.Language) int {
	if !s.Ready() {
		return 0
	}
	return len(s.words[lang])
}

func (s *Store) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store) setStatus(status string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.err = err
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
