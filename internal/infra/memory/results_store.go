package memory

import (
	"context"
	"sync"

	"mcq-trainer/internal/domain"
)

// ResultsStore is an in-memory implementation of app.ResultsRepository,
// useful for tests and throwaway runs.
type ResultsStore struct {
	mu         sync.RWMutex
	results    []byte
	hasResults bool
	theme      domain.Theme
	hasTheme   bool
}

func NewResultsStore() *ResultsStore {
	return &ResultsStore{}
}

func (s *ResultsStore) LoadResults(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasResults {
		return nil, domain.ErrResultsNotFound
	}
	data := make([]byte, len(s.results))
	copy(data, s.results)
	return data, nil
}

func (s *ResultsStore) SaveResults(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = make([]byte, len(data))
	copy(s.results, data)
	s.hasResults = true
	return nil
}

func (s *ResultsStore) LoadTheme(_ context.Context) (domain.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasTheme {
		return "", domain.ErrThemeNotFound
	}
	return s.theme, nil
}

func (s *ResultsStore) SaveTheme(_ context.Context, theme domain.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	s.hasTheme = true
	return nil
}
