package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"mcq-trainer/internal/domain"
)

// Loader fetches and normalizes question-bank content from a backing
// source (static map, JSON file, database).
type Loader interface {
	LoadBank(ctx context.Context, bankID string) ([]domain.Question, error)
}

// StaticLoader is a simple loader backed by an in-memory map (useful for
// tests/demos).
type StaticLoader struct {
	banks map[string][]domain.Question
}

func NewStaticLoader(banks map[string][]domain.Question) *StaticLoader {
	return &StaticLoader{banks: banks}
}

func (l *StaticLoader) LoadBank(_ context.Context, bankID string) ([]domain.Question, error) {
	if questions, ok := l.banks[bankID]; ok {
		return questions, nil
	}
	return nil, domain.ErrBankNotFound
}

// FileLoader reads a `{questions: [...]}` JSON feed from disk and runs
// every record through the normalizer. The bank id is ignored: a file is
// a single feed.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) LoadBank(_ context.Context, _ string) ([]domain.Question, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrBankNotFound
		}
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse bank file: %w", err)
	}
	return NormalizeFeed(raw), nil
}
