package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mcq-trainer/internal/domain"
)

const (
	resultsFile = "results.json"
	themeFile   = "theme"
)

// Store persists the results blob and the theme preference as two
// independent files in a state directory, mirroring the two storage keys
// of the original design: clobbering one never touches the other.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) LoadResults(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, resultsFile))
	if os.IsNotExist(err) {
		return nil, domain.ErrResultsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	return data, nil
}

func (s *Store) SaveResults(_ context.Context, data []byte) error {
	return s.writeAtomic(resultsFile, data)
}

func (s *Store) LoadTheme(_ context.Context) (domain.Theme, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, themeFile))
	if os.IsNotExist(err) {
		return "", domain.ErrThemeNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read theme: %w", err)
	}
	return domain.Theme(strings.TrimSpace(string(data))), nil
}

func (s *Store) SaveTheme(_ context.Context, theme domain.Theme) error {
	return s.writeAtomic(themeFile, []byte(theme))
}

// writeAtomic writes via a temp file and rename so a crash mid-write
// leaves the previous blob intact.
func (s *Store) writeAtomic(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
