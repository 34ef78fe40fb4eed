package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	darkModeKey = "prefs:darkMode"
	trendingKey = "prefs:trendingSearches"
)

// Trending search list bounds: at most trendingKeep terms are retained,
// and reads hand back at most trendingShow.
const (
	trendingKeep = 10
	trendingShow = 5
)

// SaveDarkMode persists the dark-mode flag.
func (s *Store) SaveDarkMode(enabled bool) error {
	if err := s.set([]byte(darkModeKey), enabled); err != nil {
		return fmt.Errorf("save dark mode: %w", err)
	}
	return nil
}

// LoadDarkMode returns the persisted dark-mode flag, defaulting to false
// when nothing is persisted yet.
func (s *Store) LoadDarkMode() (bool, error) {
	var enabled bool
	if err := s.get([]byte(darkModeKey), &enabled); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load dark mode: %w", err)
	}
	return enabled, nil
}

// RecordTrendingSearch moves term to the head of the most-recent list,
// deduplicating it and keeping at most trendingKeep entries.
func (s *Store) RecordTrendingSearch(term string) error {
	terms, err := s.loadTrending()
	if err != nil {
		return err
	}

	updated := make([]string, 0, len(terms)+1)
	updated = append(updated, term)
	for _, t := range terms {
		if t != term {
			updated = append(updated, t)
		}
	}
	if len(updated) > trendingKeep {
		updated = updated[:trendingKeep]
	}

	if err := s.set([]byte(trendingKey), updated); err != nil {
		return fmt.Errorf("save trending searches: %w", err)
	}
	return nil
}

// TrendingSearches returns the most recent search terms, newest first,
// capped at trendingShow entries.
func (s *Store) TrendingSearches() ([]string, error) {
	terms, err := s.loadTrending()
	if err != nil {
		return nil, err
	}
	if len(terms) > trendingShow {
		terms = terms[:trendingShow]
	}
	return terms, nil
}

func (s *Store) loadTrending() ([]string, error) {
	var terms []string
	if err := s.get([]byte(trendingKey), &terms); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load trending searches: %w", err)
	}
	return terms, nil
}
