/*
Package highscore
File: store.go
Description:
    The persisted high-score table. Finished games append a GameResult record
    to a YAML file; records are never mutated afterwards. A missing file is an
    empty table, not an error.
*/

package highscore

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/seatrader/sea-trader/internal/game"
)

// Record is one persisted game result. Field names on disk are stable.
type Record struct {
	ID                string    `yaml:"id"`
	Name              string    `yaml:"name"`
	CoinsEarned       int       `yaml:"coins_earned"`
	AmountOfTradeDays int       `yaml:"amount_of_trade_days"`
	GameDatetime      time.Time `yaml:"game_datetime"`
}

// Store reads and appends high-score records at one file path.
type Store struct {
	path string
}

// NewStore points a store at the high-score file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns every persisted record. A missing file yields an empty table.
func (s *Store) Load() ([]Record, error) {
	f, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var records []Record
	if err := yaml.Unmarshal(f, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Append persists one finished game and returns the stored record with its
// generated identifier.
func (s *Store) Append(result game.GameResult) (Record, error) {
	records, err := s.Load()
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:                uuid.NewString(),
		Name:              result.Name,
		CoinsEarned:       result.CoinsEarned,
		AmountOfTradeDays: result.AmountOfTradeDays,
		GameDatetime:      result.GameDatetime,
	}
	records = append(records, rec)

	out, err := yaml.Marshal(records)
	if err != nil {
		return Record{}, err
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// OrderedByScore returns a copy of records sorted by coins earned, best first.
func OrderedByScore(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CoinsEarned > out[j].CoinsEarned
	})
	return out
}

// OrderedByDate returns a copy of records sorted by game time, newest first.
func OrderedByDate(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GameDatetime.After(out[j].GameDatetime)
	})
	return out
}
