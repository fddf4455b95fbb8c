// Package score persists the high score as a small JSON file next to the
// program. Persistence is best effort: every failure degrades to "no high
// score" or "save skipped" rather than an error the player could see.
package score

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Filename is the high-score file, colocated with the working directory.
const Filename = "mouse_dash_highscore.json"

type record struct {
	HighScore int `json:"high_score"`
}

// Store reads and writes the persisted high score.
type Store struct {
	path string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, Filename)}
}

// Load returns the persisted high score. A missing file, unreadable file,
// malformed JSON, or wrong field type all read as zero.
func (s *Store) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0
	}
	if rec.HighScore < 0 {
		return 0
	}
	return rec.HighScore
}

// Save overwrites the high-score file. Failures are swallowed; the score is
// not safety-critical state and the run continues either way.
func (s *Store) Save(highScore int) {
	data, err := json.MarshalIndent(record{HighScore: highScore}, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o644)
}
