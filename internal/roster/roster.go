// Package roster serves the static player index used for search and for
// resolving player ids to names and teams. The backing file is re-read when
// its modification time changes, so a redeploy-free roster refresh is just a
// file swap.
package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/nbastables/stats-api/internal/namefix"
)

// SearchLimit caps the number of rows a search returns.
const SearchLimit = 20

// Player is one roster entry.
type Player struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	TeamID int    `json:"teamId"`
}

// Store loads and caches the roster file.
type Store struct {
	path string

	mu      sync.Mutex
	players []Player
	byID    map[int]Player
	modTime time.Time
}

// NewStore constructs a store reading from path. The file is loaded lazily
// on first use.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// All returns every roster entry.
func (s *Store) All() ([]Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reloadLocked(); err != nil {
		return nil, err
	}
	return s.players, nil
}

// ByID resolves a player id. The boolean reports whether the id is known.
func (s *Store) ByID(id int) (Player, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reloadLocked(); err != nil {
		return Player{}, false, err
	}
	p, ok := s.byID[id]
	return p, ok, nil
}

// Search returns players whose name contains the query, case-insensitively,
// capped at SearchLimit rows in roster order.
func (s *Store) Search(query string) ([]Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reloadLocked(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := make([]Player, 0, SearchLimit)
	for _, p := range s.players {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, p)
			if len(matches) == SearchLimit {
				break
			}
		}
	}
	return matches, nil
}

// reloadLocked re-reads the file when its mtime moved. Callers hold s.mu.
func (s *Store) reloadLocked() error {
	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("roster: %w", err)
	}
	if s.players != nil && info.ModTime().Equal(s.modTime) {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("roster: %w", err)
	}

	// The roster ships as positional triples: [id, name, teamId].
	var rows [][3]json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("roster: parse %s: %w", s.path, err)
	}

	players := make([]Player, 0, len(rows))
	byID := make(map[int]Player, len(rows))
	for i, row := range rows {
		var p Player
		if err := json.Unmarshal(row[0], &p.ID); err != nil {
			return fmt.Errorf("roster: row %d id: %w", i, err)
		}
		if err := json.Unmarshal(row[1], &p.Name); err != nil {
			return fmt.Errorf("roster: row %d name: %w", i, err)
		}
		if err := json.Unmarshal(row[2], &p.TeamID); err != nil {
			return fmt.Errorf("roster: row %d team: %w", i, err)
		}
		p.Name = namefix.Fix(p.Name)
		players = append(players, p)
		byID[p.ID] = p
	}

	s.players = players
	s.byID = byID
	s.modTime = info.ModTime()
	return nil
}
