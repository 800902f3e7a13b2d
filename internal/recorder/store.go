package recorder

import (
	"github.com/piwi3910/LightLine/internal/engine"
	"github.com/piwi3910/LightLine/internal/model"
)

// Store holds the committed paths. Paths can only be appended with Commit
// or removed all at once with Clear. Points are copied on the way in and
// out, so no caller shares a backing array with the store.
type Store struct {
	paths []model.Path
}

func NewStore() *Store {
	return &Store{paths: []model.Path{}}
}

// Commit appends a path. Paths with fewer than two points are refused.
func (s *Store) Commit(p model.Path) bool {
	if len(p.Points) < 2 {
		return false
	}
	s.paths = append(s.paths, clonePath(p))
	return true
}

func clonePath(p model.Path) model.Path {
	pts := make([]model.Point, len(p.Points))
	copy(pts, p.Points)
	p.Points = pts
	return p
}

// Clear removes every committed path.
func (s *Store) Clear() {
	s.paths = []model.Path{}
}

// Paths returns a copy of the committed paths in commit order.
func (s *Store) Paths() []model.Path {
	out := make([]model.Path, len(s.paths))
	for i, p := range s.paths {
		out[i] = clonePath(p)
	}
	return out
}

func (s *Store) Len() int {
	return len(s.paths)
}

// PathsForSide returns the committed paths traced for one side.
func (s *Store) PathsForSide(side model.Side) []model.Path {
	var out []model.Path
	for _, p := range s.paths {
		if p.Side == side {
			out = append(out, clonePath(p))
		}
	}
	return out
}

// Totals sums real-world lengths per side at the given scale.
func (s *Store) Totals(scaleFactor float64) model.SideTotals {
	var t model.SideTotals
	for _, p := range s.paths {
		t.Add(p.Side, engine.PathLength(p.Points, scaleFactor))
	}
	return t
}
