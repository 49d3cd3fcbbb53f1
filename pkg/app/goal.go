package app

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"tableflip.dev/mindmap/pkg/codec"
	"tableflip.dev/mindmap/pkg/entry"
	"tableflip.dev/mindmap/pkg/filter"
	"tableflip.dev/mindmap/pkg/store"
)

// Goal asks for Target entries of Emotion within a week.
type Goal struct {
	Emotion string `json:"emotion" yaml:"emotion"`
	Target  int    `json:"target" yaml:"target"`
}

// GoalProgress is how far the last seven days got toward the goal.
type GoalProgress struct {
	Goal    Goal    `json:"goal" yaml:"goal"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
	Reached bool    `json:"reached" yaml:"reached"`
}

func (g Goal) validate() (Goal, error) {
	g.Emotion = strings.TrimSpace(g.Emotion)
	if g.Emotion == "" {
		return Goal{}, &entry.ValidationError{Field: "goal.emotion", Reason: "must not be empty"}
	}
	if g.Target < 1 {
		return Goal{}, &entry.ValidationError{Field: "goal.target", Reason: fmt.Sprintf("must be at least 1, got %d", g.Target)}
	}
	return g, nil
}

func decodeGoal(raw string) (Goal, error) {
	var g Goal
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		return Goal{}, &codec.DecodeError{Format: "json", Err: fmt.Errorf("goal: %w", err)}
	}
	g, err := g.validate()
	if err != nil {
		return Goal{}, &codec.DecodeError{Format: "json", Err: fmt.Errorf("goal: %w", err)}
	}
	return g, nil
}

// Goal returns the current goal, if one is set.
func (s *LogStore) Goal() (Goal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.goal == nil {
		return Goal{}, false
	}
	return *s.goal, true
}

// SetGoal validates and stores g, replacing any previous goal.
func (s *LogStore) SetGoal(g Goal) (Goal, error) {
	g, err := g.validate()
	if err != nil {
		return Goal{}, err
	}
	raw, err := json.Marshal(g)
	if err != nil {
		return Goal{}, fmt.Errorf("app: encode goal: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.goal = &g
	if err := s.persistence.Save(store.KeyGoal, string(raw)); err != nil {
		s.persistErr = &PersistenceError{Op: "save", Key: store.KeyGoal, Err: err}
		return g, s.persistErr
	}
	s.persistErr = nil
	return g, nil
}

// ClearGoal removes the goal.
func (s *LogStore) ClearGoal() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goal = nil
	if err := s.persistence.Remove(store.KeyGoal); err != nil {
		s.persistErr = &PersistenceError{Op: "remove", Key: store.KeyGoal, Err: err}
		return s.persistErr
	}
	s.persistErr = nil
	return nil
}

// GoalProgress counts entries from the seven days before now whose emotion
// matches the goal, ignoring case. The second result is false when no goal
// is set.
func (s *LogStore) GoalProgress(now time.Time) (GoalProgress, bool) {
	g, ok := s.Goal()
	if !ok {
		return GoalProgress{}, false
	}
	fold := cases.Fold()
	want := fold.String(g.Emotion)
	count := 0
	for _, e := range filter.TrailingWindow(s.Entries(), filter.Week, now) {
		if fold.String(e.Emotion) == want {
			count++
		}
	}
	pct := math.Min(100, float64(count)*100/float64(g.Target))
	return GoalProgress{
		Goal:    g,
		Count:   count,
		Percent: math.Round(pct*10) / 10,
		Reached: count >= g.Target,
	}, true
}
