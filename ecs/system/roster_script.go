package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/dungeonroom/prefabs"
)

var ErrInvalidRoster = errors.New("roster: invalid script result")

// RosterEntry is one enemy placement produced for a room load.
type RosterEntry struct {
	Kind string
	X, Y float64
}

// RosterScript builds rosters from a tengo script. The script sees the room
// size, margin and load count as globals and must define a `roster` array
// of {kind, x, y} maps.
type RosterScript struct {
	path     string
	compiled *tengo.Compiled
}

// LoadRosterScript compiles the script at path (relative to the prefab
// scripts directory).
func LoadRosterScript(path string) (*RosterScript, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("room_width", 0.0)
	_ = script.Add("room_height", 0.0)
	_ = script.Add("margin", 0.0)
	_ = script.Add("loads", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("roster: compile %s: %w", path, err)
	}
	return &RosterScript{path: path, compiled: compiled}, nil
}

func (r *RosterScript) Path() string { return r.path }

// Run evaluates the script for a room and the number of earlier loads.
func (r *RosterScript) Run(room prefabs.RoomSpec, loads int) ([]RosterEntry, error) {
	if r == nil || r.compiled == nil {
		return nil, fmt.Errorf("roster: nil script")
	}
	if err := r.compiled.Set("room_width", room.Width); err != nil {
		return nil, err
	}
	if err := r.compiled.Set("room_height", room.Height); err != nil {
		return nil, err
	}
	if err := r.compiled.Set("margin", room.Margin); err != nil {
		return nil, err
	}
	if err := r.compiled.Set("loads", loads); err != nil {
		return nil, err
	}
	if err := r.compiled.Run(); err != nil {
		return nil, fmt.Errorf("roster: run %s: %w", r.path, err)
	}
	if !r.compiled.IsDefined("roster") {
		return nil, fmt.Errorf("%w: %s does not define roster", ErrInvalidRoster, r.path)
	}

	items, ok := r.compiled.Get("roster").Value().([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: roster is not an array", ErrInvalidRoster)
	}
	out := make([]RosterEntry, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: entry %d is not a map", ErrInvalidRoster, i)
		}
		kind, _ := m["kind"].(string)
		x, okX := toFloat(m["x"])
		y, okY := toFloat(m["y"])
		if strings.TrimSpace(kind) == "" || !okX || !okY {
			return nil, fmt.Errorf("%w: entry %d needs kind, x and y", ErrInvalidRoster, i)
		}
		out = append(out, RosterEntry{Kind: kind, X: x, Y: y})
	}
	return out, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func staticRoster(room prefabs.RoomSpec) []RosterEntry {
	out := make([]RosterEntry, 0, len(room.Roster))
	for _, r := range room.Roster {
		out = append(out, RosterEntry{Kind: r.Kind, X: r.X, Y: r.Y})
	}
	return out
}
