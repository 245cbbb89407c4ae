package game

import (
	"fmt"

	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/ecs/entity"
	"github.com/milk9111/dungeonroom/ecs/system"
	"github.com/milk9111/dungeonroom/engine"
	"gopkg.in/yaml.v3"
)

// Snapshot is a read-only debug view of the running room.
type Snapshot struct {
	Now         int64           `yaml:"now"`
	Seed        int64           `yaml:"seed"`
	Room        RoomSnapshot    `yaml:"room"`
	Player      PlayerSnapshot  `yaml:"player"`
	Coins       int             `yaml:"coins"`
	Enemies     []EnemySnapshot `yaml:"enemies"`
	Projectiles int             `yaml:"projectiles"`
	Obstacles   []PointSnapshot `yaml:"obstacles"`
	Stats       Stats           `yaml:"stats"`
}

type RoomSnapshot struct {
	ID     string `yaml:"id"`
	Active bool   `yaml:"active"`
	Loads  int    `yaml:"loads"`
	Door   string `yaml:"door"`
}

type PlayerSnapshot struct {
	Health         int           `yaml:"health"`
	Hearts         []string      `yaml:"hearts"`
	LastDamageTime int64         `yaml:"last_damage_time"`
	Defeated       bool          `yaml:"defeated"`
	Position       PointSnapshot `yaml:"position"`
}

type EnemySnapshot struct {
	Kind          string        `yaml:"kind"`
	Health        int           `yaml:"health"`
	LastShootTime int64         `yaml:"last_shoot_time"`
	Position      PointSnapshot `yaml:"position"`
}

type PointSnapshot struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Snapshot captures the current state of the game.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		Now:   g.space.Now(),
		Seed:  g.space.Seed(),
		Coins: system.Coins(w),
		Stats: g.stats,
	}

	if room, ok := system.RoomState(w); ok {
		snap.Room = RoomSnapshot{ID: room.ID, Active: room.Active, Loads: room.Loads}
	}
	if door, ok := system.DoorState(w); ok {
		snap.Room.Door = door.String()
	}

	p := g.Player()
	snap.Player = PlayerSnapshot{
		Health:         p.Health,
		LastDamageTime: p.LastDamageTime,
		Defeated:       p.Defeated,
	}
	for _, h := range system.Hearts(p.Health) {
		snap.Player.Hearts = append(snap.Player.Hearts, h.String())
	}
	if pos, ok := entity.Position(w, g.player); ok {
		snap.Player.Position = PointSnapshot{X: pos.X, Y: pos.Y}
	}

	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy) {
		pos, _ := entity.Position(w, e)
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			Kind:          enemy.Kind.String(),
			Health:        enemy.Health,
			LastShootTime: enemy.LastShootTime,
			Position:      PointSnapshot{X: pos.X, Y: pos.Y},
		})
	})
	snap.Projectiles = ecs.Count(w, component.ProjectileComponent.Kind())

	for _, h := range g.space.Handles(engine.LayerObstacle) {
		pos := h.Position()
		snap.Obstacles = append(snap.Obstacles, PointSnapshot{X: pos.X, Y: pos.Y})
	}
	return snap
}

// YAML encodes the snapshot.
func (s Snapshot) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("game: encode snapshot: %w", err)
	}
	return out, nil
}
