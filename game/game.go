// Package game assembles the world, the physics space and the systems into
// one headless simulation advanced a fixed step at a time.
package game

import (
	"fmt"

	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/ecs/entity"
	"github.com/milk9111/dungeonroom/ecs/system"
	"github.com/milk9111/dungeonroom/engine"
	"github.com/milk9111/dungeonroom/prefabs"
	"github.com/rs/zerolog"
)

// Stats accumulates what happened over a run.
type Stats struct {
	Ticks           uint64 `yaml:"ticks"`
	RoomsLoaded     int    `yaml:"rooms_loaded"`
	RoomsCleared    int    `yaml:"rooms_cleared"`
	ShotsFired      int    `yaml:"shots_fired"`
	HitsTaken       int    `yaml:"hits_taken"`
	EnemiesDefeated int    `yaml:"enemies_defeated"`
}

type Game struct {
	spec  *prefabs.GameSpec
	space *engine.Space
	world *ecs.World
	log   zerolog.Logger

	pipeline *ecs.Pipeline
	room     *system.RoomSystem
	enemies  *system.EnemySystem
	combat   *system.CombatResolver

	player  ecs.Entity
	watcher *prefabs.Watcher
	stats   Stats
}

// New builds a game from spec and loads the first room. A zero seed picks
// a time based seed for obstacle placement.
func New(spec *prefabs.GameSpec, seed int64, log zerolog.Logger) (*Game, error) {
	if spec == nil {
		return nil, fmt.Errorf("game: nil spec")
	}

	space := engine.NewSpace(seed, log)
	w := ecs.NewWorld(space)

	g := &Game{
		spec:    spec,
		space:   space,
		world:   w,
		log:     log,
		enemies: system.NewEnemySystem(spec.Projectile, spec.Room.Coin, log),
		combat:  system.NewCombatResolver(spec.Player.InvulnerabilityMs, log),
	}

	room, err := system.NewRoomSystem(spec, log)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.room = room

	if g.player, err = entity.NewPlayer(w, spec.Player); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewHealthDisplay(w); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewCoinCounter(w); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewRoom(w); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewWalls(w, spec.Room); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	if err := system.RegisterContacts(w, system.Contacts{Room: g.room, Combat: g.combat, Log: log}); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g.pipeline = ecs.NewPipeline().
		Then("control", system.NewPlayerControlSystem()).
		Then("enemies", g.enemies).
		Then("physics", system.NewPhysicsSystem(space, common.TickMs)).
		Then("room", g.room).
		HaltWhen(system.Defeated)
	log.Debug().Strs("stages", g.pipeline.Stages()).Msg("game: tick pipeline")

	if err := g.room.LoadRoom(w); err != nil {
		return nil, fmt.Errorf("game: first room: %w", err)
	}
	g.collectEvents()

	log.Info().Int64("seed", space.Seed()).Msg("game: started")
	return g, nil
}

// Tick advances the simulation by one fixed step. Once the player is
// defeated the world is frozen and Tick does nothing.
func (g *Game) Tick() {
	if g.Defeated() {
		return
	}
	g.stats.Ticks++

	g.space.Advance(common.TickMs)
	g.pipeline.Update(g.world)
	g.collectEvents()
	g.reloadSpecs()
}

// SetInput sets the movement direction for the next ticks. Each axis is in
// [-1, 1]; diagonals are normalized.
func (g *Game) SetInput(moveX, moveY float64) {
	system.SetInput(g.world, moveX, moveY)
}

// Watch hot reloads prefabs from w. Changes apply at the next room load.
func (g *Game) Watch(w *prefabs.Watcher) {
	g.watcher = w
}

// ApplySpec swaps in new prefab data. The current room keeps its enemies;
// the next load uses the new spec.
func (g *Game) ApplySpec(spec *prefabs.GameSpec) error {
	if err := g.room.SetSpec(spec); err != nil {
		return err
	}
	g.enemies.SetSpecs(spec.Projectile, spec.Room.Coin)
	g.spec = spec
	return nil
}

func (g *Game) World() *ecs.World { return g.world }

func (g *Game) Space() *engine.Space { return g.space }

func (g *Game) Spec() *prefabs.GameSpec { return g.spec }

func (g *Game) Stats() Stats { return g.stats }

func (g *Game) Now() int64 { return g.space.Now() }

func (g *Game) Defeated() bool { return system.Defeated(g.world) }

// Player returns a copy of the player state.
func (g *Game) Player() component.Player {
	p, ok := ecs.Get(g.world, g.player, component.PlayerComponent.Kind())
	if !ok {
		return component.Player{}
	}
	return *p
}

func (g *Game) collectEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventRoomLoaded:
			g.stats.RoomsLoaded++
		case ecs.EventRoomCleared:
			g.stats.RoomsCleared++
		case ecs.EventEnemyFired:
			g.stats.ShotsFired++
		case ecs.EventPlayerDamaged:
			g.stats.HitsTaken++
		case ecs.EventEnemyDefeated:
			g.stats.EnemiesDefeated++
		}
		g.log.Trace().Str("event", string(evt.Type)).Int64("at", evt.At).Stringer("entity", evt.Entity).Msg("game: event")
	}
}

func (g *Game) reloadSpecs() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Changed()
	if err != nil {
		g.log.Warn().Err(err).Msg("game: prefab watcher")
	}
	if len(changed) == 0 {
		return
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		g.log.Error().Err(err).Strs("files", changed).Msg("game: reload prefabs")
		return
	}
	if err := g.ApplySpec(spec); err != nil {
		g.log.Error().Err(err).Msg("game: apply prefabs")
		return
	}
	g.log.Info().Strs("files", changed).Msg("game: prefabs reloaded")
}
