package system

import (
	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/rs/zerolog"
)

const defaultInvulnerabilityMs = 500

// CombatResolver owns player health. Every hit, whatever its source, goes
// through OnPlayerHit so the invulnerability window applies uniformly.
type CombatResolver struct {
	invulnerabilityMs int64
	log               zerolog.Logger
}

func NewCombatResolver(invulnerabilityMs int64, log zerolog.Logger) *CombatResolver {
	if invulnerabilityMs <= 0 {
		invulnerabilityMs = defaultInvulnerabilityMs
	}
	return &CombatResolver{invulnerabilityMs: invulnerabilityMs, log: log}
}

// InvulnerabilityMs returns the window after a hit during which further hits
// are absorbed.
func (c *CombatResolver) InvulnerabilityMs() int64 {
	return c.invulnerabilityMs
}

// OnPlayerHit applies one point of damage at time now unless the player is
// defeated or still inside the invulnerability window. Absorbed hits do not
// extend the window. It reports whether damage was applied.
func (c *CombatResolver) OnPlayerHit(w *ecs.World, now int64) bool {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return false
	}
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || player.Defeated {
		return false
	}
	if now <= player.LastDamageTime+c.invulnerabilityMs {
		return false
	}

	player.Health = common.Clamp(player.Health-1, 0, player.MaxHealth)
	player.LastDamageTime = now
	RefreshHearts(w, player.Health)

	w.Events().Push(ecs.Event{Type: ecs.EventPlayerDamaged, Entity: e, At: now, Data: player.Health})
	c.log.Debug().Int64("now", now).Int("health", player.Health).Msg("combat: player damaged")

	if player.Health <= 0 {
		c.defeat(w, e, player, now)
	}
	return true
}

func (c *CombatResolver) defeat(w *ecs.World, e ecs.Entity, player *component.Player, now int64) {
	player.Defeated = true
	player.DefeatedAt = now
	if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok && body.Handle != nil {
		body.Handle.SetVelocity(common.Vec{})
	}
	if eng := w.Engine(); eng != nil {
		eng.Pause()
	}
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerDefeated, Entity: e, At: now})
	c.log.Info().Int64("now", now).Msg("combat: player defeated")
}

// Defeated reports whether the game is over.
func Defeated(w *ecs.World) bool {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return false
	}
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	return ok && player.Defeated
}
