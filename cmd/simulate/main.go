// Command simulate runs the room headless for a number of ticks and prints
// a YAML snapshot of where it ended up.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/milk9111/dungeonroom/game"
	"github.com/milk9111/dungeonroom/prefabs"
	"github.com/rs/zerolog"
)

func main() {
	ticks := flag.Int("ticks", 3600, "number of 60Hz ticks to simulate")
	seed := flag.Int64("seed", 1, "seed for obstacle placement")
	pilot := flag.String("pilot", "idle", "player behavior: idle or flee")
	debug := flag.Bool("debug", false, "log every room event")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	steer, ok := pilots[*pilot]
	if !ok {
		log.Fatal().Str("pilot", *pilot).Msg("unknown pilot")
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal().Err(err).Msg("load prefabs")
	}
	sim, err := game.New(spec, *seed, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start game")
	}

	for i := 0; i < *ticks && !sim.Defeated(); i++ {
		sim.SetInput(steer(sim.Snapshot()))
		sim.Tick()
	}

	out, err := sim.Snapshot().YAML()
	if err != nil {
		log.Fatal().Err(err).Msg("snapshot")
	}
	fmt.Print(string(out))

	stats := sim.Stats()
	log.Info().
		Uint64("ticks", stats.Ticks).
		Int64("ms", sim.Now()).
		Int("hits", stats.HitsTaken).
		Int("shots", stats.ShotsFired).
		Bool("defeated", sim.Defeated()).
		Msg("simulate: done")
}

type pilotFunc func(game.Snapshot) (float64, float64)

var pilots = map[string]pilotFunc{
	"idle": func(game.Snapshot) (float64, float64) { return 0, 0 },
	"flee": flee,
}

// flee runs directly away from the closest enemy.
func flee(s game.Snapshot) (float64, float64) {
	best := math.Inf(1)
	var dx, dy float64
	for _, e := range s.Enemies {
		x := s.Player.Position.X - e.Position.X
		y := s.Player.Position.Y - e.Position.Y
		if d := math.Hypot(x, y); d < best && d > 0 {
			best, dx, dy = d, x/d, y/d
		}
	}
	return dx, dy
}
