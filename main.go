package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dungeonroom/prefabs"
	"github.com/rs/zerolog"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (verbose logs, F2 copies a room snapshot)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Int64("seed", 0, "seed for obstacle placement (0 picks one from the clock)")
	watch := flag.Bool("watch", false, "reload prefabs/ from disk when they change")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal().Err(err).Msg("load prefabs")
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Fatal().Err(err).Msg("watch prefabs")
		}
		defer watcher.Close()
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(spec.Room.Width), int(spec.Room.Height))
	ebiten.SetWindowTitle("dungeonroom")

	game, err := NewGame(spec, *seed, *debug, watcher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start game")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
