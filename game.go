package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dungeonroom/ecs/render"
	"github.com/milk9111/dungeonroom/game"
	"github.com/milk9111/dungeonroom/prefabs"
	"github.com/rs/zerolog"
	"golang.design/x/clipboard"
)

// Game adapts the headless simulation to ebiten: it polls the keyboard,
// ticks the simulation and draws the room.
type Game struct {
	spec    *prefabs.GameSpec
	seed    int64
	debug   bool
	watcher *prefabs.Watcher
	log     zerolog.Logger

	sim      *game.Game
	palette  *render.Palette
	gameOver *ebitenui.UI

	clipboardReady bool
	quit           bool
}

func NewGame(spec *prefabs.GameSpec, seed int64, debug bool, watcher *prefabs.Watcher, log zerolog.Logger) (*Game, error) {
	g := &Game{
		spec:    spec,
		seed:    seed,
		debug:   debug,
		watcher: watcher,
		log:     log,
		palette: render.NewPalette(spec.Palette),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	g.gameOver = NewGameOverUI(g)

	if debug {
		if err := clipboard.Init(); err != nil {
			log.Warn().Err(err).Msg("clipboard unavailable, snapshot copy disabled")
		} else {
			g.clipboardReady = true
		}
	}
	return g, nil
}

// restart throws the current run away and starts a new one. The seed flag
// is reused so a seeded session replays the same obstacle layout.
func (g *Game) restart() error {
	if g.sim != nil {
		g.spec = g.sim.Spec()
		g.palette = render.NewPalette(g.spec.Palette)
	}
	sim, err := game.New(g.spec, g.seed, g.log)
	if err != nil {
		return err
	}
	sim.Watch(g.watcher)
	g.sim = sim
	return nil
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.sim.Defeated() {
		g.sim.SetInput(0, 0)
		g.gameOver.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := g.restart(); err != nil {
				return err
			}
		}
		return nil
	}

	g.sim.SetInput(pollMovement())
	g.sim.Tick()

	if g.debug && inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.copySnapshot()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background())
	drawScene(screen, render.Scene(g.sim.World(), g.palette))
	drawHUD(screen, render.HUDFor(g.sim.World()))

	if g.debug {
		drawDebug(screen, g.sim)
	}
	if g.sim.Defeated() {
		g.gameOver.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.spec.Room.Width, g.spec.Room.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) copySnapshot() {
	out, err := g.sim.Snapshot().YAML()
	if err != nil {
		g.log.Error().Err(err).Msg("snapshot")
		return
	}
	if !g.clipboardReady {
		g.log.Info().Msg(string(out))
		return
	}
	clipboard.Write(clipboard.FmtText, out)
	g.log.Info().Int("bytes", len(out)).Msg("snapshot copied to clipboard")
}

// pollMovement reads WASD and the arrow keys as movement axes.
func pollMovement() (float64, float64) {
	var x, y float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		y++
	}
	return x, y
}
