//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"lifeview/internal/core"
	"lifeview/internal/gesture"
	"lifeview/internal/render"
	"lifeview/internal/ui"
	"lifeview/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the board, scheduler and gesture recognizer to ebiten.Game.
// Update is the timer cadence: it polls input and fires the scheduler. Draw
// is the frame cadence: it renders the board diff onto a persistent canvas.
type Game struct {
	cfg    *Config
	logger *slog.Logger

	life  *life.Life
	sched *core.Scheduler
	board *render.Board

	canvas        *render.EbitenSurface
	width, height int
	hudWidth      int

	gestures *gesture.Recognizer
	region   gesture.RegionID
	input    *gesture.EbitenSource
	hud      *ui.HUD
}

// New constructs a Game from cfg. The scheduler starts running.
func New(cfg *Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{cfg: cfg, logger: logger, width: cfg.Width, height: cfg.Height}

	g.life = life.New(cfg.Rows, cfg.Cols)
	if err := cfg.SeedBoard(g.life); err != nil {
		return nil, err
	}

	g.canvas = render.NewEbitenSurface(cfg.Width, cfg.Height)
	board, err := render.NewBoard(g.canvas, g.life, cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}
	g.board = board

	g.sched = core.NewScheduler(g.life, cfg.TickInterval, nil)

	g.gestures = gesture.NewRecognizer()
	g.region = gesture.NewRegionID()
	g.gestures.SetRegion(g.region)
	if err := g.gestures.On(gesture.Pan, g.board.Pan); err != nil {
		return nil, err
	}
	if err := g.gestures.On(gesture.Tap, g.tap); err != nil {
		return nil, err
	}
	g.input = gesture.NewEbitenSource(g.gestures, g.region)

	g.hud = ui.NewHUD(g.life.Name(), g, g, []ui.Control{
		{Key: "interval_ms", Label: "Interval (ms)", Step: 10, Min: 10, Max: 2000},
	}, cfg.HUDWidth)
	g.hudWidth = g.hud.Width()

	g.recenter()
	g.board.Init()
	g.sched.Start()
	return g, nil
}

// Update handles keys and pointer input and advances the simulation when
// the scheduler allows it.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.sched.Running() {
		g.life.Tick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.life.Reset(g.cfg.Rows, g.cfg.Cols)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	// + speeds up, - slows down.
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.SetIntParameter("interval_ms", int(g.sched.Interval().Milliseconds())-10)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.SetIntParameter("interval_ms", int(g.sched.Interval().Milliseconds())+10)
	}

	if w := g.hud.Width(); w != g.hudWidth {
		g.hudWidth = w
		g.recenter()
	}
	g.hud.Update(g.width - g.hudWidth)
	g.input.Poll()
	g.sched.Fire()
	return nil
}

// Draw renders the board diff and composites the canvas and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.board.Render()
	screen.DrawImage(g.canvas.Image(), nil)
	g.hud.Draw(screen)
}

// Layout follows the window size. A size change recreates the canvas and
// recenters the board, which repaints it fully.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.canvas.Dispose()
		g.canvas = render.NewEbitenSurface(g.width, g.height)
		g.board.SetSurface(g.canvas)
		g.recenter()
		g.logger.Debug("resized", "width", g.width, "height", g.height)
	}
	return g.width, g.height
}

// recenter places the board in the middle of the area left of the HUD.
func (g *Game) recenter() {
	w := g.width - g.hudWidth
	if w <= 0 {
		w = g.width
	}
	g.board.SetCenter(math.Round(float64(w)/2), math.Round(float64(g.height)/2))
}

func (g *Game) togglePause() {
	if g.sched.Running() {
		g.sched.Pause()
		g.logger.Debug("paused", "generation", g.life.Generation())
		return
	}
	g.sched.Start()
	g.logger.Debug("resumed", "generation", g.life.Generation())
}

func (g *Game) reseed() {
	g.life.Reset(g.cfg.Rows, g.cfg.Cols)
	g.cfg.Seed = time.Now().UnixNano()
	if err := g.cfg.SeedBoard(g.life); err != nil {
		g.logger.Error("reseed failed", "err", err)
	}
}

// tap is the placement hook. Cells become alive only in edit mode.
func (g *Game) tap(x, y float64) {
	if g.hud.Contains(int(x), int(y)) {
		return
	}
	row, col, ok := g.board.CellAt(x, y)
	if !ok {
		return
	}
	if !g.cfg.Edit {
		g.logger.Debug("tap", "row", row, "col", col)
		return
	}
	g.life.FillCell(row, col)
	g.logger.Debug("cell placed", "row", row, "col", col)
}

// Parameters reports everything shown on the HUD.
func (g *Game) Parameters() core.ParameterSnapshot {
	frames := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Frames",
		Params: []core.Parameter{
			{Key: "fps", Label: "FPS", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(ebiten.ActualFPS(), 'f', 1, 64)},
			{Key: "tps", Label: "TPS", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(ebiten.ActualTPS(), 'f', 1, 64)},
		},
	}}}
	return g.life.Parameters().
		Merge(g.sched.Parameters()).
		Merge(g.board.Parameters()).
		Merge(frames)
}

// SetIntParameter applies a HUD adjustment.
func (g *Game) SetIntParameter(key string, value int) bool {
	switch key {
	case "interval_ms":
		if value < 1 {
			value = 1
		}
		g.sched.SetInterval(time.Duration(value) * time.Millisecond)
		return true
	default:
		return false
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	game, err := New(cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("lifeview")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
