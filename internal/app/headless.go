package app

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"time"

	"lifeview/internal/core"
	"lifeview/internal/render"
	"lifeview/pkg/sims/life"
)

// headlessTimerPeriod is how often the headless loop polls the scheduler.
const headlessTimerPeriod = time.Millisecond

// Result summarizes a headless run.
type Result struct {
	Generation int
	Population int
	Frames     int
	Output     string
}

// RunHeadless advances the board cfg.Generations times at the configured
// cadence, rendering frames to an in-memory surface, and writes the final
// frame to cfg.Output as PNG.
func RunHeadless(ctx context.Context, cfg *Config, logger *slog.Logger) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	game := life.New(cfg.Rows, cfg.Cols)
	if err := cfg.SeedBoard(game); err != nil {
		return Result{}, err
	}

	surface := render.NewImageSurface(cfg.Width, cfg.Height)
	board, err := render.NewBoard(surface, game, cfg.Style)
	if err != nil {
		return Result{}, fmt.Errorf("create board: %w", err)
	}
	board.SetCenter(float64(cfg.Width/2), float64(cfg.Height/2))
	board.Init()

	sched := core.NewScheduler(game, cfg.TickInterval, nil)
	res := Result{Output: cfg.Output}

	logger.Info("headless run starting",
		"rows", cfg.Rows, "cols", cfg.Cols,
		"generations", cfg.Generations, "interval", sched.Interval())

	if cfg.Generations > 0 {
		loopCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		timer := func() {
			if sched.Fire() && game.Generation() >= cfg.Generations {
				sched.Pause()
				cancel()
			}
		}
		frame := func() {
			board.Render()
			res.Frames++
		}

		sched.Start()
		err := core.RunLoop(loopCtx, headlessTimerPeriod, time.Second/time.Duration(cfg.TPS), timer, frame)
		if err != nil && !(errors.Is(err, context.Canceled) && ctx.Err() == nil) {
			return res, fmt.Errorf("headless loop: %w", err)
		}
	}

	board.Render()
	res.Frames++
	res.Generation = game.Generation()
	res.Population = game.Population()

	if err := writePNG(cfg.Output, surface); err != nil {
		return res, err
	}
	logger.Info("headless run finished",
		"generation", res.Generation, "population", res.Population,
		"frames", res.Frames, "output", res.Output)
	return res, nil
}

func writePNG(path string, surface *render.ImageSurface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, surface.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
