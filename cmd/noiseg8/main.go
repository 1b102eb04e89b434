package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/zmann/noiseg8/engine/colors"
	"github.com/zmann/noiseg8/engine/config"
	"github.com/zmann/noiseg8/engine/editor"
	"github.com/zmann/noiseg8/engine/meter"
	"github.com/zmann/noiseg8/engine/platform"
	"github.com/zmann/noiseg8/engine/profiler"
	"github.com/zmann/noiseg8/engine/ui"
)

const (
	minGainDB = -30
	maxGainDB = 30
)

// editorState lives on the UI thread except for the shared atomics.
type editorState struct {
	gain   *gainParam
	peak   *meter.PeakMeter
	bg     *atomic.Pointer[colors.Color]
	quit   <-chan struct{}
	gainDB float32
	name   string
}

func build(ctx *ui.Context, _ *editor.Queue, s *editorState) {
	ctx.Style().Spacing = 8
	s.gainDB = s.gain.Get()
}

func update(ctx *ui.Context, q *editor.Queue, s *editorState) {
	select {
	case <-s.quit:
		q.CloseWindow()
		return
	default:
	}
	q.SetBgColor(*s.bg.Load())

	ctx.Heading("NoiseG8")
	if ctx.Slider(1, "Gain", &s.gainDB, minGainDB, maxGainDB) {
		s.gain.Set(s.gainDB)
	}
	ctx.Labelf("%+.2f dB", s.gainDB)

	db := s.peak.LoadDB()
	frac := (db - meter.MinusInfinityDB) / -meter.MinusInfinityDB
	col := colors.Green
	if db > -6 {
		col = colors.Red
	}
	ctx.Meter(frac, col)
	if db <= meter.MinusInfinityDB {
		ctx.Label("-inf dB")
	} else {
		ctx.Labelf("%.1f dB", db)
	}
	// The meter moves on its own. A delayed repaint would be pushed back by
	// every idle tick, so render on each one.
	ctx.RequestRepaint()

	ctx.TextEdit(2, &s.name)
	if ctx.Button(3, "Close") {
		q.CloseWindow()
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func run(configPath, profilePath string) error {
	loader := config.NewLoader(configPath, nil)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	slog.SetDefault(log)

	if profiler.Enabled {
		profiler.Init(1 << 16)
		defer func() {
			if err := profiler.Dump(profilePath); err != nil {
				log.Warn("profile dump failed", "err", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bg := &atomic.Pointer[colors.Color]{}
	initial := cfg.Background()
	bg.Store(&initial)
	loader.OnChange(func(c *config.Config) {
		col := c.Background()
		bg.Store(&col)
	})
	if configPath != "" {
		if err := loader.Watch(ctx); err != nil {
			log.Warn("config hot reload disabled", "err", err)
		}
		defer loader.Close()
	}

	state := editorState{
		gain: &gainParam{},
		peak: meter.NewPeakMeter(0),
		bg:   bg,
		quit: ctx.Done(),
	}
	var editorOpen atomic.Bool
	editorOpen.Store(true)
	go runAudio(ctx, state.gain, state.peak, cfg.Editor.MeterDecayMs, &editorOpen)
	defer editorOpen.Store(false)

	opts := editor.Options{
		Window:              cfg.WindowOptions(),
		Logger:              log,
		PointsPerScrollLine: cfg.Editor.PointsPerScrollLine,
	}
	if cfg.Editor.Font != "" {
		face, err := ui.LoadFontFace(cfg.Editor.Font, cfg.Editor.FontSize)
		if err != nil {
			log.Warn("using built-in font", "err", err)
		} else {
			opts.Font = face
		}
	}
	return editor.OpenBlocking(platform.Backend{Logger: log}, opts, state, build, update)
}

func main() {
	configPath := flag.String("config", "noiseg8.toml", "path to the TOML config file")
	profilePath := flag.String("profile", "noiseg8.speedscope.json", "where to write the profile (profile builds only)")
	flag.Parse()

	if err := run(*configPath, *profilePath); err != nil {
		fmt.Fprintln(os.Stderr, "noiseg8:", err)
		os.Exit(1)
	}
}
