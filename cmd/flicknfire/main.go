package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/flicknfire/audio"
	"github.com/lixenwraith/flicknfire/config"
	"github.com/lixenwraith/flicknfire/game"
	"github.com/lixenwraith/flicknfire/logging"
	"github.com/lixenwraith/flicknfire/network"
	"github.com/lixenwraith/flicknfire/parameter"
	"github.com/lixenwraith/flicknfire/render"
	"github.com/lixenwraith/flicknfire/store"
	"github.com/lixenwraith/flicknfire/telemetry"
)

var (
	configDir  = flag.String("config", ".", "Directory holding flicknfire.yaml and .env")
	renderFlag = flag.Bool("render", false, "Show the terminal viewer (overrides render.enabled)")
	logFile    = flag.String("log-file", "flicknfire.log", "Log destination while the terminal viewer is active")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flicknfire: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configDir)
	if err != nil {
		return err
	}
	showViewer := cfg.RenderEnabled || *renderFlag

	// The viewer owns the terminal, logs go to a file while it runs
	var out io.Writer = os.Stderr
	if showViewer {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := logging.New(out, cfg.LogLevel, cfg.LogPretty && !showViewer)
	if cfg.File != "" {
		log.Info().Str("file", cfg.File).Msg("config loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var scores store.ScoreStore
	if db, err := store.Open(cfg.StorePath); err != nil {
		log.Error().Err(err).Str("path", cfg.StorePath).Msg("score store unavailable, best score kept in memory")
		scores = store.NewMemory()
	} else {
		defer db.Close()
		scores = db
	}

	g := game.New(ctx, game.Options{
		Settings: cfg.Settings(),
		Scores:   scores,
		ScoreKey: cfg.StoreKey,
		Logger:   log,
	})

	if rec, err := telemetry.New(); err != nil {
		log.Warn().Err(err).Msg("telemetry disabled")
	} else {
		g.Subscribe(rec)
	}

	player := audio.NewPlayer(audio.Config{Enabled: cfg.AudioEnabled, Volume: cfg.AudioVolume}, log)
	_ = player.Start()
	defer player.Stop()
	g.Subscribe(player)

	srv := network.NewServer(g, network.Config{
		Address:           cfg.NetworkAddress,
		BroadcastInterval: cfg.BroadcastInterval,
	}, log)
	g.Subscribe(srv)

	driver := game.NewDriver(g, cfg.TickInterval, log)
	driver.Start()
	defer driver.Stop()

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ctx) }()

	if showViewer {
		go func() {
			if err := <-serveErr; err != nil {
				log.Error().Err(err).Msg("pose server stopped")
				stop()
			}
		}()
		return runViewer(ctx, g, log)
	}

	log.Info().Str("addr", cfg.NetworkAddress).Msg("waiting for pose frames")
	select {
	case <-ctx.Done():
		log.Info().Int("best", g.BestScore()).Fields(g.Status().Values()).Msg("shutting down")
		return nil
	case err := <-serveErr:
		return err
	}
}

func runViewer(ctx context.Context, g *game.Game, log zerolog.Logger) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("viewer crashed")
			err = errors.New("viewer crashed")
			return
		}
		screen.Fini()
	}()

	render.Run(ctx, screen, g, parameter.RenderInterval)
	return nil
}
