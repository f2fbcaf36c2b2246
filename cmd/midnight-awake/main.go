package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/midnight-awake/audio"
	"github.com/lixenwraith/midnight-awake/config"
	"github.com/lixenwraith/midnight-awake/core"
	"github.com/lixenwraith/midnight-awake/game"
	"github.com/lixenwraith/midnight-awake/status"
	"github.com/lixenwraith/midnight-awake/world"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}

	// Flags override the environment
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write logs to logs/ and show the debug overlay")
	flag.BoolVar(&cfg.Muted, "mute", cfg.Muted, "start with audio muted")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "forest layout seed (0 = random)")
	flag.StringVar(&cfg.TuningFile, "tuning", cfg.TuningFile, "YAML file overriding gameplay tuning")
	flag.Parse()

	log, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	core.RegisterCrashLogger(log)

	tuning, err := config.LoadTuning(cfg.TuningFile, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	layout := world.Generate(world.Config{Trees: world.DefaultConfig().Trees, Seed: cfg.Seed}, tuning)
	log.WithField("seed", cfg.Seed).Info("layout generated")

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		return 1
	}
	core.RegisterCrashTerminal(screen)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	audioOpts := audio.DefaultOptions()
	audioOpts.MasterVolume = cfg.Volume()
	audioOpts.Muted = cfg.Muted
	audioOpts.Seed = cfg.Seed
	player, closeAudio := audio.Open(audioOpts, log)
	defer closeAudio()

	var reg *status.Registry
	if cfg.Debug {
		reg = status.NewRegistry()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(screen, game.Options{
		Config: cfg,
		Tuning: tuning,
		Layout: layout,
		Audio:  player,
		Log:    log,
		Status: reg,
	})
	if err := g.Run(ctx); err != nil {
		log.WithError(err).Error("game loop failed")
		return 1
	}
	return 0
}
