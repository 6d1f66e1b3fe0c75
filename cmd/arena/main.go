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
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/game"
	"github.com/lixenwraith/vi-arena/input"
	"github.com/lixenwraith/vi-arena/network"
	"github.com/lixenwraith/vi-arena/status"
	"github.com/lixenwraith/vi-arena/terminal"
)

var (
	configFlag   = flag.String("config", "", "TOML config file overriding the built-in defaults")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/arena.log")
	logLevelFlag = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	spectateFlag = flag.String("spectate", "", "Serve the spectator websocket stream on this address, e.g. :8080")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 keeps the config value")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, logFile, err := setupLogging(*debugFlag, *logLevelFlag)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	if *configFlag != "" {
		if cfg, err = config.Load(*configFlag); err != nil {
			return err
		}
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	bindings, err := input.ParseBindings(cfg.Keys)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	core.RegisterCrashTerminal(screen)
	defer func() {
		core.RegisterCrashTerminal(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	view := terminal.NewScreen(screen, cfg.Arena.Width, cfg.Arena.Height)
	keys := input.NewHandler(bindings, input.NewKeyState(engine.WallClock{}))
	reg := status.NewRegistry()

	sim, err := game.New(cfg,
		game.WithRenderer(view),
		game.WithHUD(view),
		game.WithInput(keys),
		game.WithLogger(logger),
		game.WithStatus(reg),
		game.WithEpoch(time.Now()),
	)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loop := engine.NewLoop(sim, cfg.Timing.Tick.Std())
	if *spectateFlag != "" {
		startSpectators(ctx, sim, loop, reg, logger)
	}

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	loopDone := make(chan error, 1)
	core.Go(func() {
		loopDone <- loop.Run(ctx)
	})

	logger.WithField("seed", cfg.Seed).Info("arena started")
	var clicks terminal.ClickTracker

	for {
		select {
		case <-ctx.Done():
			loop.Stop()
			return nil

		case err := <-loopDone:
			if ctx.Err() != nil {
				return nil
			}
			if err != nil {
				return errors.Wrap(err, "game loop")
			}
			snap := sim.Snapshot()
			logger.WithFields(logrus.Fields{"score": snap.Score, "elapsed": snap.Elapsed, "kills": snap.Kills}).Info("game over")
			view.Banner(fmt.Sprintf("GAME OVER  score %d  (q to quit)", snap.Score))

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				view.Resize()

			case *tcell.EventKey:
				action := keys.Handle(terminal.TranslateKey(ev))
				if ev.Key() == tcell.KeyCtrlC {
					action = input.ActionQuit
				}
				switch action {
				case input.ActionQuit:
					loop.Stop()
					return nil
				case input.ActionCycleVariant:
					sim.CycleVariant()
				default:
					if idx, ok := action.ChoiceIndex(); ok {
						if err := sim.Choose(idx); err != nil && !errors.Is(err, game.ErrNoChoicePending) {
							logger.WithError(err).Debug("choice ignored")
						}
					}
				}

			case *tcell.EventMouse:
				if p, ok := clicks.Click(ev, view.Viewport()); ok {
					sim.Click(p.X, p.Y)
				}
			}
		}
	}
}

// startSpectators serves the websocket stream and broadcasts a snapshot every few ticks
func startSpectators(ctx context.Context, sim *game.Simulation, loop *engine.Loop, reg *status.Registry, logger logrus.FieldLogger) {
	netCfg := network.DefaultConfig()
	netCfg.Address = *spectateFlag
	hub := network.NewHub(netCfg, logger, reg)

	sim.RegisterHandler(hub.EventForwarder(
		event.EventMilestoneReached,
		event.EventChoiceResolved,
		event.EventPowerUpExpired,
		event.EventActorDefeated,
	))

	every := uint64(max(1, netCfg.EveryNTicks))
	loop.OnTick = func(tick uint64) {
		if tick%every != 0 {
			return
		}
		if err := hub.BroadcastSnapshot(sim.Snapshot()); err != nil {
			logger.WithError(err).Warn("broadcast snapshot")
		}
	}

	core.Go(func() {
		if err := hub.ListenAndServe(ctx); err != nil && !errors.Is(err, network.ErrHubClosed) {
			logger.WithError(err).Error("spectator stream stopped")
		}
	})
}
