// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/audio"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/interfaces"
	"go-arcade-shooter/internal/logging"
	"go-arcade-shooter/internal/persistence"
	"go-arcade-shooter/internal/spectate"
	"go-arcade-shooter/internal/state"
	"go-arcade-shooter/internal/utils"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	clock          *utils.ManualClock
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.clock.Advance(deltaTime)
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		seed      = flag.Int64("seed", utils.GetEnvInt64("ARCADE_SEED", time.Now().UnixNano()), "random seed for spawns and drops")
		character = flag.String("character", utils.GetEnvDefault("ARCADE_CHARACTER", string(defs.CharacterKava)), "preselected character: Kava, Sara or Guiral")
		saves     = flag.String("saves", utils.GetEnvDefault("ARCADE_SAVES", "saves"), "directory for save slots")
		logPath   = flag.String("log", utils.GetEnvDefault("ARCADE_LOG", ""), "log file, stderr when empty")
		logLevel  = flag.String("log-level", utils.GetEnvDefault("ARCADE_LOG_LEVEL", "info"), "debug, info, warn or error")
		addr      = flag.String("spectate", utils.GetEnvDefault("ARCADE_SPECTATE", ""), "address of the spectator websocket feed, disabled when empty")
		adaptive  = flag.Bool("adaptive", false, "shorten the spawn interval as difficulty grows")
		mute      = flag.Bool("mute", false, "disable sound")
		music     = flag.String("music", utils.GetEnvDefault("ARCADE_MUSIC", "assets/music.wav"), "background music (WAV)")
		pprofAddr = flag.String("pprof", "", "pprof listen address, disabled when empty")
	)
	flag.Parse()

	logger, closeLog, err := newLogger(*logPath, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if *pprofAddr != "" {
		go func() {
			logger.Info("pprof listening", "addr", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				logger.Error("pprof stopped", "error", err)
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// определения, сохранения и звук поднимаются параллельно
	var (
		lib   *defs.Library
		store *persistence.FileStore
		sound = audio.NewService(logger)
	)
	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		lib, err = defs.Default(logger)
		return err
	})
	eg.Go(func() error {
		var err error
		store, err = persistence.NewFileStore(*saves, config.SaveSlots, logger)
		return err
	})
	if !*mute {
		eg.Go(func() error {
			sound.Init()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	var player interfaces.AudioPlayer = audio.Nop{}
	if !*mute && !sound.IsDisabled() {
		player = sound
		defer sound.Close()
	}

	clock := utils.NewManualClock(0)
	opts := app.Options{
		Character: defs.CharacterID(*character),
		Adaptive:  *adaptive,
		Clock:     clock,
		RNG:       utils.NewPRNGService(*seed),
		Audio:     player,
		Store:     store,
	}
	if *addr != "" {
		server := spectate.NewServer(*addr, logger)
		opts.Sink = server
		go func() {
			if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("spectator feed stopped", "error", err)
			}
		}()
	}

	session := &state.Session{Lib: lib, Options: opts, Music: *music, Logger: logger}
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, session))

	logger.Info("starting", "seed", *seed, "character", *character, "adaptive", *adaptive, "saves", *saves)

	ebiten.SetWindowSize(config.ScreenWidth/2, config.ScreenHeight/2)
	ebiten.SetWindowTitle("Arcade Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, clock: clock, lastUpdateTime: time.Now()}); err != nil {
		logger.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(path, level string) (*slog.Logger, func(), error) {
	lvl := logging.ParseLevel(level)
	if path == "" {
		return logging.New(os.Stderr, lvl), func() {}, nil
	}
	logger, f, err := logging.NewFile(path, lvl)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
