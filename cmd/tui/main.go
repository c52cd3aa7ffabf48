// cmd/tui/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/audio"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/interfaces"
	"go-arcade-shooter/internal/logging"
	"go-arcade-shooter/internal/persistence"
	"go-arcade-shooter/internal/spectate"
	"go-arcade-shooter/internal/ui/term"
	"go-arcade-shooter/internal/utils"
)

const frame = 16 * time.Millisecond // ~60 FPS

func main() {
	var (
		seed      = flag.Int64("seed", utils.GetEnvInt64("ARCADE_SEED", time.Now().UnixNano()), "random seed for spawns and drops")
		character = flag.String("character", utils.GetEnvDefault("ARCADE_CHARACTER", string(defs.CharacterKava)), "character: Kava, Sara or Guiral")
		saves     = flag.String("saves", utils.GetEnvDefault("ARCADE_SAVES", "saves"), "directory for save slots")
		logPath   = flag.String("log", utils.GetEnvDefault("ARCADE_LOG", "arcade-tui.log"), "log file; the terminal is busy drawing")
		logLevel  = flag.String("log-level", utils.GetEnvDefault("ARCADE_LOG_LEVEL", "info"), "debug, info, warn or error")
		addr      = flag.String("spectate", utils.GetEnvDefault("ARCADE_SPECTATE", ""), "address of the spectator websocket feed, disabled when empty")
		adaptive  = flag.Bool("adaptive", false, "shorten the spawn interval as difficulty grows")
		mute      = flag.Bool("mute", false, "disable sound")
		music     = flag.String("music", utils.GetEnvDefault("ARCADE_MUSIC", "assets/music.wav"), "background music (WAV)")
	)
	flag.Parse()

	logger, logFile, err := logging.NewFile(*logPath, logging.ParseLevel(*logLevel))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()

	lib, err := defs.Default(logger)
	if err != nil {
		logger.Error("definitions", "error", err)
		os.Exit(1)
	}
	store, err := persistence.NewFileStore(*saves, config.SaveSlots, logger)
	if err != nil {
		logger.Error("save store", "error", err)
		os.Exit(1)
	}

	var player interfaces.AudioPlayer = audio.Nop{}
	if !*mute {
		sound := audio.NewService(logger)
		sound.Init()
		if !sound.IsDisabled() {
			player = sound
			defer sound.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("terminal", "error", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error("terminal init", "error", err)
		os.Exit(1)
	}
	defer screen.Fini()

	opts := app.Options{
		Character: defs.CharacterID(*character),
		Adaptive:  *adaptive,
		Logger:    logger,
		RNG:       utils.NewPRNGService(*seed),
		Audio:     player,
		Store:     store,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	if *addr != "" {
		server := spectate.NewServer(*addr, logger)
		opts.Sink = server
		eg.Go(func() error { return server.Run(ctx) })
	}

	eg.Go(func() error {
		defer cancel()
		return run(ctx, screen, lib, opts, *music)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run drives the game until the player quits or ctx is cancelled.
func run(ctx context.Context, screen tcell.Screen, lib *defs.Library, opts app.Options, music string) error {
	g := app.NewGame(lib, opts)
	ctrl := term.NewController(g, opts.Logger)
	renderer := term.NewRenderer(lib)
	opts.Audio.PlayMusic(music)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ctrl.HandleKey(ev) {
				case term.CommandQuit:
					return nil
				case term.CommandRestart:
					g = app.NewGame(lib, opts)
					ctrl.SetGame(g)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			ctrl.Tick()
			g.Update()
			renderer.Draw(screen, g.Snapshot())
			renderer.DrawMessage(screen, ctrl.Message)
			screen.Show()
		}
	}
}
