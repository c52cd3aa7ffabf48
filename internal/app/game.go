// internal/app/game.go
package app

import (
	"log/slog"

	"github.com/google/uuid"

	"go-arcade-shooter/internal/audio"
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/entity"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/internal/interfaces"
	"go-arcade-shooter/internal/system"
	"go-arcade-shooter/internal/utils"
)

// SnapshotSink receives a copy of the game state after every tick.
type SnapshotSink interface {
	Publish(Snapshot)
}

// Options collects the collaborators of a Game. Nil fields get defaults.
type Options struct {
	Character defs.CharacterID
	Adaptive  bool
	Logger    *slog.Logger
	Clock     interfaces.Clock
	RNG       interfaces.RNG
	Audio     interfaces.AudioPlayer
	Store     interfaces.Persistence
	Sink      SnapshotSink
}

// Game holds the main game state and logic.
type Game struct {
	Lib             *defs.Library
	World           *entity.World
	Player          component.Player
	Score           int
	Defeated        int
	RunID           string
	EventDispatcher *event.Dispatcher

	MovementSystem    *system.MovementSystem
	PlayerSystem      *system.PlayerSystem
	EnemyGenerator    *system.EnemyGenerator
	PowerUpGenerator  *system.PowerUpGenerator
	EnemyFireSystem   *system.EnemyFireSystem
	EffectSystem      *system.EffectSystem
	CombatSystem      *system.CombatSystem
	Shop              *system.Shop
	ProgressionSystem *system.ProgressionSystem

	clock     interfaces.Clock
	store     interfaces.Persistence
	sink      SnapshotSink
	logger    *slog.Logger
	lastClock float64
	aim       *component.Position // цель выстрела до следующего тика
}

// NewGame initializes a new game instance.
func NewGame(lib *defs.Library, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Clock == nil {
		opts.Clock = utils.NewSystemClock()
	}
	if opts.RNG == nil {
		opts.RNG = utils.NewPRNGService(0)
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}

	world := entity.NewWorld()
	dispatcher := event.NewDispatcher()
	character := lib.Character(opts.Character)

	g := &Game{
		Lib:             lib,
		World:           world,
		Player:          newPlayer(character),
		RunID:           uuid.NewString(),
		EventDispatcher: dispatcher,
		clock:           opts.Clock,
		store:           opts.Store,
		sink:            opts.Sink,
		logger:          logger.With("component", "game"),
	}
	g.MovementSystem = system.NewMovementSystem()
	g.PlayerSystem = system.NewPlayerSystem(lib, world, dispatcher, logger)
	g.EnemyGenerator = system.NewEnemyGenerator(lib, opts.RNG, world, logger)
	g.EnemyGenerator.Adaptive = opts.Adaptive
	g.PowerUpGenerator = system.NewPowerUpGenerator(opts.RNG, world, logger)
	g.EnemyFireSystem = system.NewEnemyFireSystem(world, logger)
	g.EffectSystem = system.NewEffectSystem(lib, logger)
	g.CombatSystem = system.NewCombatSystem(opts.RNG, world, g.EffectSystem, dispatcher, logger)
	g.Shop = system.NewShop(lib, logger)
	g.ProgressionSystem = system.NewProgressionSystem(lib, dispatcher, logger)

	audio.NewListener(opts.Audio).Subscribe(dispatcher)

	g.lastClock = g.clock.Now()
	g.logger.Info("new game",
		"run_id", g.RunID,
		"character", character.ID,
		"adaptive", opts.Adaptive,
		"levels", lib.LevelCount())
	return g
}

func newPlayer(def defs.CharacterDefinition) component.Player {
	x := (config.ScreenWidth - config.PlayerSize) / 2
	y := config.ScreenHeight - config.PlayerSize*2
	return component.NewPlayer(def, config.PlayerSize, x, y)
}

// Phase returns the current game phase.
func (g *Game) Phase() component.GamePhase { return g.ProgressionSystem.Phase }

// Now is the current simulation time.
func (g *Game) Now() float64 { return g.World.GameTime }

// Update advances the simulation by one tick. Simulation time only moves while
// the phase is Playing.
func (g *Game) Update() {
	clockNow := g.clock.Now()
	dt := clockNow - g.lastClock
	g.lastClock = clockNow
	if dt < 0 {
		dt = 0
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}

	if g.Phase() == component.PhasePlaying {
		g.advance(dt)
	} else {
		g.aim = nil
	}

	if g.sink != nil {
		g.sink.Publish(g.Snapshot())
	}
}

// advance runs one Playing tick of dt simulation seconds.
func (g *Game) advance(dt float64) {
	g.World.GameTime += dt
	now := g.World.GameTime
	p := &g.Player

	// игрок
	g.MovementSystem.MovePlayer(p)
	g.EffectSystem.Update(p, now)
	if g.aim != nil {
		g.PlayerSystem.Shoot(p, now, g.aim.X, g.aim.Y)
		g.aim = nil
	}

	// появление
	elapsed := g.ProgressionSystem.Elapsed(now)
	for _, e := range g.EnemyGenerator.Generate(g.Score, elapsed) {
		e.LastShot = now
		g.World.Enemies = append(g.World.Enemies, e)
	}
	g.World.PowerUps = append(g.World.PowerUps, g.PowerUpGenerator.Generate(elapsed)...)

	// движение и стрельба врагов
	g.MovementSystem.MoveEnemies(g.World, dt)
	g.EnemyFireSystem.Update(now, g.World, p)
	g.MovementSystem.MovePowerUps(g.World)

	fx := g.CombatSystem.Resolve(now, g.World, p)
	g.Score += fx.ScoreDelta
	g.Defeated += fx.EnemiesDefeated
	p.ClampLives()

	g.ProgressionSystem.Update(now, p.Lives, g.Score)
}

// HandlePointerDown aims a shot at (x, y); it is fired on the next tick.
func (g *Game) HandlePointerDown(x, y float64) {
	if g.Phase() != component.PhasePlaying {
		return
	}
	g.aim = &component.Position{X: x, Y: y}
}

// SetMoveIntent sets horizontal movement: -1 left, 0 stop, +1 right.
func (g *Game) SetMoveIntent(dir int) {
	g.Player.MoveIntent = utils.ClampInt(dir, -1, 1)
}

func (g *Game) TogglePause() {
	g.ProgressionSystem.TogglePause()
	g.logger.Info("pause toggled", "phase", g.Phase())
}
