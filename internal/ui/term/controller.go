package term

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/system"
)

// Терминал не сообщает об отпускании клавиш, поэтому движение держится
// несколько тиков после нажатия.
const moveHoldTicks = 8

// Command is what the main loop should do after a key press.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandRestart
)

// Controller maps terminal keys to game actions.
type Controller struct {
	game     *app.Game
	logger   *slog.Logger
	moveDir  int
	moveLeft int
	Message  string
}

func NewController(g *app.Game, logger *slog.Logger) *Controller {
	return &Controller{game: g, logger: logger.With("component", "term")}
}

// SetGame switches the controller to a new run.
func (c *Controller) SetGame(g *app.Game) {
	c.game = g
	c.moveDir, c.moveLeft = 0, 0
	c.Message = ""
}

// Tick decays the held move intent. Call once per frame before Game.Update.
func (c *Controller) Tick() {
	if c.moveLeft > 0 {
		c.moveLeft--
	} else {
		c.moveDir = 0
	}
	c.game.SetMoveIntent(c.moveDir)
}

func (c *Controller) move(dir int) {
	c.moveDir = dir
	c.moveLeft = moveHoldTicks
}

// HandleKey applies one key press.
func (c *Controller) HandleKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyLeft:
		c.move(-1)
		return CommandNone
	case tcell.KeyRight:
		c.move(1)
		return CommandNone
	case tcell.KeyEnter:
		return c.enter()
	case tcell.KeyF1, tcell.KeyF2, tcell.KeyF3:
		c.save(int(ev.Key()-tcell.KeyF1) + 1)
		return CommandNone
	case tcell.KeyF5, tcell.KeyF6, tcell.KeyF7:
		c.load(int(ev.Key()-tcell.KeyF5) + 1)
		return CommandNone
	case tcell.KeyRune:
	default:
		return CommandNone
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return CommandQuit
	case r == 'a' || r == 'h':
		c.move(-1)
	case r == 'd' || r == 'l':
		c.move(1)
	case r == ' ':
		// стреляем вертикально вверх
		p := c.game.Player.Center()
		c.game.HandlePointerDown(p.X, 0)
	case r == 'p':
		c.game.TogglePause()
	case r == 'r':
		if refund, err := c.game.ResetUpgrades(); err != nil {
			c.Message = err.Error()
		} else {
			c.Message = fmt.Sprintf("Refunded %d points", refund)
		}
	case r >= '1' && r <= '9':
		c.buy(int(r - '1'))
	}
	return CommandNone
}

func (c *Controller) enter() Command {
	switch phase := c.game.Phase(); {
	case phase == component.PhaseIntermission:
		if err := c.game.Continue(); err != nil {
			c.Message = err.Error()
		}
	case phase.Terminal():
		return CommandRestart
	}
	return CommandNone
}

func (c *Controller) buy(i int) {
	keys := c.game.Lib.UpgradeKeys
	if i >= len(keys) || c.game.Phase() != component.PhaseIntermission {
		return
	}
	err := c.game.BuyUpgrade(keys[i])
	switch {
	case err == nil:
		c.Message = fmt.Sprintf("Bought %s", keys[i])
	case errors.Is(err, system.ErrInsufficientPoints):
		c.Message = "Not enough points"
	default:
		c.Message = err.Error()
	}
}

func (c *Controller) save(slot int) {
	if c.game.Save(slot) {
		c.Message = fmt.Sprintf("Saved to slot %d", slot)
		return
	}
	c.Message = fmt.Sprintf("Could not save to slot %d", slot)
}

func (c *Controller) load(slot int) {
	if c.game.Load(slot) {
		c.Message = fmt.Sprintf("Loaded slot %d", slot)
		return
	}
	c.Message = fmt.Sprintf("Slot %d is empty or unreadable", slot)
	c.logger.Debug("load failed", "slot", slot)
}
