package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/fantasyquest/internal/combat"
	"github.com/samdwyer/fantasyquest/internal/config"
	"github.com/samdwyer/fantasyquest/internal/entity"
	"github.com/samdwyer/fantasyquest/internal/gamedata"
	"github.com/samdwyer/fantasyquest/internal/shop"
	"github.com/samdwyer/fantasyquest/internal/telemetry"
	"github.com/samdwyer/fantasyquest/internal/ui"
)

// Console is everything the session needs from the terminal.
// *ui.Console implements it.
type Console interface {
	Print(tone ui.Tone, format string, args ...any)
	PrintColor(color tcell.Color, format string, args ...any)
	Panel(title string, tone ui.Tone, body ...string)
	Table(title string, columns [2]string, rows [][2]string)
	Ask(ctx context.Context, prompt string) (string, error)
	Choose(ctx context.Context, prompt string, choices []string) (string, error)
	Pause(ctx context.Context, d time.Duration)
	WaitKey(ctx context.Context, prompt string) error
}

// exitPrompt holds the final frame until the player dismisses it.
const exitPrompt = "Press any key to exit..."

var _ Console = (*ui.Console)(nil)

// Option customizes a Game.
type Option func(*Game)

// WithSource replaces the seeded random source used for spawns and rolls.
func WithSource(src combat.Source) Option {
	return func(g *Game) { g.rng = src }
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// Game holds the entire session state.
type Game struct {
	cfg       config.GameConfig
	console   Console
	enemies   *gamedata.EnemyRegistry
	shop      *shop.Shop
	rng       combat.Source
	logger    *zap.Logger
	sessionID string

	state  State
	player *entity.Player
	enemy  gamedata.EnemyDef // template picked for the next encounter
}

// New creates a new game session. The catalogs are shared read-only.
func New(cfg config.GameConfig, console Console, enemies *gamedata.EnemyRegistry, items *gamedata.ItemRegistry, opts ...Option) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:       cfg,
		console:   console,
		enemies:   enemies,
		shop:      shop.New(items),
		rng:       rand.New(rand.NewSource(seed)),
		logger:    zap.NewNop(),
		sessionID: uuid.NewString(),
		state:     StateIntro,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String("session_id", g.sessionID))
	return g
}

// State returns the current state.
func (g *Game) State() State { return g.state }

// Player returns the hero, or nil before character creation.
func (g *Game) Player() *entity.Player { return g.player }

// Run executes the session state machine until it reaches StateQuit.
// Closing the console counts as quitting.
func (g *Game) Run(ctx context.Context) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "session.run")
	defer span.End()
	span.SetAttributes(attribute.String("session.id", g.sessionID))

	g.logger.Info("session started")

	for g.state != StateQuit {
		next, err := g.step(ctx)
		if errors.Is(err, ui.ErrClosed) {
			g.logger.Info("console closed", zap.Stringer("state", g.state))
			next, err = StateQuit, nil
		}
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("%s: %w", g.state, err)
		}
		g.state = next
	}

	if g.player != nil {
		span.SetAttributes(
			attribute.String("player.name", g.player.Name),
			attribute.Int("player.level", g.player.Level),
			attribute.Int("player.gold", g.player.Gold),
		)
	}
	g.logger.Info("session ended")
	return nil
}

// step runs the current state and returns the next one.
func (g *Game) step(ctx context.Context) (State, error) {
	switch g.state {
	case StateIntro:
		g.displayIntro(ctx)
		return StateCharacterCreation, nil
	case StateCharacterCreation:
		return g.createCharacter(ctx)
	case StateMainMenu:
		return g.mainMenu(ctx)
	case StateCombat:
		return g.runCombat(ctx)
	case StateShop:
		return g.visitShop(ctx)
	case StateGameOver:
		g.gameOver()
		return StateQuit, g.console.WaitKey(ctx, exitPrompt)
	default:
		return StateQuit, fmt.Errorf("unexpected state %d", g.state)
	}
}

func (g *Game) displayIntro(ctx context.Context) {
	g.console.Panel("Fantasy Quest", ui.ToneWarn,
		"Welcome to the Fantasy RPG Adventure!",
		"",
		"Embark on an epic journey through dangerous lands...",
	)
	g.console.Pause(ctx, g.cfg.IntroPause)
}

func (g *Game) createCharacter(ctx context.Context) (State, error) {
	g.console.Print(ui.ToneTitle, "\nCharacter Creation")

	var name string
	for name == "" {
		answer, err := g.console.Ask(ctx, "Enter your hero's name")
		if err != nil {
			return StateCharacterCreation, err
		}
		name = strings.TrimSpace(answer)
	}

	g.player = entity.NewPlayer(name)
	g.logger = g.logger.With(zap.String("player", name))
	g.logger.Info("character created")
	g.console.Print(ui.ToneGood, "\nWelcome, %s! Your adventure begins...", name)
	return StateMainMenu, nil
}

func (g *Game) mainMenu(ctx context.Context) (State, error) {
	g.displayStatus()

	g.console.Print(ui.TonePlain, "")
	choice, err := g.console.Choose(ctx, "What would you like to do?", []string{choiceExplore, choiceShop, choiceQuit})
	if err != nil {
		return StateMainMenu, err
	}

	switch choice {
	case choiceExplore:
		def, ok := g.enemies.SpawnRandom(g.rng)
		if !ok {
			return StateMainMenu, errors.New("enemy catalog is empty")
		}
		g.enemy = def
		return StateCombat, nil
	case choiceShop:
		return StateShop, nil
	default:
		g.console.Print(ui.ToneWarn, "Thanks for playing!")
		g.logger.Info("player quit", zap.Int("level", g.player.Level))
		return StateQuit, g.console.WaitKey(ctx, exitPrompt)
	}
}

func (g *Game) gameOver() {
	g.console.Panel("", ui.ToneBad,
		"Game Over!",
		"",
		fmt.Sprintf("Your adventure ends here, %s...", g.player.Name),
	)
	g.logger.Info("game over", zap.Int("level", g.player.Level))
}

// displayStatus prints the hero's status table.
func (g *Game) displayStatus() {
	g.console.Table(g.player.Name+"'s Status", [2]string{"Attribute", "Value"}, statusRows(g.player))
}

func statusRows(p *entity.Player) [][2]string {
	return [][2]string{
		{"Health", fmt.Sprintf("%d/%d", p.Health, p.MaxHealth)},
		{"Level", strconv.Itoa(p.Level)},
		{"Experience", strconv.Itoa(p.Exp)},
		{"Gold", strconv.Itoa(p.Gold)},
		{"Inventory", strings.Join(p.Inventory, ", ")},
	}
}
