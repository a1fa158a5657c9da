// Package limitless adapts the arena simulation to the platform's Game
// interface: terminal cells map onto world units, input actions become
// simulation input, and snapshots are drawn into a screen buffer.
package limitless

import (
	"math"

	"github.com/vovakirdan/limitless/internal/config"
	"github.com/vovakirdan/limitless/internal/core"
	"github.com/vovakirdan/limitless/internal/registry"
	"github.com/vovakirdan/limitless/internal/sim"
)

// Cell geometry: one terminal cell covers CellW x CellH world units.
// Terminal cells are roughly twice as tall as wide.
const (
	CellW   = 10.0
	CellH   = 20.0
	HUDRows = 2 // rows reserved above the arena
)

// Minimum terminal size the arena renders in.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Variant is a registered difficulty flavor with its own leaderboard.
type Variant struct {
	ID     string
	Title  string
	Preset config.DifficultyPreset
}

// Variants lists every registered flavor.
var Variants = []Variant{
	{ID: "limitless", Title: "Limitless", Preset: config.DifficultyNormal},
	{ID: "limitless_easy", Title: "Limitless (Easy)", Preset: config.DifficultyEasy},
	{ID: "limitless_hard", Title: "Limitless (Hard)", Preset: config.DifficultyHard},
	{ID: "limitless_fixed", Title: "Limitless (Fixed Wave)", Preset: config.DifficultyFixed},
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// LoadConfig loads the tuning file and applies the variant's preset.
// A broken config file falls back to the defaults.
func LoadConfig(preset config.DifficultyPreset) (config.GameConfig, error) {
	cfg, err := config.Load(configPath)
	config.ApplyPreset(&cfg, preset)
	return cfg, err
}

// Game implements registry.Game over a sim.Session.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.GameConfig
	session *sim.Session

	paused   bool
	tooSmall bool
	loadErr  error
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset creates a fresh session waiting on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	cfg, err := LoadConfig(g.variant.Preset)
	g.cfg = cfg
	g.loadErr = err

	w, h := WorldSize(runtime.ScreenW, runtime.ScreenH)
	g.session = sim.NewSession(cfg, w, h, runtime.Seed)
	g.paused = false
	g.tooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
}

// ConfigError returns the error from the last config load, if any.
func (g *Game) ConfigError() error {
	return g.loadErr
}

// Resize maps new terminal dimensions onto the world without a reset.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.tooSmall = width < MinScreenW || height < MinScreenH
	if g.session != nil {
		g.session.SetViewport(WorldSize(width, height))
	}
}

// Step advances one tick. Title and game over screens wait for
// Confirm/Restart; Pause freezes the frame driver.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session

	switch s.State() {
	case sim.StateMenu:
		if in.Has(core.ActionConfirm) {
			s.Start()
		}
		return g.result(s.Events())

	case sim.StateGameOver:
		g.paused = false
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			s.Restart()
		}
		return g.result(s.Events())
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return g.result(s.Events())
	}
	return g.result(s.Tick(g.simInput(in)))
}

func (g *Game) result(events []core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

var castActions = []struct {
	action core.Action
	kind   sim.AbilityKind
}{
	{core.ActionBlue, sim.AbilityBlue},
	{core.ActionRed, sim.AbilityRed},
	{core.ActionPurple, sim.AbilityPurple},
	{core.ActionDomain, sim.AbilityDomain},
}

// simInput translates platform actions into simulation input.
func (g *Game) simInput(in core.InputFrame) sim.Input {
	out := sim.Input{
		Up:              in.Has(core.ActionUp),
		Down:            in.Has(core.ActionDown),
		Left:            in.Has(core.ActionLeft),
		Right:           in.Has(core.ActionRight),
		ToggleLimitless: in.Has(core.ActionLimitless),
	}
	if in.HasPointer {
		out.Aim = CellToWorld(in.Pointer.X, in.Pointer.Y)
		out.HasAim = true
	}
	for _, c := range castActions {
		if in.Has(c.action) {
			out.Casts = append(out.Casts, c.kind)
		}
	}
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{InMenu: true}
	}
	st := g.session.Stats()
	state := g.session.State()
	return core.GameState{
		Score:    st.Score,
		Wave:     st.Wave,
		Kills:    st.Kills,
		Tick:     st.Tick,
		InMenu:   state == sim.StateMenu,
		GameOver: state == sim.StateGameOver,
		Paused:   g.paused,
	}
}

// Session exposes the underlying simulation.
func (g *Game) Session() *sim.Session {
	return g.session
}

// WorldSize returns the world bounds covered by a terminal of w x h cells.
func WorldSize(w, h int) (float64, float64) {
	return float64(core.Max(w, 1)) * CellW, float64(core.Max(h-HUDRows, 1)) * CellH
}

// CellToWorld returns the world position at the center of a screen cell.
func CellToWorld(cx, cy float64) core.Vec2 {
	return core.V((cx+0.5)*CellW, (cy-HUDRows+0.5)*CellH)
}

// WorldToCell returns the screen cell containing a world position.
func WorldToCell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X / CellW)), int(math.Floor(p.Y/CellH)) + HUDRows
}

// Register the variants with the registry
func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
