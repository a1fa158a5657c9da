package sim

import (
	"math/rand"

	"github.com/vovakirdan/limitless/internal/config"
	"github.com/vovakirdan/limitless/internal/core"
)

// State is the session phase.
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Input is one tick's worth of player intent.
type Input struct {
	Up, Down, Left, Right bool

	// Aim is the aim point in world units. When HasAim is false the last
	// supplied aim point is reused.
	Aim    core.Vec2
	HasAim bool

	Casts           []AbilityKind
	ToggleLimitless bool
}

// MoveDir returns the unit movement direction from the held flags.
func (in Input) MoveDir() core.Vec2 {
	var d core.Vec2
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	return d.Normalize()
}

// Session is one player's game: the registry plus timers, stats and state.
// It is not safe for concurrent use.
type Session struct {
	cfg config.GameConfig
	reg *Registry

	cooldowns   Cooldowns
	stats       Stats
	domainTimer int
	state       State

	viewW, viewH float64

	rng *rand.Rand // gameplay: spawn angles and variants
	fx  *rand.Rand // particles only

	aim    core.Vec2
	hasAim bool

	events []core.Event
}

// NewSession creates a session in the Menu state with a w×h viewport.
func NewSession(cfg config.GameConfig, w, h float64, seed int64) *Session {
	s := &Session{
		cfg:   cfg,
		reg:   NewRegistry(),
		viewW: w,
		viewH: h,
		rng:   rand.New(rand.NewSource(seed)),
		fx:    rand.New(rand.NewSource(seed ^ 0x5eed)),
		state: StateMenu,
	}
	s.reset()
	return s
}

// Config returns the tuning the session runs with.
func (s *Session) Config() config.GameConfig {
	return s.cfg
}

// State returns the current session phase.
func (s *Session) State() State {
	return s.state
}

// Stats returns the run counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Registry exposes the live registry. Callers outside the package should
// prefer Snapshot.
func (s *Session) Registry() *Registry {
	return s.reg
}

// Viewport returns the world bounds.
func (s *Session) Viewport() (w, h float64) {
	return s.viewW, s.viewH
}

// SetViewport updates the world bounds without resetting any state.
func (s *Session) SetViewport(w, h float64) {
	s.viewW, s.viewH = w, h
}

// Start moves Menu to Playing with a fresh run. It reports whether the
// transition happened.
func (s *Session) Start() bool {
	if s.state != StateMenu {
		return false
	}
	s.reset()
	s.setState(StatePlaying)
	return true
}

// Restart moves GameOver to Playing with a fresh run.
func (s *Session) Restart() bool {
	if s.state != StateGameOver {
		return false
	}
	s.reset()
	s.setState(StatePlaying)
	return true
}

// Events returns and clears events raised outside Tick (Start, Restart, TryCast).
func (s *Session) Events() []core.Event {
	ev := s.events
	s.events = nil
	return ev
}

// Tick applies the input's triggers and advances one simulation step.
// It returns every event raised since the previous call. It is a no-op
// unless the session is Playing.
func (s *Session) Tick(in Input) []core.Event {
	if s.state == StatePlaying {
		if in.HasAim {
			s.aim = in.Aim
			s.hasAim = true
		}
		if in.ToggleLimitless {
			s.ToggleLimitless()
		}
		for _, k := range in.Casts {
			s.TryCast(k, s.Aim())
		}
		s.step(in)
	}
	return s.Events()
}

// ToggleLimitless flips the passive shield. It only applies while Playing.
func (s *Session) ToggleLimitless() {
	if s.state != StatePlaying {
		return
	}
	s.reg.Player.Limitless = !s.reg.Player.Limitless
}

// Aim returns the effective aim point: the last one supplied, or a point
// ahead of the player along its facing.
func (s *Session) Aim() core.Vec2 {
	if s.hasAim {
		return s.aim
	}
	p := s.reg.Player
	return p.Pos.Add(core.FromAngle(p.Facing).Scale(100))
}

func (s *Session) reset() {
	pc := s.cfg.Player
	s.reg.Clear()
	s.reg.Player = Player{
		Pos:       core.V(s.viewW/2, s.viewH/2),
		Radius:    pc.Radius,
		HP:        pc.MaxHP,
		MaxHP:     pc.MaxHP,
		Energy:    pc.MaxEnergy,
		MaxEnergy: pc.MaxEnergy,
	}
	s.cooldowns = Cooldowns{}
	s.stats = Stats{Wave: 1}
	s.domainTimer = 0
	s.aim = core.Vec2{}
	s.hasAim = false
}

func (s *Session) setState(next State) {
	s.state = next
	s.emit(core.Event{Kind: core.EventStateChanged, Label: next.String()})
	if next == StateGameOver {
		s.emit(core.Event{Kind: core.EventGameOver, Value: s.stats.Score})
	}
}

func (s *Session) emit(e core.Event) {
	s.events = append(s.events, e)
}

// DomainActive reports whether the Domain stun is running.
func (s *Session) DomainActive() bool {
	return s.domainTimer > 0
}
