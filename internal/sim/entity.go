// Package sim implements the Limitless arena simulation: entities, the
// ability resolver, the per-tick step and the session state machine.
// It has no terminal or I/O dependencies; one Tick call advances one frame.
package sim

import "github.com/vovakirdan/limitless/internal/core"

// EntityID identifies an enemy or projectile within one registry.
type EntityID uint64

// EnemyKind is the enemy variant.
type EnemyKind uint8

const (
	EnemyBasic EnemyKind = iota
	EnemyTank
	EnemySpeedster
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyTank:
		return "tank"
	case EnemySpeedster:
		return "speedster"
	default:
		return "unknown"
	}
}

// ProjectileKind is the projectile variant.
type ProjectileKind uint8

const (
	ProjectileBlue ProjectileKind = iota
	ProjectileRed
	ProjectilePurple
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileBlue:
		return "blue"
	case ProjectileRed:
		return "red"
	case ProjectilePurple:
		return "purple"
	default:
		return "unknown"
	}
}

// AbilityKind is a castable ability.
type AbilityKind uint8

const (
	AbilityBlue AbilityKind = iota
	AbilityRed
	AbilityPurple
	AbilityDomain
)

// Abilities lists every ability in hotkey order.
var Abilities = [...]AbilityKind{AbilityBlue, AbilityRed, AbilityPurple, AbilityDomain}

func (k AbilityKind) String() string {
	switch k {
	case AbilityBlue:
		return "blue"
	case AbilityRed:
		return "red"
	case AbilityPurple:
		return "purple"
	case AbilityDomain:
		return "domain"
	default:
		return "unknown"
	}
}

// Player is the controlled avatar. There is exactly one per session.
type Player struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Recoil    core.Vec2 // decaying impulse added to Vel each tick
	Radius    float64
	HP        float64 // may read below zero on the tick that ends the run
	MaxHP     float64
	Energy    float64
	MaxEnergy float64
	Limitless bool
	Facing    float64 // radians
}

// Enemy pursues the player.
type Enemy struct {
	ID     EntityID
	Kind   EnemyKind
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	HP     float64
	MaxHP  float64
	Damage float64
	Speed  float64
	Color  core.Color

	dead bool
}

// Projectile is a Blue, Red or Purple cast, or a fusion wave.
// A wave is a Purple with IsWave set: Radius and Damage-on-contact are
// ignored and the kill radius derives from Scale.
type Projectile struct {
	ID          EntityID
	Kind        ProjectileKind
	Pos         core.Vec2
	Vel         core.Vec2
	Radius      float64
	Scale       float64
	Duration    int
	MaxDuration int
	Damage      float64
	IsWave      bool
	Color       core.Color

	spent bool
}

// Particle is cosmetic only.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Life    float64
	MaxLife float64
	Color   core.Color
	Size    float64
}

// Fade returns the remaining life ratio in [0, 1].
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// Cooldowns holds remaining ticks per ability. Zero means ready.
type Cooldowns struct {
	Blue   int
	Red    int
	Purple int
	Domain int
}

// Of returns the cooldown for one ability.
func (c Cooldowns) Of(k AbilityKind) int {
	switch k {
	case AbilityBlue:
		return c.Blue
	case AbilityRed:
		return c.Red
	case AbilityPurple:
		return c.Purple
	case AbilityDomain:
		return c.Domain
	default:
		return 0
	}
}

func (c *Cooldowns) set(k AbilityKind, ticks int) {
	switch k {
	case AbilityBlue:
		c.Blue = ticks
	case AbilityRed:
		c.Red = ticks
	case AbilityPurple:
		c.Purple = ticks
	case AbilityDomain:
		c.Domain = ticks
	}
}

func (c *Cooldowns) tick() {
	for _, p := range []*int{&c.Blue, &c.Red, &c.Purple, &c.Domain} {
		if *p > 0 {
			*p--
		}
	}
}

// Stats are the per-run counters.
type Stats struct {
	Score int
	Wave  int
	Kills int
	Tick  int
}

// Palette
const (
	colorPlayer    = core.ColorBrightWhite
	colorBlue      = core.ColorBrightCyan
	colorRed       = core.ColorOrange
	colorPurple    = core.ColorViolet
	colorBasic     = core.ColorGray
	colorTank      = core.ColorRed
	colorSpeedster = core.ColorGreen
	colorSpark     = core.ColorBrightWhite
)

// PlayerColor is the color renderers use for the avatar.
const PlayerColor = colorPlayer
