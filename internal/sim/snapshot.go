package sim

import "github.com/vovakirdan/limitless/internal/core"

// AbilityStatus is the UI view of one ability slot.
type AbilityStatus struct {
	Kind        AbilityKind
	Cost        float64
	Cooldown    int // remaining ticks
	MaxCooldown int
	Ready       bool // off cooldown
	Affordable  bool // enough energy
}

// Snapshot is a deep copy of everything a renderer or HUD needs.
// Mutating it never affects the session.
type Snapshot struct {
	State           State
	Tick            int
	ViewW, ViewH    float64
	Player          Player
	Enemies         []Enemy
	Projectiles     []Projectile
	Particles       []Particle
	Cooldowns       Cooldowns
	Abilities       []AbilityStatus
	Stats           Stats
	DomainActive    bool
	DomainRemaining int
	Aim             core.Vec2 // effective aim point
	AimSet          bool      // false while aim falls back to the facing
	WaveReach       float64
}

// Snapshot copies the live state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:           s.state,
		Tick:            s.stats.Tick,
		ViewW:           s.viewW,
		ViewH:           s.viewH,
		Player:          s.reg.Player,
		Enemies:         make([]Enemy, 0, len(s.reg.Enemies)),
		Projectiles:     make([]Projectile, 0, len(s.reg.Projectiles)),
		Particles:       make([]Particle, len(s.reg.Particles)),
		Cooldowns:       s.cooldowns,
		Abilities:       make([]AbilityStatus, 0, len(Abilities)),
		Stats:           s.stats,
		DomainActive:    s.DomainActive(),
		DomainRemaining: s.domainTimer,
		WaveReach:       s.cfg.Fusion.Reach,
	}

	for _, e := range s.reg.Enemies {
		snap.Enemies = append(snap.Enemies, *e)
	}
	for _, p := range s.reg.Projectiles {
		snap.Projectiles = append(snap.Projectiles, *p)
	}
	copy(snap.Particles, s.reg.Particles)

	for _, k := range Abilities {
		cd := s.cooldowns.Of(k)
		snap.Abilities = append(snap.Abilities, AbilityStatus{
			Kind:        k,
			Cost:        s.Cost(k),
			Cooldown:    cd,
			MaxCooldown: s.CooldownTicks(k),
			Ready:       cd == 0,
			Affordable:  s.reg.Player.Energy >= s.Cost(k),
		})
	}

	snap.Aim = s.Aim()
	snap.AimSet = s.hasAim
	return snap
}

// WaveRadius returns the kill radius of a wave projectile in this snapshot.
func (snap Snapshot) WaveRadius(p Projectile) float64 {
	return WaveRadius(snap.WaveReach, snap.ViewW, snap.ViewH, p.Scale)
}
