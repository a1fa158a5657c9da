package sim

import (
	"github.com/vovakirdan/limitless/internal/core"
)

// Cost returns the energy cost of an ability.
func (s *Session) Cost(k AbilityKind) float64 {
	a := s.cfg.Abilities
	switch k {
	case AbilityBlue:
		return a.Blue.Cost
	case AbilityRed:
		return a.Red.Cost
	case AbilityPurple:
		return a.Purple.Cost
	case AbilityDomain:
		return a.Domain.Cost
	default:
		return 0
	}
}

// CooldownTicks returns the full cooldown of an ability.
func (s *Session) CooldownTicks(k AbilityKind) int {
	a := s.cfg.Abilities
	switch k {
	case AbilityBlue:
		return a.Blue.Cooldown
	case AbilityRed:
		return a.Red.Cooldown
	case AbilityPurple:
		return a.Purple.Cooldown
	case AbilityDomain:
		return a.Domain.Cooldown
	default:
		return 0
	}
}

// CanCast reports whether an ability is affordable and off cooldown.
func (s *Session) CanCast(k AbilityKind) bool {
	return s.state == StatePlaying &&
		s.reg.Player.Energy >= s.Cost(k) &&
		s.cooldowns.Of(k) == 0
}

// TryCast executes an ability toward aim. A cast that is unaffordable, on
// cooldown or outside Playing is rejected without touching any state.
func (s *Session) TryCast(k AbilityKind, aim core.Vec2) bool {
	if !s.CanCast(k) {
		return false
	}

	p := &s.reg.Player
	p.Energy -= s.Cost(k)
	s.cooldowns.set(k, s.CooldownTicks(k))

	switch k {
	case AbilityBlue:
		s.castBlue(aim)
	case AbilityRed:
		s.castRed(aim)
	case AbilityPurple:
		s.castPurple(aim)
	case AbilityDomain:
		s.castDomain()
	}

	s.emit(core.Event{Kind: core.EventCast, Label: k.String()})
	return true
}

// castDir is the unit direction from the player toward aim, falling back to
// the facing when aim sits on the player.
func (s *Session) castDir(aim core.Vec2) core.Vec2 {
	p := s.reg.Player
	if aim == p.Pos {
		return core.FromAngle(p.Facing)
	}
	return core.Heading(p.Pos, aim)
}

func (s *Session) castBlue(aim core.Vec2) {
	bc := s.cfg.Abilities.Blue
	s.reg.AddProjectile(Projectile{
		Kind:        ProjectileBlue,
		Pos:         aim,
		Duration:    bc.Duration,
		MaxDuration: bc.Duration,
		Color:       colorBlue,
	})
}

func (s *Session) castRed(aim core.Vec2) {
	rc := s.cfg.Abilities.Red
	s.reg.AddProjectile(Projectile{
		Kind:        ProjectileRed,
		Pos:         s.reg.Player.Pos,
		Vel:         s.castDir(aim).Scale(rc.Speed),
		Radius:      rc.Radius,
		Scale:       1,
		Duration:    rc.Duration,
		MaxDuration: rc.Duration,
		Damage:      rc.Damage,
		Color:       colorRed,
	})
}

func (s *Session) castPurple(aim core.Vec2) {
	pc := s.cfg.Abilities.Purple
	dir := s.castDir(aim)
	s.reg.AddProjectile(Projectile{
		Kind:        ProjectilePurple,
		Pos:         s.reg.Player.Pos,
		Vel:         dir.Scale(pc.Speed),
		Radius:      pc.Radius,
		Scale:       1,
		Duration:    pc.Duration,
		MaxDuration: pc.Duration,
		Damage:      pc.Damage,
		Color:       colorPurple,
	})

	p := &s.reg.Player
	p.Recoil = p.Recoil.Sub(dir.Scale(pc.Recoil))
}

func (s *Session) castDomain() {
	dc := s.cfg.Abilities.Domain
	s.domainTimer = dc.Duration
	s.burst(s.reg.Player.Pos, dc.BurstParticles, colorSpark, 5)
}
