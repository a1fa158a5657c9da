package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/limitless/internal/core"
)

func TestBlueCastAndGrowth(t *testing.T) {
	s := newPlaying(t)
	p := s.reg.Player
	if p.Pos != core.V(500, 500) || p.Energy != 1000 {
		t.Fatalf("unexpected start: pos=%v energy=%v", p.Pos, p.Energy)
	}

	if !s.TryCast(AbilityBlue, core.V(600, 500)) {
		t.Fatal("Blue cast should succeed")
	}
	if s.reg.Player.Energy != 970 {
		t.Errorf("energy after Blue = %v, expected 970", s.reg.Player.Energy)
	}
	if len(s.reg.Projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(s.reg.Projectiles))
	}
	blue := s.reg.Projectiles[0]
	if blue.Kind != ProjectileBlue || blue.Scale != 0 || blue.Radius != 0 || blue.Pos != core.V(600, 500) {
		t.Errorf("new Blue = %+v, expected scale 0 at (600, 500)", *blue)
	}

	for i := 0; i < 19; i++ {
		s.Tick(Input{})
	}
	want := s.cfg.Abilities.Blue.Radius * 0.95
	if blue.Radius < want-1e-9 {
		t.Errorf("Blue radius after 19 ticks = %v, expected >= %v", blue.Radius, want)
	}

	// Growth caps at full radius
	for i := 0; i < 30; i++ {
		s.Tick(Input{})
	}
	if blue.Scale != 1 || blue.Radius != s.cfg.Abilities.Blue.Radius {
		t.Errorf("Blue should cap at scale 1, got scale=%v radius=%v", blue.Scale, blue.Radius)
	}
}

func TestDomainRecastRejected(t *testing.T) {
	s := newPlaying(t)

	if !s.TryCast(AbilityDomain, core.V(0, 0)) {
		t.Fatal("first Domain cast should succeed")
	}
	energy := s.reg.Player.Energy
	if energy != 850 {
		t.Errorf("energy after Domain = %v, expected 850", energy)
	}

	if s.TryCast(AbilityDomain, core.V(0, 0)) {
		t.Error("second Domain cast should be rejected while cooling down")
	}
	if s.reg.Player.Energy != energy {
		t.Errorf("rejected cast changed energy: %v -> %v", energy, s.reg.Player.Energy)
	}
	if s.cooldowns.Domain != 1800 {
		t.Errorf("domain cooldown = %d, expected 1800", s.cooldowns.Domain)
	}
	if s.domainTimer != 420 {
		t.Errorf("domain timer = %d, expected 420", s.domainTimer)
	}
}

func TestCastRejectionIsIdempotent(t *testing.T) {
	for _, k := range Abilities {
		t.Run(k.String(), func(t *testing.T) {
			s := newPlaying(t)
			s.cooldowns.set(k, 5)

			before := s.Snapshot()
			events := len(s.events)
			if s.TryCast(k, core.V(700, 500)) {
				t.Fatal("cast on cooldown should be rejected")
			}
			after := s.Snapshot()

			if after.Player != before.Player {
				t.Errorf("player changed: %+v -> %+v", before.Player, after.Player)
			}
			if after.Cooldowns != before.Cooldowns {
				t.Errorf("cooldowns changed: %+v -> %+v", before.Cooldowns, after.Cooldowns)
			}
			if len(after.Projectiles) != len(before.Projectiles) || after.DomainRemaining != before.DomainRemaining {
				t.Error("rejected cast spawned an effect")
			}
			if len(s.events) != events {
				t.Error("rejected cast emitted an event")
			}
		})
	}
}

func TestCastRejectedWhenUnaffordable(t *testing.T) {
	s := newPlaying(t)
	s.reg.Player.Energy = 79

	if s.TryCast(AbilityPurple, core.V(700, 500)) {
		t.Error("Purple with 79 energy should be rejected")
	}
	if s.reg.Player.Energy != 79 || s.cooldowns.Purple != 0 {
		t.Error("unaffordable cast mutated state")
	}
	if !s.TryCast(AbilityRed, core.V(700, 500)) {
		t.Error("Red with 79 energy should succeed")
	}
}

func TestRedAndPurpleFlyTowardAim(t *testing.T) {
	s := newPlaying(t)

	s.TryCast(AbilityRed, core.V(500, 900))
	red := s.reg.Projectiles[0]
	if math.Abs(red.Vel.X) > 1e-9 || math.Abs(red.Vel.Y-8) > 1e-9 {
		t.Errorf("Red velocity = %v, expected (0, 8)", red.Vel)
	}

	s.TryCast(AbilityPurple, core.V(100, 500))
	purple := s.reg.Projectiles[1]
	if math.Abs(purple.Vel.X+12) > 1e-9 || math.Abs(purple.Vel.Y) > 1e-9 {
		t.Errorf("Purple velocity = %v, expected (-12, 0)", purple.Vel)
	}
	if purple.Pos != core.V(500, 500) {
		t.Errorf("Purple should start at the player, got %v", purple.Pos)
	}
}

func TestCastAtPlayerUsesFacing(t *testing.T) {
	s := newPlaying(t)
	s.reg.Player.Facing = math.Pi / 2

	s.TryCast(AbilityRed, s.reg.Player.Pos)
	v := s.reg.Projectiles[0].Vel
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-8) > 1e-9 {
		t.Errorf("Red velocity = %v, expected facing direction (0, 8)", v)
	}
}

func TestPurpleRecoil(t *testing.T) {
	s := newPlaying(t)
	start := s.reg.Player.Pos

	s.TryCast(AbilityPurple, core.V(900, 500))
	if s.reg.Player.Recoil != core.V(-10, 0) {
		t.Fatalf("recoil = %v, expected (-10, 0)", s.reg.Player.Recoil)
	}

	s.Tick(Input{})
	moved := s.reg.Player.Pos.X - start.X
	if math.Abs(moved+10) > 1e-9 {
		t.Errorf("player moved %v on the recoil tick, expected -10", moved)
	}

	// Recoil decays and eventually stops
	for i := 0; i < 60; i++ {
		s.Tick(Input{})
	}
	if !s.reg.Player.Recoil.IsZero() {
		t.Errorf("recoil should have decayed to zero, got %v", s.reg.Player.Recoil)
	}
}

func TestCastEmitsEvent(t *testing.T) {
	s := newPlaying(t)
	ev := s.Tick(Input{Casts: []AbilityKind{AbilityBlue, AbilityBlue}, Aim: core.V(1, 1), HasAim: true})

	casts := 0
	for _, e := range ev {
		if e.Kind == core.EventCast {
			casts++
			if e.Label != "blue" {
				t.Errorf("cast label = %q, expected blue", e.Label)
			}
		}
	}
	if casts != 1 {
		t.Errorf("expected 1 cast event for a double press, got %d", casts)
	}
}
