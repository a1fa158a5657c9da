package sim

import (
	"testing"

	"github.com/vovakirdan/limitless/internal/config"
	"github.com/vovakirdan/limitless/internal/core"
)

const (
	testW = 1000
	testH = 1000
)

// newPlaying returns a started session on a 1000x1000 viewport with the
// player at (500, 500). Particles are off unless a test turns them on.
func newPlaying(t *testing.T) *Session {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Particles.Enabled = false
	s := NewSession(cfg, testW, testH, 42)
	if !s.Start() {
		t.Fatal("Start() from Menu should succeed")
	}
	s.Events()
	return s
}

// newQuiet is newPlaying with spawning switched off, for long runs that
// must not end in a game over.
func newQuiet(t *testing.T) *Session {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Particles.Enabled = false
	cfg.Spawn.BaseInterval = 1 << 30
	s := NewSession(cfg, testW, testH, 42)
	if !s.Start() {
		t.Fatal("Start() from Menu should succeed")
	}
	s.Events()
	return s
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestStateMachine(t *testing.T) {
	s := NewSession(config.DefaultConfig(), testW, testH, 1)

	if s.State() != StateMenu {
		t.Fatalf("new session state = %v, expected menu", s.State())
	}
	if s.Restart() {
		t.Error("Restart() from Menu should be rejected")
	}

	// Tick is a no-op outside Playing
	s.Tick(Input{Right: true})
	if s.Stats().Tick != 0 {
		t.Errorf("Tick in Menu advanced the clock to %d", s.Stats().Tick)
	}

	if !s.Start() {
		t.Fatal("Start() from Menu should succeed")
	}
	ev := s.Events()
	if len(ev) != 1 || ev[0].Kind != core.EventStateChanged || ev[0].Label != "playing" {
		t.Errorf("Start events = %+v, expected one state_changed(playing)", ev)
	}
	if s.Start() {
		t.Error("Start() from Playing should be rejected")
	}
	if s.Restart() {
		t.Error("Restart() from Playing should be rejected")
	}

	// Kill the player
	s.reg.Player.HP = 1
	s.reg.AddEnemy(Enemy{Pos: s.reg.Player.Pos.Add(core.V(5, 0)), Radius: 15, HP: 100, Damage: 10, Speed: 1})
	ev = s.Tick(Input{})
	if s.State() != StateGameOver {
		t.Fatalf("state after lethal contact = %v, expected game_over", s.State())
	}
	if !hasEvent(ev, core.EventGameOver) {
		t.Error("game over tick should emit EventGameOver")
	}

	if !s.Restart() {
		t.Fatal("Restart() from GameOver should succeed")
	}
	snap := s.Snapshot()
	if snap.Player.HP != snap.Player.MaxHP || len(snap.Enemies) != 0 || snap.Stats != (Stats{Wave: 1}) {
		t.Errorf("Restart did not reset the run: %+v", snap.Stats)
	}
}

func TestDeterminism(t *testing.T) {
	// Two sessions with the same seed and inputs should stay identical
	run := func() Snapshot {
		cfg := config.DefaultConfig()
		s := NewSession(cfg, 800, 600, 12345)
		s.Start()
		for i := 0; i < 900; i++ {
			in := Input{Left: i%200 < 100, Down: i%300 < 150}
			if i == 100 {
				in.Casts = []AbilityKind{AbilityRed}
				in.Aim, in.HasAim = core.V(100, 100), true
			}
			s.Tick(in)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Stats != b.Stats {
		t.Errorf("stats mismatch: %+v vs %+v", a.Stats, b.Stats)
	}
	if len(a.Enemies) != len(b.Enemies) {
		t.Fatalf("enemy count mismatch: %d vs %d", len(a.Enemies), len(b.Enemies))
	}
	for i := range a.Enemies {
		if a.Enemies[i].Pos != b.Enemies[i].Pos {
			t.Errorf("enemy %d position mismatch: %v vs %v", i, a.Enemies[i].Pos, b.Enemies[i].Pos)
		}
	}
	if len(a.Particles) != len(b.Particles) {
		t.Errorf("particle count mismatch: %d vs %d", len(a.Particles), len(b.Particles))
	}
}

func TestSetViewportKeepsState(t *testing.T) {
	s := newPlaying(t)
	s.reg.AddEnemy(Enemy{Pos: core.V(10, 10), Radius: 15, HP: 50, Speed: 1})
	s.Tick(Input{})

	s.SetViewport(400, 300)
	if w, h := s.Viewport(); w != 400 || h != 300 {
		t.Errorf("Viewport() = %vx%v, expected 400x300", w, h)
	}
	if len(s.reg.Enemies) != 1 || s.Stats().Tick != 1 {
		t.Error("SetViewport must not reset entities or stats")
	}

	// Next movement clamps the player into the new bounds
	s.Tick(Input{})
	p := s.reg.Player
	if p.Pos.X > 400-p.Radius || p.Pos.Y > 300-p.Radius {
		t.Errorf("player at %v is outside the shrunk viewport", p.Pos)
	}
}

func TestLimitlessOnlyWhilePlaying(t *testing.T) {
	s := NewSession(config.DefaultConfig(), testW, testH, 1)
	s.ToggleLimitless()
	if s.reg.Player.Limitless {
		t.Error("ToggleLimitless in Menu should be ignored")
	}
	if s.TryCast(AbilityBlue, core.V(1, 1)) {
		t.Error("TryCast in Menu should be rejected")
	}

	s.Start()
	s.Tick(Input{ToggleLimitless: true})
	if !s.reg.Player.Limitless {
		t.Error("ToggleLimitless input should activate the shield")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := newPlaying(t)
	s.reg.AddEnemy(Enemy{Pos: core.V(100, 100), Radius: 15, HP: 50})
	s.TryCast(AbilityBlue, core.V(200, 200))
	s.reg.AddParticle(Particle{Life: 10, MaxLife: 10})

	snap := s.Snapshot()
	snap.Enemies[0].HP = -1
	snap.Projectiles[0].Scale = 99
	snap.Particles[0].Life = -1
	snap.Player.HP = -1

	if s.reg.Enemies[0].HP != 50 {
		t.Error("mutating snapshot enemy changed the session")
	}
	if s.reg.Projectiles[0].Scale != 0 {
		t.Error("mutating snapshot projectile changed the session")
	}
	if s.reg.Particles[0].Life != 10 {
		t.Error("mutating snapshot particle changed the session")
	}
	if s.reg.Player.HP != s.reg.Player.MaxHP {
		t.Error("mutating snapshot player changed the session")
	}
}

func TestSnapshotAbilities(t *testing.T) {
	s := newPlaying(t)
	s.reg.Player.Energy = 100
	s.TryCast(AbilityRed, core.V(900, 500))

	snap := s.Snapshot()
	if len(snap.Abilities) != len(Abilities) {
		t.Fatalf("len(Abilities) = %d, expected %d", len(snap.Abilities), len(Abilities))
	}

	want := map[AbilityKind]struct{ ready, affordable bool }{
		AbilityBlue:   {true, true},   // 60 >= 30
		AbilityRed:    {false, true},  // cooling down
		AbilityPurple: {true, false},  // 60 < 80
		AbilityDomain: {true, false},  // 60 < 150
	}
	for _, a := range snap.Abilities {
		w := want[a.Kind]
		if a.Ready != w.ready || a.Affordable != w.affordable {
			t.Errorf("%v: ready=%v affordable=%v, expected %v/%v", a.Kind, a.Ready, a.Affordable, w.ready, w.affordable)
		}
	}
	if snap.Abilities[AbilityRed].MaxCooldown != 180 || snap.Abilities[AbilityRed].Cooldown != 180 {
		t.Errorf("red cooldown = %d/%d, expected 180/180", snap.Abilities[AbilityRed].Cooldown, snap.Abilities[AbilityRed].MaxCooldown)
	}
}

func TestAimDefaultsToFacing(t *testing.T) {
	s := newPlaying(t)
	aim := s.Aim()
	if aim != core.V(600, 500) {
		t.Errorf("default aim = %v, expected 100 units along +X", aim)
	}

	s.Tick(Input{Up: true})
	p := s.reg.Player
	aim = s.Aim()
	if aim.Sub(p.Pos).Normalize().Y > -0.99 {
		t.Errorf("aim %v should follow the new facing (up) from %v", aim, p.Pos)
	}

	s.Tick(Input{Aim: core.V(10, 20), HasAim: true})
	if s.Aim() != core.V(10, 20) {
		t.Errorf("explicit aim = %v, expected (10, 20)", s.Aim())
	}
	// Sticky once supplied
	s.Tick(Input{})
	if s.Aim() != core.V(10, 20) {
		t.Error("aim should persist when the input carries none")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{StateGameOver.String(), "game_over"},
		{EnemySpeedster.String(), "speedster"},
		{ProjectilePurple.String(), "purple"},
		{AbilityDomain.String(), "domain"},
		{State(9).String(), "unknown"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("String() = %q, expected %q", tc.got, tc.want)
		}
	}
}
