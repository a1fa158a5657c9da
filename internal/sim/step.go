package sim

import (
	"math"

	"github.com/vovakirdan/limitless/internal/core"
)

// recoilFloor is the impulse length below which recoil is dropped.
const recoilFloor = 0.05

// step runs one simulation tick. Phase order matters: later phases see the
// mutations of earlier ones.
func (s *Session) step(in Input) {
	s.stats.Tick++
	// Domain counts as active for the whole tick in which its timer runs out
	domain := s.DomainActive()

	s.movePlayer(in.MoveDir())
	s.drainLimitless()
	s.regenEnergy()
	s.tickTimers()
	s.spawnAndEscalate(domain)
	s.fuseProjectiles()
	s.updateProjectiles()
	halted := s.updateEnemies(domain)
	s.reg.compact()
	if halted {
		return
	}
	s.updateParticles()
}

func (s *Session) movePlayer(dir core.Vec2) {
	pc := s.cfg.Player
	p := &s.reg.Player

	p.Vel = dir.Scale(pc.Speed).Add(p.Recoil)
	p.Recoil = p.Recoil.Scale(pc.RecoilDecay)
	if p.Recoil.Len() < recoilFloor {
		p.Recoil = core.Vec2{}
	}

	next := p.Pos.Add(p.Vel)
	p.Pos.X = core.ClampF(next.X, p.Radius, s.viewW-p.Radius)
	p.Pos.Y = core.ClampF(next.Y, p.Radius, s.viewH-p.Radius)

	if !dir.IsZero() {
		p.Facing = dir.Angle()
	}
}

func (s *Session) drainLimitless() {
	p := &s.reg.Player
	if !p.Limitless {
		return
	}
	if p.Energy > 0 {
		p.Energy = math.Max(0, p.Energy-s.cfg.Player.LimitlessDrain)
	}
	if p.Energy <= 0 {
		p.Limitless = false
	}
}

func (s *Session) regenEnergy() {
	p := &s.reg.Player
	if p.Energy < p.MaxEnergy {
		p.Energy = math.Min(p.MaxEnergy, p.Energy+s.cfg.Player.EnergyRegen)
	}
}

func (s *Session) tickTimers() {
	s.cooldowns.tick()
	if s.domainTimer > 0 {
		s.domainTimer--
	}
}

func (s *Session) spawnAndEscalate(domain bool) {
	sc := s.cfg.Spawn
	if s.stats.Tick%sc.SpawnInterval(s.stats.Wave) == 0 && !domain {
		s.spawnEnemy()
	}
	if s.cfg.Difficulty.Escalation && s.stats.Tick%sc.WaveEvery == 0 {
		s.stats.Wave++
		s.emit(core.Event{Kind: core.EventWaveAdvanced, Value: s.stats.Wave})
	}
}

// fuseProjectiles merges each Red with the first Blue in range into a wave.
// Consumed indices are collected during the scan and removed afterwards, so
// a projectile takes part in at most one fusion per tick.
func (s *Session) fuseProjectiles() {
	fc := s.cfg.Fusion
	projs := s.reg.Projectiles
	consumed := make(map[int]struct{})
	var origins []core.Vec2

	for i, red := range projs {
		if red.Kind != ProjectileRed || red.IsWave {
			continue
		}
		for j, blue := range projs {
			if i == j || blue.Kind != ProjectileBlue {
				continue
			}
			if _, ok := consumed[j]; ok {
				continue
			}
			blueR := s.cfg.Abilities.Blue.Radius * blue.Scale
			if core.Dist(red.Pos, blue.Pos) < red.Radius+blueR+fc.Margin {
				consumed[i] = struct{}{}
				consumed[j] = struct{}{}
				origins = append(origins, blue.Pos)
				break
			}
		}
	}

	if len(origins) == 0 {
		return
	}
	s.reg.removeProjectiles(consumed)
	for _, pos := range origins {
		s.spawnWave(pos)
	}
	s.emit(core.Event{Kind: core.EventFusion, Value: len(origins)})
}

func (s *Session) spawnWave(pos core.Vec2) {
	fc := s.cfg.Fusion
	s.burst(pos, 30, colorPurple, 10)
	s.burst(pos, 20, colorSpark, 5)
	s.reg.AddProjectile(Projectile{
		Kind:        ProjectilePurple,
		Pos:         pos,
		Scale:       fc.StartScale,
		Duration:    fc.Duration,
		MaxDuration: fc.Duration,
		Damage:      fc.Damage,
		IsWave:      true,
		Color:       colorPurple,
	})
}

// WaveRadius is the kill radius of a wave at the given scale.
func WaveRadius(reach, viewW, viewH, scale float64) float64 {
	return reach * math.Min(viewW, viewH) * scale
}

func (s *Session) updateProjectiles() {
	margin := s.cfg.Arena.ProjectileMargin

	for _, proj := range s.reg.Projectiles {
		if proj.IsWave {
			s.updateWave(proj)
			continue
		}

		proj.Duration--
		switch proj.Kind {
		case ProjectileBlue:
			s.updateBlue(proj)
		case ProjectileRed, ProjectilePurple:
			proj.Pos = proj.Pos.Add(proj.Vel)
			if proj.Kind == ProjectilePurple {
				s.burst(proj.Pos, 2, colorPurple, 1)
			}
		}

		out := proj.Pos.X < -margin || proj.Pos.X > s.viewW+margin ||
			proj.Pos.Y < -margin || proj.Pos.Y > s.viewH+margin
		if proj.Duration <= 0 || out {
			if proj.Kind == ProjectileRed {
				s.detonate(proj.Pos)
			}
			proj.spent = true
		}
	}
	s.reg.compact()
}

func (s *Session) updateWave(w *Projectile) {
	fc := s.cfg.Fusion
	w.Duration--
	w.Scale += fc.Growth
	r := WaveRadius(fc.Reach, s.viewW, s.viewH, w.Scale)

	for _, e := range s.reg.Enemies {
		if core.Dist(w.Pos, e.Pos) < r {
			e.HP -= w.Damage
			if s.stats.Tick%5 == 0 {
				s.burst(e.Pos, 2, colorPurple, 5)
			}
		}
	}

	if w.Duration <= 0 || w.Scale >= fc.MaxScale {
		w.spent = true
	}
}

func (s *Session) updateBlue(b *Projectile) {
	bc := s.cfg.Abilities.Blue
	b.Scale = math.Min(1, b.Scale+bc.Growth)
	b.Radius = bc.Radius * b.Scale

	reach := b.Radius * bc.Reach
	pull := bc.PullForce * bc.PullMultiplier
	for _, e := range s.reg.Enemies {
		if core.Dist(b.Pos, e.Pos) < reach {
			e.Pos = e.Pos.Add(core.Heading(e.Pos, b.Pos).Scale(pull))
			e.HP -= bc.DamagePerTick
		}
	}
}

// detonate applies Red's blast damage and knockback around pos.
func (s *Session) detonate(pos core.Vec2) {
	rc := s.cfg.Abilities.Red
	s.burst(pos, 20, colorRed, 4)
	for _, e := range s.reg.Enemies {
		if e.dead {
			continue
		}
		if core.Dist(pos, e.Pos) < rc.BlastRadius {
			e.HP -= rc.Damage
			e.Pos = e.Pos.Add(core.Heading(pos, e.Pos).Scale(rc.PushForce))
		}
	}
}

// updateEnemies moves enemies, resolves contacts and hits, and reaps the
// dead. It reports true when the player died and the tick must stop.
// Enemies after the fatal contact get no turn, but any already brought to
// zero hp this tick are still reaped and scored before GameOver.
func (s *Session) updateEnemies(domain bool) bool {
	ec := s.cfg.Enemies
	p := &s.reg.Player
	died := false

	for _, e := range s.reg.Enemies {
		// Killed earlier this tick by a wave, blast or Blue
		if e.HP <= 0 {
			s.kill(e)
			continue
		}

		if !domain {
			dir := core.Heading(e.Pos, p.Pos)
			e.Vel = dir.Scale(e.Speed)

			toPlayer := core.Dist(p.Pos, e.Pos)
			if p.Limitless && toPlayer < p.Radius+e.Radius+s.cfg.Player.RepelMargin {
				e.Vel = dir.Scale(-s.cfg.Player.RepelSpeed)
			}
			e.Pos = e.Pos.Add(e.Vel)

			if toPlayer < p.Radius+e.Radius {
				p.HP -= e.Damage
				e.Pos = e.Pos.Sub(dir.Scale(ec.Bounce))
				if p.HP <= 0 {
					died = true
					break
				}
			}
		} else {
			e.Vel = core.Vec2{}
			e.HP -= s.cfg.Abilities.Domain.DamagePerTick
		}

		s.hitByProjectiles(e)

		if e.HP <= 0 {
			s.kill(e)
		}
	}

	// Blasts fired late in the loop can kill enemies that already had their turn
	for _, e := range s.reg.Enemies {
		if !e.dead && e.HP <= 0 {
			s.kill(e)
		}
	}

	if died {
		s.setState(StateGameOver)
	}
	return died
}

func (s *Session) hitByProjectiles(e *Enemy) {
	for _, proj := range s.reg.Projectiles {
		if proj.IsWave || proj.spent {
			continue
		}
		if core.Dist(proj.Pos, e.Pos) >= proj.Radius+e.Radius {
			continue
		}
		switch proj.Kind {
		case ProjectileRed:
			s.detonate(proj.Pos)
			proj.spent = true
		case ProjectilePurple:
			e.HP -= proj.Damage
			s.burst(e.Pos, 5, colorPurple, 2)
		case ProjectileBlue:
			// Blue acts through its pull field only
		}
	}
}

func (s *Session) kill(e *Enemy) {
	if e.dead {
		return
	}
	e.dead = true
	s.stats.Score += s.cfg.Enemies.Score
	s.stats.Kills++
	s.burst(e.Pos, 10, e.Color, 3)
	s.emit(core.Event{Kind: core.EventEnemyKilled, Value: s.cfg.Enemies.Score, Label: e.Kind.String()})
}
