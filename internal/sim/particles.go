package sim

import (
	"math"

	"github.com/vovakirdan/limitless/internal/core"
)

// burst emits count particles at pos flying outward at up to speed.
// Nothing is emitted when particles are disabled.
func (s *Session) burst(pos core.Vec2, count int, color core.Color, speed float64) {
	pc := s.cfg.Particles
	if !pc.Enabled {
		return
	}
	for i := 0; i < count; i++ {
		angle := s.fx.Float64() * 2 * math.Pi
		v := s.fx.Float64() * speed
		s.reg.AddParticle(Particle{
			Pos:     pos,
			Vel:     core.FromAngle(angle).Scale(v),
			Life:    pc.MinLife + s.fx.Float64()*pc.LifeJitter,
			MaxLife: pc.MaxLife,
			Color:   color,
			Size:    s.fx.Float64()*4 + 2,
		})
	}
}

func (s *Session) updateParticles() {
	shrink := s.cfg.Particles.Shrink
	live := s.reg.Particles[:0]
	for _, p := range s.reg.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		p.Size *= shrink
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	s.reg.Particles = live
}
