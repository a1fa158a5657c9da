package sim

import (
	"math"

	"github.com/vovakirdan/limitless/internal/config"
	"github.com/vovakirdan/limitless/internal/core"
)

// spawnEnemy places one enemy on a ring around the viewport center.
// Variant rolls: low rolls become tanks, high rolls speedsters, each gated
// by a minimum wave.
func (s *Session) spawnEnemy() *Enemy {
	ec := s.cfg.Enemies
	wave := float64(s.stats.Wave)

	angle := s.rng.Float64() * 2 * math.Pi
	dist := math.Max(s.viewW, s.viewH) / s.cfg.Spawn.DistanceDivisor
	center := core.V(s.viewW/2, s.viewH/2)

	e := Enemy{
		Kind:   EnemyBasic,
		Pos:    center.Add(core.FromAngle(angle).Scale(dist)),
		Radius: ec.Radius,
		HP:     ec.BaseHP + wave*ec.HPPerWave,
		Damage: ec.Damage,
		Speed:  ec.BaseSpeed + wave*ec.SpeedPerWave,
		Color:  colorBasic,
	}

	roll := s.rng.Float64()
	switch {
	case roll < ec.Tank.Chance && s.stats.Wave >= ec.Tank.MinWave:
		e.Kind = EnemyTank
		applyVariant(&e, ec.Tank)
		e.Color = colorTank
	case roll > 1-ec.Speedster.Chance && s.stats.Wave >= ec.Speedster.MinWave:
		e.Kind = EnemySpeedster
		applyVariant(&e, ec.Speedster)
		e.Color = colorSpeedster
	}
	e.MaxHP = e.HP

	return s.reg.AddEnemy(e)
}

func applyVariant(e *Enemy, v config.VariantConfig) {
	e.HP *= v.HP
	e.Speed *= v.Speed
	e.Radius = v.Radius
}
