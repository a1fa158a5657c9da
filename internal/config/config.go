// Package config provides YAML/TOML game configuration loading and
// difficulty management for the Limitless arena.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains all tuning values for a Limitless session.
type GameConfig struct {
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Abilities  AbilitiesConfig  `yaml:"abilities" toml:"abilities"`
	Fusion     FusionConfig     `yaml:"fusion" toml:"fusion"`
	Enemies    EnemiesConfig    `yaml:"enemies" toml:"enemies"`
	Spawn      SpawnConfig      `yaml:"spawn" toml:"spawn"`
	Arena      ArenaConfig      `yaml:"arena" toml:"arena"`
	Particles  ParticlesConfig  `yaml:"particles" toml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PlayerConfig defines the avatar's stats.
type PlayerConfig struct {
	Radius         float64 `yaml:"radius" toml:"radius"`
	Speed          float64 `yaml:"speed" toml:"speed"`
	MaxHP          float64 `yaml:"max_hp" toml:"max_hp"`
	MaxEnergy      float64 `yaml:"max_energy" toml:"max_energy"`
	EnergyRegen    float64 `yaml:"energy_regen" toml:"energy_regen"`       // per tick
	LimitlessDrain float64 `yaml:"limitless_drain" toml:"limitless_drain"` // per tick
	RepelMargin    float64 `yaml:"repel_margin" toml:"repel_margin"`       // added to the radius sum
	RepelSpeed     float64 `yaml:"repel_speed" toml:"repel_speed"`
	RecoilDecay    float64 `yaml:"recoil_decay" toml:"recoil_decay"`
}

// AbilitiesConfig groups the four castable abilities.
type AbilitiesConfig struct {
	Blue   BlueConfig   `yaml:"blue" toml:"blue"`
	Red    RedConfig    `yaml:"red" toml:"red"`
	Purple PurpleConfig `yaml:"purple" toml:"purple"`
	Domain DomainConfig `yaml:"domain" toml:"domain"`
}

// BlueConfig defines the stationary pulling singularity.
type BlueConfig struct {
	Cost           float64 `yaml:"cost" toml:"cost"`
	Cooldown       int     `yaml:"cooldown" toml:"cooldown"`
	Radius         float64 `yaml:"radius" toml:"radius"`
	PullForce      float64 `yaml:"pull_force" toml:"pull_force"`
	PullMultiplier float64 `yaml:"pull_multiplier" toml:"pull_multiplier"`
	Reach          float64 `yaml:"reach" toml:"reach"` // pull range as a multiple of the current radius
	Growth         float64 `yaml:"growth" toml:"growth"`
	DamagePerTick  float64 `yaml:"damage_per_tick" toml:"damage_per_tick"`
	Duration       int     `yaml:"duration" toml:"duration"`
}

// RedConfig defines the detonating bolt.
type RedConfig struct {
	Cost        float64 `yaml:"cost" toml:"cost"`
	Cooldown    int     `yaml:"cooldown" toml:"cooldown"`
	Radius      float64 `yaml:"radius" toml:"radius"`
	Speed       float64 `yaml:"speed" toml:"speed"`
	Damage      float64 `yaml:"damage" toml:"damage"`
	PushForce   float64 `yaml:"push_force" toml:"push_force"`
	BlastRadius float64 `yaml:"blast_radius" toml:"blast_radius"`
	Duration    int     `yaml:"duration" toml:"duration"`
}

// PurpleConfig defines the piercing beam.
type PurpleConfig struct {
	Cost     float64 `yaml:"cost" toml:"cost"`
	Cooldown int     `yaml:"cooldown" toml:"cooldown"`
	Radius   float64 `yaml:"radius" toml:"radius"`
	Speed    float64 `yaml:"speed" toml:"speed"`
	Damage   float64 `yaml:"damage" toml:"damage"`
	Recoil   float64 `yaml:"recoil" toml:"recoil"`
	Duration int     `yaml:"duration" toml:"duration"`
}

// DomainConfig defines the global stun.
type DomainConfig struct {
	Cost           float64 `yaml:"cost" toml:"cost"`
	Cooldown       int     `yaml:"cooldown" toml:"cooldown"`
	Duration       int     `yaml:"duration" toml:"duration"`
	DamagePerTick  float64 `yaml:"damage_per_tick" toml:"damage_per_tick"`
	BurstParticles int     `yaml:"burst_particles" toml:"burst_particles"`
}

// FusionConfig defines the Red+Blue wave.
type FusionConfig struct {
	Margin     float64 `yaml:"margin" toml:"margin"`
	StartScale float64 `yaml:"start_scale" toml:"start_scale"`
	Growth     float64 `yaml:"growth" toml:"growth"`
	MaxScale   float64 `yaml:"max_scale" toml:"max_scale"`
	Reach      float64 `yaml:"reach" toml:"reach"` // kill radius as a fraction of the short viewport side
	Damage     float64 `yaml:"damage" toml:"damage"`
	Duration   int     `yaml:"duration" toml:"duration"`
}

// EnemiesConfig defines base enemy stats and variant modifiers.
type EnemiesConfig struct {
	BaseHP       float64       `yaml:"base_hp" toml:"base_hp"`
	HPPerWave    float64       `yaml:"hp_per_wave" toml:"hp_per_wave"`
	BaseSpeed    float64       `yaml:"base_speed" toml:"base_speed"`
	SpeedPerWave float64       `yaml:"speed_per_wave" toml:"speed_per_wave"`
	Damage       float64       `yaml:"damage" toml:"damage"`
	Radius       float64       `yaml:"radius" toml:"radius"`
	Bounce       float64       `yaml:"bounce" toml:"bounce"`
	Score        int           `yaml:"score" toml:"score"`
	Tank         VariantConfig `yaml:"tank" toml:"tank"`
	Speedster    VariantConfig `yaml:"speedster" toml:"speedster"`
}

// VariantConfig scales base enemy stats for a special variant.
type VariantConfig struct {
	Chance  float64 `yaml:"chance" toml:"chance"`
	MinWave int     `yaml:"min_wave" toml:"min_wave"`
	HP      float64 `yaml:"hp" toml:"hp"`       // multiplier
	Speed   float64 `yaml:"speed" toml:"speed"` // multiplier
	Radius  float64 `yaml:"radius" toml:"radius"`
}

// SpawnConfig defines spawn cadence and wave escalation.
type SpawnConfig struct {
	BaseInterval    int     `yaml:"base_interval" toml:"base_interval"`
	MinInterval     int     `yaml:"min_interval" toml:"min_interval"`
	IntervalPerWave int     `yaml:"interval_per_wave" toml:"interval_per_wave"`
	WaveEvery       int     `yaml:"wave_every" toml:"wave_every"`
	DistanceDivisor float64 `yaml:"distance_divisor" toml:"distance_divisor"`
}

// ArenaConfig defines world bounds behavior.
type ArenaConfig struct {
	ProjectileMargin float64 `yaml:"projectile_margin" toml:"projectile_margin"`
}

// ParticlesConfig defines cosmetic particle behavior.
type ParticlesConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	MinLife    float64 `yaml:"min_life" toml:"min_life"`
	LifeJitter float64 `yaml:"life_jitter" toml:"life_jitter"`
	MaxLife    float64 `yaml:"max_life" toml:"max_life"`
	Shrink     float64 `yaml:"shrink" toml:"shrink"`
}

// DifficultyConfig defines the wave escalation switch.
type DifficultyConfig struct {
	Escalation bool `yaml:"escalation" toml:"escalation"`
}

// SpawnInterval returns the ticks between spawns at the given wave.
func (c SpawnConfig) SpawnInterval(wave int) int {
	n := c.BaseInterval - wave*c.IntervalPerWave
	if n < c.MinInterval {
		n = c.MinInterval
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ErrInvalid is returned (wrapped) by Validate.
var ErrInvalid = errors.New("invalid config")

// Validate rejects values the simulation cannot run with.
func (c GameConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"player.radius", c.Player.Radius},
		{"player.speed", c.Player.Speed},
		{"player.max_hp", c.Player.MaxHP},
		{"player.max_energy", c.Player.MaxEnergy},
		{"abilities.blue.radius", c.Abilities.Blue.Radius},
		{"abilities.blue.duration", float64(c.Abilities.Blue.Duration)},
		{"abilities.red.radius", c.Abilities.Red.Radius},
		{"abilities.red.speed", c.Abilities.Red.Speed},
		{"abilities.red.duration", float64(c.Abilities.Red.Duration)},
		{"abilities.purple.radius", c.Abilities.Purple.Radius},
		{"abilities.purple.speed", c.Abilities.Purple.Speed},
		{"abilities.purple.duration", float64(c.Abilities.Purple.Duration)},
		{"abilities.domain.duration", float64(c.Abilities.Domain.Duration)},
		{"fusion.duration", float64(c.Fusion.Duration)},
		{"fusion.growth", c.Fusion.Growth},
		{"enemies.radius", c.Enemies.Radius},
		{"enemies.base_speed", c.Enemies.BaseSpeed},
		{"enemies.base_hp", c.Enemies.BaseHP},
		{"spawn.base_interval", float64(c.Spawn.BaseInterval)},
		{"spawn.wave_every", float64(c.Spawn.WaveEvery)},
		{"spawn.distance_divisor", c.Spawn.DistanceDivisor},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"abilities.blue.cost", c.Abilities.Blue.Cost},
		{"abilities.red.cost", c.Abilities.Red.Cost},
		{"abilities.purple.cost", c.Abilities.Purple.Cost},
		{"abilities.domain.cost", c.Abilities.Domain.Cost},
		{"abilities.blue.cooldown", float64(c.Abilities.Blue.Cooldown)},
		{"abilities.red.cooldown", float64(c.Abilities.Red.Cooldown)},
		{"abilities.purple.cooldown", float64(c.Abilities.Purple.Cooldown)},
		{"abilities.domain.cooldown", float64(c.Abilities.Domain.Cooldown)},
		{"player.energy_regen", c.Player.EnergyRegen},
		{"player.limitless_drain", c.Player.LimitlessDrain},
	}
	for _, p := range nonNegative {
		if p.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalid, p.name, p.v)
		}
	}

	if c.Player.RecoilDecay < 0 || c.Player.RecoilDecay >= 1 {
		return fmt.Errorf("%w: player.recoil_decay must be in [0, 1), got %v", ErrInvalid, c.Player.RecoilDecay)
	}
	if c.Particles.Shrink < 0 || c.Particles.Shrink > 1 {
		return fmt.Errorf("%w: particles.shrink must be in [0, 1], got %v", ErrInvalid, c.Particles.Shrink)
	}
	return nil
}
