package config

import (
	_ "embed"
)

//go:embed defaults/limitless.yaml
var defaultLimitlessYAML []byte

// DefaultConfig returns the built-in Limitless tuning.
func DefaultConfig() GameConfig {
	return GameConfig{
		Player: PlayerConfig{
			Radius:         15,
			Speed:          4,
			MaxHP:          100,
			MaxEnergy:      1000,
			EnergyRegen:    10,
			LimitlessDrain: 0.5,
			RepelMargin:    30,
			RepelSpeed:     2,
			RecoilDecay:    0.85,
		},
		Abilities: AbilitiesConfig{
			Blue: BlueConfig{
				Cost:           30,
				Cooldown:       120, // ~2s at 60fps
				Radius:         100,
				PullForce:      0.8,
				PullMultiplier: 5,
				Reach:          3,
				Growth:         0.05,
				DamagePerTick:  0.1,
				Duration:       180,
			},
			Red: RedConfig{
				Cost:        40,
				Cooldown:    180,
				Radius:      20,
				Speed:       8,
				Damage:      50,
				PushForce:   15,
				BlastRadius: 150,
				Duration:    60,
			},
			Purple: PurpleConfig{
				Cost:     80,
				Cooldown: 600,
				Radius:   60,
				Speed:    12,
				Damage:   9999,
				Recoil:   10,
				Duration: 120,
			},
			Domain: DomainConfig{
				Cost:           150,
				Cooldown:       1800, // 30s
				Duration:       420,
				DamagePerTick:  0.5,
				BurstParticles: 50,
			},
		},
		Fusion: FusionConfig{
			Margin:     20,
			StartScale: 0.1,
			Growth:     0.025,
			MaxScale:   1.5,
			Reach:      0.7,
			Damage:     9999,
			Duration:   50,
		},
		Enemies: EnemiesConfig{
			BaseHP:       30,
			HPPerWave:    5,
			BaseSpeed:    2,
			SpeedPerWave: 0.1,
			Damage:       10,
			Radius:       15,
			Bounce:       10,
			Score:        10,
			Tank: VariantConfig{
				Chance:  0.2,
				MinWave: 3,
				HP:      3,
				Speed:   0.5,
				Radius:  25,
			},
			Speedster: VariantConfig{
				Chance:  0.2,
				MinWave: 2,
				HP:      0.6,
				Speed:   1.5,
				Radius:  12,
			},
		},
		Spawn: SpawnConfig{
			BaseInterval:    120,
			MinInterval:     20,
			IntervalPerWave: 2,
			WaveEvery:       1200,
			DistanceDivisor: 1.5,
		},
		Arena: ArenaConfig{
			ProjectileMargin: 100,
		},
		Particles: ParticlesConfig{
			Enabled:    true,
			MinLife:    30,
			LifeJitter: 20,
			MaxLife:    50,
			Shrink:     0.95,
		},
		Difficulty: DifficultyConfig{
			Escalation: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLimitlessYAML
}
