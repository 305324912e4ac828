package config

import (
	_ "embed"
)

//go:embed defaults/hunter.yaml
var defaultHunterYAML []byte

// DefaultHunterConfig returns the built-in configuration. It mirrors
// defaults/hunter.yaml and is the last fallback when nothing else loads.
func DefaultHunterConfig() HunterConfig {
	return HunterConfig{
		Screen: ScreenConfig{Width: 900, Height: 550},
		World: WorldConfig{
			Width:        2700,
			GroundHeight: 500,
			SpawnJitter:  100,
		},
		Camera: CameraConfig{Lerp: 0.1},
		Player: PlayerConfig{
			Width:      100,
			Height:     100,
			StartX:     100,
			Speed:      5,
			MaxHealth:  5,
			MaxLives:   3,
			JumpHeight: 18,
			Gravity:    0.8,
		},
		Enemy: EnemyConfig{
			Width:    120,
			Height:   120,
			MinSpeed: 5,
			MaxSpeed: 8,
		},
		Advanced: AdvancedConfig{
			Width:        100,
			Height:       100,
			MinSpeed:     8,
			MaxSpeed:     12,
			MaxHealth:    2,
			JumpHeight:   15,
			Gravity:      0.8,
			JumpEvery:    60,
			JumpTimerMin: 30,
			JumpTimerMax: 60,
		},
		Boss: BossConfig{
			Width:        200,
			Height:       200,
			MaxHealth:    500,
			Speed:        2,
			SpawnAhead:   50,
			StopDistance: 200,
			JumpHeight:   8,
			Gravity:      0.6,
			JumpEvery:    90,
			ShootEvery:   90,
			Spread:       3,
			SpreadGap:    10,
			MuzzleRise:   50,
		},
		Bullet:     ProjectileConfig{Width: 15, Height: 7, Speed: 10},
		BossBullet: ProjectileConfig{Width: 8, Height: 8, Speed: 7},
		Collectible: CollectibleConfig{
			Width:   40,
			Height:  40,
			Speed:   4,
			MinRise: 80,
			MaxRise: 200,
			Cadence: 300,
			PerWave: 2,
		},
		Scoring: ScoringConfig{
			EnemyKill:    5,
			AdvancedKill: 5,
			BossHit:      10,
			BossDefeat:   100,
			ScorePickup:  10,
		},
		Damage: DamageConfig{
			MonsterContact:   2,
			BossBullet:       1,
			BulletVsBoss:     20,
			BulletVsAdvanced: 1,
			HealthPickup:     1,
			LifePickup:       1,
		},
		Timing: TimingConfig{
			ClearHold:    180,
			FinalMessage: 9999,
			GuideTicks:   300,
			IdleTicks:    60,
			IdleZone:     150,
		},
		Levels: []LevelConfig{
			{Name: "Hunting Grounds", Monster: MonsterEnemy, Cadence: 30, ScoreToClear: 100, Collectibles: true, Theme: "forest"},
			{Name: "Elite Pack", Monster: MonsterAdvanced, Cadence: 50, ScoreToClear: 200, Collectibles: true, Theme: "cave"},
			{Name: "Alpha Beast", Monster: MonsterAdvanced, Cadence: 50, Boss: true, Collectibles: true, Theme: "lair"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHunterYAML
}
