// Package config provides YAML-based game configuration loading and
// difficulty presets for Monster Hunter. Every constant the simulation
// uses lives here; values are fixed once a run starts.
package config

// Monster kinds a level can spawn.
const (
	MonsterEnemy    = "enemy"
	MonsterAdvanced = "advanced"
)

// HunterConfig contains all configuration for the simulation core.
type HunterConfig struct {
	Screen      ScreenConfig      `yaml:"screen"`
	World       WorldConfig       `yaml:"world"`
	Camera      CameraConfig      `yaml:"camera"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Advanced    AdvancedConfig    `yaml:"advanced_enemy"`
	Boss        BossConfig        `yaml:"boss"`
	Bullet      ProjectileConfig  `yaml:"bullet"`
	BossBullet  ProjectileConfig  `yaml:"boss_bullet"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Damage      DamageConfig      `yaml:"damage"`
	Timing      TimingConfig      `yaml:"timing"`
	Levels      []LevelConfig     `yaml:"levels"`
}

// ScreenConfig is the logical (pixel) viewport the camera maps onto.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WorldConfig defines the scrollable world.
type WorldConfig struct {
	Width        int `yaml:"width"`
	GroundHeight int `yaml:"ground_height"` // Y of the ground line
	SpawnJitter  int `yaml:"spawn_jitter"`  // Max random offset past the right screen edge
}

// CameraConfig defines camera follow behavior.
type CameraConfig struct {
	Lerp float64 `yaml:"lerp"`
}

// PlayerConfig defines the player's body, stats and jump arc.
type PlayerConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	StartX     int     `yaml:"start_x"` // Horizontal center at spawn
	Speed      int     `yaml:"speed"`
	MaxHealth  int     `yaml:"max_health"`
	MaxLives   int     `yaml:"max_lives"`
	JumpHeight float64 `yaml:"jump_height"`
	Gravity    float64 `yaml:"gravity"`
}

// EnemyConfig defines basic monsters.
type EnemyConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	MinSpeed int `yaml:"min_speed"`
	MaxSpeed int `yaml:"max_speed"`
}

// AdvancedConfig defines elite monsters that take two hits and hop.
type AdvancedConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	MinSpeed     int     `yaml:"min_speed"`
	MaxSpeed     int     `yaml:"max_speed"`
	MaxHealth    int     `yaml:"max_health"`
	JumpHeight   float64 `yaml:"jump_height"`
	Gravity      float64 `yaml:"gravity"`
	JumpEvery    int     `yaml:"jump_every"`     // Jump once the timer reaches this value
	JumpTimerMin int     `yaml:"jump_timer_min"` // Timer is re-seeded in [min, max] on spawn and landing
	JumpTimerMax int     `yaml:"jump_timer_max"`
}

// BossConfig defines the final encounter.
type BossConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	MaxHealth    int     `yaml:"max_health"`
	Speed        int     `yaml:"speed"`
	SpawnAhead   int     `yaml:"spawn_ahead"`   // Spawn center past the right screen edge
	StopDistance int     `yaml:"stop_distance"` // Stop approaching once left <= offset+screen-stop
	JumpHeight   float64 `yaml:"jump_height"`
	Gravity      float64 `yaml:"gravity"`
	JumpEvery    int     `yaml:"jump_every"`
	ShootEvery   int     `yaml:"shoot_every"`
	Spread       int     `yaml:"spread"`      // Bullets per volley
	SpreadGap    int     `yaml:"spread_gap"`  // Vertical distance between volley bullets
	MuzzleRise   int     `yaml:"muzzle_rise"` // Volley center above the boss's bottom
}

// ProjectileConfig defines a bullet body and speed.
type ProjectileConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
}

// CollectibleConfig defines pickups and their spawn wave.
type CollectibleConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Speed   int `yaml:"speed"`
	MinRise int `yaml:"min_rise"` // Bottom edge at least this far above ground
	MaxRise int `yaml:"max_rise"` // and at most this far
	Cadence int `yaml:"cadence"`  // Ticks between waves
	PerWave int `yaml:"per_wave"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	EnemyKill    int `yaml:"enemy_kill"`
	AdvancedKill int `yaml:"advanced_kill"`
	BossHit      int `yaml:"boss_hit"`
	BossDefeat   int `yaml:"boss_defeat"`
	ScorePickup  int `yaml:"score_pickup"`
}

// DamageConfig defines damage and restore amounts.
type DamageConfig struct {
	MonsterContact   int `yaml:"monster_contact"`
	BossBullet       int `yaml:"boss_bullet"`
	BulletVsBoss     int `yaml:"bullet_vs_boss"`
	BulletVsAdvanced int `yaml:"bullet_vs_advanced"`
	HealthPickup     int `yaml:"health_pickup"`
	LifePickup       int `yaml:"life_pickup"`
}

// TimingConfig defines tick-counted holds and hint windows.
type TimingConfig struct {
	ClearHold    int `yaml:"clear_hold"`    // Ticks a cleared level is shown before advancing
	FinalMessage int `yaml:"final_message"` // Ticks the game over / victory message stays up
	GuideTicks   int `yaml:"guide_ticks"`   // Guide hint shown for this many ticks of play
	IdleTicks    int `yaml:"idle_ticks"`    // Guide hint returns after idling this long
	IdleZone     int `yaml:"idle_zone"`     // Idle only counts while player.right < zone
}

// LevelConfig defines one stage of the campaign.
type LevelConfig struct {
	Name         string `yaml:"name"`
	Monster      string `yaml:"monster"`        // "enemy" or "advanced"
	Cadence      int    `yaml:"cadence"`        // Spawn when the timer exceeds this
	ScoreToClear int    `yaml:"score_to_clear"` // 0 means the level is not cleared by score
	Boss         bool   `yaml:"boss"`
	Collectibles bool   `yaml:"collectibles"`
	Theme        string `yaml:"theme"` // Background theme name for renderers
}
