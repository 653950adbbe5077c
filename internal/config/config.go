// Package config provides YAML-based game configuration loading and
// difficulty management for Super Rock Boy.
package config

// RockConfig contains all tuning for the rock platformer.
type RockConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Health     HealthConfig     `yaml:"health"`
	Leveling   LevelingConfig   `yaml:"leveling"`
	Stages     []StageConfig    `yaml:"stages"`
	Spikes     SpikeConfig      `yaml:"spikes"`
	Star       StarConfig       `yaml:"star"`
	Miners     MinerConfig      `yaml:"miners"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Camera     CameraConfig     `yaml:"camera"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the viewport and level extents in world units.
type WorldConfig struct {
	Width             float64 `yaml:"width"`         // Viewport width
	Height            float64 `yaml:"height"`        // Viewport height
	GroundOffset      float64 `yaml:"ground_offset"` // Ground line distance from the bottom
	ArenaWidth        float64 `yaml:"arena_width"`   // Level width in arena (finite) mode
	MaxWorldLevel     int     `yaml:"max_world_level"`
	InterstitialTicks int     `yaml:"interstitial_ticks"`
}

// GroundY returns the y coordinate of the ground line.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundOffset
}

// PhysicsConfig defines physics parameters for the rock body.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpForce        float64 `yaml:"jump_force"`
	MoveSpeed        float64 `yaml:"move_speed"`
	MaxSpeedX        float64 `yaml:"max_speed_x"`
	GroundFriction   float64 `yaml:"ground_friction"`
	RotationFactor   float64 `yaml:"rotation_factor"`
	RotationFriction float64 `yaml:"rotation_friction"`
	StopThreshold    float64 `yaml:"stop_threshold"`
	AirControl       float64 `yaml:"air_control"`
	HardLanding      float64 `yaml:"hard_landing"`
	Restitution      float64 `yaml:"restitution"`
	WallDamping      float64 `yaml:"wall_damping"`
	WallSpin         float64 `yaml:"wall_spin"`
	MaxDelta         float64 `yaml:"max_delta"`
	ReferenceFrameMs float64 `yaml:"reference_frame_ms"`
}

// PlayerConfig defines the rock's size and spawn point.
type PlayerConfig struct {
	BaseRadius   float64 `yaml:"base_radius"`
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	SizePerLevel float64 `yaml:"size_per_level"`
}

// HealthConfig defines health and invulnerability timing.
type HealthConfig struct {
	Base           float64 `yaml:"base"`
	ImmunityFrames int     `yaml:"immunity_frames"`
	FlashFrames    int     `yaml:"flash_frames"`
}

// LevelingConfig defines XP thresholds and rewards.
type LevelingConfig struct {
	XPToNext   int     `yaml:"xp_to_next"`
	Growth     float64 `yaml:"growth"`
	SurvivalXP float64 `yaml:"survival_xp"`
	StarXP     float64 `yaml:"star_xp"`
	MinerXP    float64 `yaml:"miner_xp"`
}

// StageConfig is one row of the evolution table.
type StageConfig struct {
	Name     string  `yaml:"name"`
	MinLevel int     `yaml:"min_level"`
	Color    string  `yaml:"color"`
	Strength float64 `yaml:"strength"`
}

// SpikeConfig defines spike size and the damage bounce.
type SpikeConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Damage       float64 `yaml:"damage"`
	BounceFactor float64 `yaml:"bounce_factor"` // Multiplier on jump force
	BounceSpeed  float64 `yaml:"bounce_speed"`  // Horizontal push away from the spike
}

// StarConfig defines the roaming collectible.
type StarConfig struct {
	Size              float64 `yaml:"size"`
	Speed             float64 `yaml:"speed"`
	RespawnTicks      int     `yaml:"respawn_ticks"`
	TrailLength       int     `yaml:"trail_length"`
	TrailLife         float64 `yaml:"trail_life"`
	SpawnPadding      float64 `yaml:"spawn_padding"`
	MinPlayerDistance float64 `yaml:"min_player_distance"`
	MaxSpawnAttempts  int     `yaml:"max_spawn_attempts"`
	Margin            float64 `yaml:"margin"`
}

// MinerConfig defines miner NPC stats before difficulty scaling.
type MinerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	Health         float64 `yaml:"health"`
	AttackRange    float64 `yaml:"attack_range"`
	AttackDamage   float64 `yaml:"attack_damage"`
	AttackCooldown int     `yaml:"attack_cooldown"`
	AttackDuration int     `yaml:"attack_duration"`
	KnockbackForce float64 `yaml:"knockback_force"`
	TurnChance     float64 `yaml:"turn_chance"`
	StompDamage    float64 `yaml:"stomp_damage"`
	StompBounce    float64 `yaml:"stomp_bounce"`
}

// GeneratorConfig defines procedural segment generation.
type GeneratorConfig struct {
	Step               float64 `yaml:"step"`
	LookAhead          float64 `yaml:"look_ahead"`
	CleanupDistance    float64 `yaml:"cleanup_distance"`
	MaxIterations      int     `yaml:"max_iterations"`
	MinPlatforms       int     `yaml:"min_platforms"`
	MaxPlatforms       int     `yaml:"max_platforms"`
	PlatformMinWidth   float64 `yaml:"platform_min_width"`
	PlatformMaxWidth   float64 `yaml:"platform_max_width"`
	PlatformHeight     float64 `yaml:"platform_height"`
	PlatformMinRise    float64 `yaml:"platform_min_rise"`
	PlatformMaxRise    float64 `yaml:"platform_max_rise"`
	PlacementAttempts  int     `yaml:"placement_attempts"`
	HangingSpikeChance float64 `yaml:"hanging_spike_chance"`
	GroundSpikeChance  float64 `yaml:"ground_spike_chance"`
	MinerChance        float64 `yaml:"miner_chance"`
	MaxMiners          int     `yaml:"max_miners"`
	SafeZone           float64 `yaml:"safe_zone"`
}

// CameraConfig defines camera follow behavior.
type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing"` // Fraction of the gap closed per reference frame
}

// EffectsConfig defines particle counts.
type EffectsConfig struct {
	EvolutionParticles   int `yaml:"evolution_particles"`
	CollectParticles     int `yaml:"collect_particles"`
	CelebrationParticles int `yaml:"celebration_particles"`
	SparkParticles       int `yaml:"spark_particles"`
	DebrisPieces         int `yaml:"debris_pieces"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "world" or "none"
	MaxAt int    `yaml:"max_at"` // World level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max difficulty.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to miner speed multiplier
	DamageMultiplier float64 `yaml:"damage_multiplier"` // Added to miner damage multiplier
	MinerChanceBonus float64 `yaml:"miner_chance_bonus"`
	SpikeChanceBonus float64 `yaml:"spike_chance_bonus"`
	ExtraMiners      int     `yaml:"extra_miners"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset; unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
