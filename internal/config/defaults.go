package config

import (
	_ "embed"
)

//go:embed defaults/rockboy.yaml
var defaultRockYAML []byte

// DefaultStages returns the evolution table ordered by minimum level.
func DefaultStages() []StageConfig {
	return []StageConfig{
		{Name: "pebble", MinLevel: 1, Color: "#808080", Strength: 1.0},
		{Name: "rock", MinLevel: 5, Color: "#606060", Strength: 1.2},
		{Name: "boulder", MinLevel: 10, Color: "#404040", Strength: 1.5},
		{Name: "granite", MinLevel: 15, Color: "#483D8B", Strength: 1.8},
		{Name: "diamond", MinLevel: 18, Color: "#B9F2FF", Strength: 2.0},
	}
}

// DefaultRockConfig returns the default Super Rock Boy configuration.
func DefaultRockConfig() RockConfig {
	return RockConfig{
		World: WorldConfig{
			Width:             800,
			Height:            600,
			GroundOffset:      50,
			ArenaWidth:        2400,
			MaxWorldLevel:     5,
			InterstitialTicks: 180,
		},
		Physics: PhysicsConfig{
			Gravity:          0.5,
			JumpForce:        -12,
			MoveSpeed:        0.8,
			MaxSpeedX:        8,
			GroundFriction:   0.90,
			RotationFactor:   0.05,
			RotationFriction: 0.98,
			StopThreshold:    0.1,
			AirControl:       0.5,
			HardLanding:      3,
			Restitution:      0.3,
			WallDamping:      0.5,
			WallSpin:         -0.8,
			MaxDelta:         3,
			ReferenceFrameMs: 1000.0 / 60.0,
		},
		Player: PlayerConfig{
			BaseRadius:   20,
			StartX:       400,
			StartY:       300,
			SizePerLevel: 0.05,
		},
		Health: HealthConfig{
			Base:           100,
			ImmunityFrames: 30,
			FlashFrames:    10,
		},
		Leveling: LevelingConfig{
			XPToNext:   100,
			Growth:     1.5,
			SurvivalXP: 0.1,
			StarXP:     50,
			MinerXP:    30,
		},
		Stages: DefaultStages(),
		Spikes: SpikeConfig{
			Width:        30,
			Height:       20,
			Damage:       20,
			BounceFactor: 0.7,
			BounceSpeed:  8,
		},
		Star: StarConfig{
			Size:              15,
			Speed:             3,
			RespawnTicks:      180,
			TrailLength:       20,
			TrailLife:         20,
			SpawnPadding:      40,
			MinPlayerDistance: 100,
			MaxSpawnAttempts:  50,
			Margin:            20,
		},
		Miners: MinerConfig{
			Width:          24,
			Height:         48,
			Speed:          1.0,
			Health:         30,
			AttackRange:    60,
			AttackDamage:   15,
			AttackCooldown: 90,
			AttackDuration: 30,
			KnockbackForce: 10,
			TurnChance:     0.005,
			StompDamage:    15,
			StompBounce:    0.6,
		},
		Generator: GeneratorConfig{
			Step:               400,
			LookAhead:          1200,
			CleanupDistance:    2000,
			MaxIterations:      64,
			MinPlatforms:       1,
			MaxPlatforms:       3,
			PlatformMinWidth:   100,
			PlatformMaxWidth:   220,
			PlatformHeight:     20,
			PlatformMinRise:    100,
			PlatformMaxRise:    300,
			PlacementAttempts:  8,
			HangingSpikeChance: 0.3,
			GroundSpikeChance:  0.4,
			MinerChance:        0.25,
			MaxMiners:          1,
			SafeZone:           200,
		},
		Camera: CameraConfig{
			Smoothing: 0.1,
		},
		Effects: EffectsConfig{
			EvolutionParticles:   20,
			CollectParticles:     30,
			CelebrationParticles: 50,
			SparkParticles:       8,
			DebrisPieces:         8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "world",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				DamageMultiplier: 0.5,
				MinerChanceBonus: 0.4,
				SpikeChanceBonus: 0.3,
				ExtraMiners:      2,
			},
		},
	}
}
