package config

import (
	"fmt"
	"os"

	"runner-game/game"

	"gopkg.in/yaml.v3"
)

// LoadTuning reads a YAML file on top of the default tuning. Fields missing
// from the file keep their defaults. An empty path returns the defaults.
func LoadTuning(path string) (game.Tuning, error) {
	tuning := game.DefaultTuning()
	if path == "" {
		return tuning, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tuning, fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return game.DefaultTuning(), fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	if err := validateTuning(tuning); err != nil {
		return game.DefaultTuning(), fmt.Errorf("tuning file %s: %w", path, err)
	}
	return tuning, nil
}

func validateTuning(t game.Tuning) error {
	switch {
	case t.Gravity <= 0:
		return fmt.Errorf("gravity must be positive, got %v", t.Gravity)
	case t.JumpImpulse >= 0:
		return fmt.Errorf("jumpImpulse must be negative, got %v", t.JumpImpulse)
	case t.SpawnMinMs <= 0 || t.SpawnBaseMs < t.SpawnMinMs:
		return fmt.Errorf("spawn interval %v..%v is invalid", t.SpawnMinMs, t.SpawnBaseMs)
	case t.VictoryScore <= 0:
		return fmt.Errorf("victoryScore must be positive, got %d", t.VictoryScore)
	case t.PlayerHitbox <= 0 || t.PlayerHitbox > 1 || t.ObstacleHitbox <= 0 || t.ObstacleHitbox > 1:
		return fmt.Errorf("hitbox ratios must be in (0, 1]")
	}
	return nil
}
