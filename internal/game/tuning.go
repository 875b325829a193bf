package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the balance knobs an operator may override from a YAML
// file. It is loaded once before the run starts and never changes
// during play; everything not overridden keeps the compiled default.
type Tuning struct {
	SpawnBaseInterval  float64 `yaml:"spawn_base_interval"`
	SpawnMinInterval   float64 `yaml:"spawn_min_interval"`
	SpawnIntervalDecay float64 `yaml:"spawn_interval_decay"`
	EnemyHPScalePerSec float64 `yaml:"enemy_hp_scale_per_sec"`
	PotionDropChance   float64 `yaml:"potion_drop_chance"`
	XPCurveSlope       float64 `yaml:"xp_curve_slope"`
}

func defaultTuning() Tuning {
	return Tuning{
		SpawnBaseInterval:  spawnBaseInterval,
		SpawnMinInterval:   spawnMinInterval,
		SpawnIntervalDecay: spawnIntervalDecay,
		EnemyHPScalePerSec: enemyHPScalePerSec,
		PotionDropChance:   potionDropChance,
		XPCurveSlope:       4.5,
	}
}

// LoadTuning reads the overlay from path. A missing file is not an
// error: it returns the defaults. A present but malformed or
// out-of-range file is fatal to startup, so a typo cannot silently
// revert a knob.
func LoadTuning(path string) (Tuning, error) {
	t := defaultTuning()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

func (t Tuning) validate() error {
	if t.SpawnMinInterval <= 0 || t.SpawnBaseInterval < t.SpawnMinInterval {
		return fmt.Errorf("spawn intervals out of range: base=%.3f min=%.3f", t.SpawnBaseInterval, t.SpawnMinInterval)
	}
	if t.SpawnIntervalDecay < 0 {
		return fmt.Errorf("spawn_interval_decay must be >= 0, got %.3f", t.SpawnIntervalDecay)
	}
	if t.PotionDropChance < 0 || t.PotionDropChance > 100 {
		return fmt.Errorf("potion_drop_chance must be 0..100, got %.1f", t.PotionDropChance)
	}
	if t.XPCurveSlope <= 0 {
		return fmt.Errorf("xp_curve_slope must be > 0, got %.2f", t.XPCurveSlope)
	}
	return nil
}
