package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "4s" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Scoring holds the tunable prediction parameters. The defaults are the
// empirically chosen values the scorer shipped with; a YAML file can
// override them without a rebuild.
type Scoring struct {
	Weights         Weights        `yaml:"weights"`
	Levels          []LevelBracket `yaml:"levels"`
	ScoreFloor      int            `yaml:"scoreFloor"`
	ScoreCeiling    int            `yaml:"scoreCeiling"`
	HistoryWindow   Duration       `yaml:"historyWindow"`
	ProviderTimeout Duration       `yaml:"providerTimeout"`
}

// Weights are the per-signal contributions to the composite score.
// They should sum to 1.0.
type Weights struct {
	Moon    float64 `yaml:"moon"`
	Weather float64 `yaml:"weather"`
	Season  float64 `yaml:"season"`
	History float64 `yaml:"history"`
}

// LevelBracket maps a minimum score to a categorical activity level.
// Brackets are evaluated high to low; the first match wins.
type LevelBracket struct {
	Min   int    `yaml:"min"`
	Label string `yaml:"label"`
}

// Default returns the compiled-in scoring parameters.
func Default() Scoring {
	return Scoring{
		Weights: Weights{
			Moon:    0.25,
			Weather: 0.35,
			Season:  0.25,
			History: 0.15,
		},
		Levels: []LevelBracket{
			{Min: 85, Label: "Exceptional"},
			{Min: 70, Label: "Very High"},
			{Min: 55, Label: "High"},
			{Min: 40, Label: "Moderate"},
			{Min: 25, Label: "Low"},
			{Min: 0, Label: "Very Low"},
		},
		ScoreFloor:      5,
		ScoreCeiling:    95,
		HistoryWindow:   Duration(30 * 24 * time.Hour),
		ProviderTimeout: Duration(4 * time.Second),
	}
}

// Load reads scoring parameters from a YAML file, layered over the
// defaults. An empty path returns the defaults unchanged.
func Load(path string) (Scoring, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects parameter sets the scorer cannot work with.
func (s Scoring) Validate() error {
	sum := s.Weights.Moon + s.Weights.Weather + s.Weights.Season + s.Weights.History
	if sum < 0.99 || sum > 1.01 {
		return fmt.Errorf("signal weights sum to %.2f, want 1.0", sum)
	}
	if s.ScoreFloor < 0 || s.ScoreCeiling > 100 || s.ScoreFloor >= s.ScoreCeiling {
		return fmt.Errorf("invalid score bounds [%d,%d]", s.ScoreFloor, s.ScoreCeiling)
	}
	if len(s.Levels) == 0 {
		return fmt.Errorf("no activity level brackets configured")
	}
	for i := 1; i < len(s.Levels); i++ {
		if s.Levels[i].Min >= s.Levels[i-1].Min {
			return fmt.Errorf("level brackets must be ordered high to low")
		}
	}
	if s.ProviderTimeout <= 0 {
		return fmt.Errorf("provider timeout must be positive")
	}
	return nil
}
