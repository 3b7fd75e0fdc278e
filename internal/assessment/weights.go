package assessment

import (
	"fmt"

	"github.com/spf13/viper"
)

// WeightMatrix maps a career-field tag to its per-category weights in
// [0,1]. Weights are hand-authored configuration; they feed a weighted
// average, so rows do not need to sum to 1.
type WeightMatrix map[string]map[string]float64

// FieldConfig is one career field entry from the scoring config file.
type FieldConfig struct {
	Label   string             `mapstructure:"label"`
	Weights map[string]float64 `mapstructure:"weights"`
}

// FallbackCareer is one pre-authored recommendation used when the upstream
// LLM call cannot produce a usable list. Field links the entry back to a
// weight-matrix field so its match percentage can be backfilled from the
// locally computed scores.
type FallbackCareer struct {
	Name            string   `mapstructure:"name"`
	Field           string   `mapstructure:"field"`
	Description     string   `mapstructure:"description"`
	MatchPercentage int      `mapstructure:"match_percentage"`
	Skills          []string `mapstructure:"skills"`
	AvgSalary       string   `mapstructure:"avg_salary"`
}

// ScoringConfig is the parsed weights file.
type ScoringConfig struct {
	Fields          map[string]FieldConfig `mapstructure:"fields"`
	FallbackCareers []FallbackCareer       `mapstructure:"fallback_careers"`
}

// Matrix flattens the field configs into the matcher's input shape.
func (c *ScoringConfig) Matrix() WeightMatrix {
	matrix := make(WeightMatrix, len(c.Fields))
	for field, fc := range c.Fields {
		matrix[field] = fc.Weights
	}
	return matrix
}

// Label returns the display name for a field tag, falling back to the tag.
func (c *ScoringConfig) Label(field string) string {
	if fc, ok := c.Fields[field]; ok && fc.Label != "" {
		return fc.Label
	}
	return field
}

// LoadScoringConfig reads the weights yaml from path and validates it.
func LoadScoringConfig(path string) (*ScoringConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scoring config: %w", err)
	}

	var cfg ScoringConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal scoring config: %w", err)
	}

	if len(cfg.Fields) == 0 {
		return nil, fmt.Errorf("scoring config %s defines no career fields", path)
	}
	if len(cfg.FallbackCareers) == 0 {
		return nil, fmt.Errorf("scoring config %s defines no fallback careers", path)
	}
	for field, fc := range cfg.Fields {
		for category, weight := range fc.Weights {
			if weight < 0 || weight > 1 {
				return nil, fmt.Errorf("weight %f for %s/%s outside [0,1]", weight, field, category)
			}
		}
	}
	for _, fb := range cfg.FallbackCareers {
		if fb.MatchPercentage < 0 || fb.MatchPercentage > 100 {
			return nil, fmt.Errorf("fallback career %q match percentage outside [0,100]", fb.Name)
		}
	}

	return &cfg, nil
}
