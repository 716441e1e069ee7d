// Package config provides YAML-based game configuration loading for the
// muncher arcade game.
package config

// MuncherConfig contains all tunable parameters for the maze-chase game.
type MuncherConfig struct {
	Speeds  SpeedConfig   `yaml:"speeds"`
	Rules   RulesConfig   `yaml:"rules"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// SpeedConfig defines movement speeds in cells per second. The ghost
// multipliers scale the base ghost speed per behavioral state.
type SpeedConfig struct {
	Player          float64 `yaml:"player"`
	Ghost           float64 `yaml:"ghost"`
	FrightenedScale float64 `yaml:"frightened_scale"`
	RetreatScale    float64 `yaml:"retreat_scale"`
}

// RulesConfig defines round rules.
type RulesConfig struct {
	PowerDuration float64 `yaml:"power_duration"` // seconds of power mode
	Lives         int     `yaml:"lives"`
	GhostCount    int     `yaml:"ghost_count"`
}

// ScoringConfig defines point awards.
type ScoringConfig struct {
	Pellet      int `yaml:"pellet"`
	PowerPellet int `yaml:"power_pellet"`
	Ghost       int `yaml:"ghost"`
}

// Validate clamps nonsensical values back to the defaults so a partial
// or hand-edited config can never produce a stuck game.
func (c *MuncherConfig) Validate() {
	def := DefaultMuncherConfig()

	if c.Speeds.Player <= 0 {
		c.Speeds.Player = def.Speeds.Player
	}
	if c.Speeds.Ghost <= 0 {
		c.Speeds.Ghost = def.Speeds.Ghost
	}
	if c.Speeds.FrightenedScale <= 0 {
		c.Speeds.FrightenedScale = def.Speeds.FrightenedScale
	}
	if c.Speeds.RetreatScale <= 0 {
		c.Speeds.RetreatScale = def.Speeds.RetreatScale
	}
	if c.Rules.PowerDuration <= 0 {
		c.Rules.PowerDuration = def.Rules.PowerDuration
	}
	if c.Rules.Lives <= 0 {
		c.Rules.Lives = def.Rules.Lives
	}
	if c.Rules.GhostCount <= 0 {
		c.Rules.GhostCount = def.Rules.GhostCount
	}
	if c.Scoring.Pellet <= 0 {
		c.Scoring.Pellet = def.Scoring.Pellet
	}
	if c.Scoring.PowerPellet <= 0 {
		c.Scoring.PowerPellet = def.Scoring.PowerPellet
	}
	if c.Scoring.Ghost <= 0 {
		c.Scoring.Ghost = def.Scoring.Ghost
	}
}
