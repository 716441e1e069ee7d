package config

import (
	_ "embed"
)

//go:embed defaults/muncher.yaml
var defaultMuncherYAML []byte

// DefaultMuncherConfig returns the default game configuration.
// Values mirror the classic arcade feel: the player is slightly faster
// than ghosts, frightened ghosts slow down, retreating ghosts speed up.
func DefaultMuncherConfig() MuncherConfig {
	return MuncherConfig{
		Speeds: SpeedConfig{
			Player:          8.0,
			Ghost:           6.0,
			FrightenedScale: 0.6,
			RetreatScale:    1.2,
		},
		Rules: RulesConfig{
			PowerDuration: 8.0,
			Lives:         3,
			GhostCount:    4,
		},
		Scoring: ScoringConfig{
			Pellet:      10,
			PowerPellet: 50,
			Ghost:       200,
		},
	}
}
