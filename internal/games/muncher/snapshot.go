package muncher

// GhostSnapshot captures one ghost's state for determinism testing.
type GhostSnapshot struct {
	Col   float64
	Row   float64
	Dir   Dir
	State GhostState
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       Mode
	Round      int
	Score      int
	Lives      int
	PowerTimer float64

	PlayerCol float64
	PlayerRow float64
	PlayerDir Dir

	PelletsLeft int
	PowerLeft   int

	Ghosts []GhostSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Mode:        g.mode,
		Round:       g.round,
		Score:       g.player.Score,
		Lives:       g.player.Lives,
		PowerTimer:  g.powerTimer,
		PlayerCol:   g.player.Col,
		PlayerRow:   g.player.Row,
		PlayerDir:   g.player.Dir,
		PelletsLeft: g.grid.PelletCount(),
		PowerLeft:   g.grid.PowerCount(),
		Ghosts:      make([]GhostSnapshot, 0, len(g.ghosts)),
	}
	for _, gh := range g.ghosts {
		s.Ghosts = append(s.Ghosts, GhostSnapshot{
			Col:   gh.Col,
			Row:   gh.Row,
			Dir:   gh.Dir,
			State: gh.State,
		})
	}
	return s
}
