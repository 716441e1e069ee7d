package muncher

// Player is the input-driven agent. It records directional intent,
// applies it at cell centers, and resolves collectible pickup after
// each move.
type Player struct {
	Body
	NextDir Dir
	Score   int
	Lives   int

	pelletPoints int
	powerPoints  int
}

// NewPlayer creates a player at the given spawn cell.
func NewPlayer(spawn Cell, speed float64, lives, pelletPoints, powerPoints int) *Player {
	p := &Player{
		Lives:        lives,
		pelletPoints: pelletPoints,
		powerPoints:  powerPoints,
	}
	p.Speed = speed
	p.MoveTo(spawn)
	return p
}

// SetIntent records the most recent directional request. It does not
// move anything; last request wins within a tick.
func (p *Player) SetIntent(d Dir) {
	p.NextDir = d
}

// Update advances the player by one tick: apply pending intent at cell
// centers, move, then consume any collectible on the resulting cell.
// Returns true when a power pellet was eaten this tick (the caller owns
// the resulting mode transition). At most one power event fires per
// tick: a cell is never in both sets.
func (p *Player) Update(g *Grid, dt float64) bool {
	if p.Centered() && p.NextDir != p.Dir && !p.NextDir.IsZero() {
		p.RequestTurn(g, p.NextDir)
	}

	p.Advance(g, dt)

	cell := p.Cell()
	if g.EatPelletAt(cell) {
		p.Score += p.pelletPoints
	}
	if g.EatPowerAt(cell) {
		p.Score += p.powerPoints
		return true
	}
	return false
}
