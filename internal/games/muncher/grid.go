package muncher

// Cell is a grid coordinate (column, row).
type Cell struct {
	Col, Row int
}

// Grid owns the static walkable-cell topology and the mutable sets of
// remaining collectibles. Walls are immutable for the life of the round;
// pellet sets only shrink, and only through the Eat methods.
type Grid struct {
	cols, rows int
	walls      [][]bool

	pellets map[Cell]struct{}
	power   map[Cell]struct{}

	playerSpawn Cell
	ghostSpawns []Cell
}

// NewGrid parses the built-in maze layout into a fresh grid with all
// collectibles present.
func NewGrid() *Grid {
	return parseLayout(defaultLayout)
}

// parseLayout builds a grid from a rectangular table of cell codes.
// Missing spawn markers fall back to deterministic positions rather
// than failing: grid center for the player, two cells flanking center
// for ghosts.
func parseLayout(layout []string) *Grid {
	rows := len(layout)
	cols := 0
	for _, line := range layout {
		if len(line) > cols {
			cols = len(line)
		}
	}

	g := &Grid{
		cols:        cols,
		rows:        rows,
		walls:       make([][]bool, rows),
		pellets:     make(map[Cell]struct{}),
		power:       make(map[Cell]struct{}),
		playerSpawn: Cell{Col: -1, Row: -1},
	}

	for r, line := range layout {
		g.walls[r] = make([]bool, cols)
		for c, ch := range line {
			cell := Cell{Col: c, Row: r}
			switch ch {
			case '#':
				g.walls[r][c] = true
			case '.':
				g.pellets[cell] = struct{}{}
			case 'o':
				g.power[cell] = struct{}{}
			case 'P':
				if g.playerSpawn.Col < 0 {
					g.playerSpawn = cell
				}
			case 'G':
				g.ghostSpawns = append(g.ghostSpawns, cell)
			}
		}
	}

	if g.playerSpawn.Col < 0 {
		g.playerSpawn = Cell{Col: cols / 2, Row: rows / 2}
	}
	if len(g.ghostSpawns) == 0 {
		g.ghostSpawns = []Cell{
			{Col: cols/2 - 1, Row: rows / 2},
			{Col: cols/2 + 1, Row: rows / 2},
		}
	}

	return g
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// IsWall reports whether the cell blocks movement.
// Any out-of-bounds coordinate is treated as a wall.
func (g *Grid) IsWall(col, row int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return true
	}
	return g.walls[row][col]
}

// IsWalkable reports whether the cell is in bounds and not a wall.
func (g *Grid) IsWalkable(col, row int) bool {
	return !g.IsWall(col, row)
}

// HasPellet reports whether a pellet remains at the cell.
func (g *Grid) HasPellet(c Cell) bool {
	_, ok := g.pellets[c]
	return ok
}

// HasPower reports whether a power pellet remains at the cell.
func (g *Grid) HasPower(c Cell) bool {
	_, ok := g.power[c]
	return ok
}

// EatPelletAt removes the pellet at the cell if present.
// Returns true only when something was actually removed, so callers
// can never double-award points for the same cell.
func (g *Grid) EatPelletAt(c Cell) bool {
	if _, ok := g.pellets[c]; !ok {
		return false
	}
	delete(g.pellets, c)
	return true
}

// EatPowerAt removes the power pellet at the cell if present.
func (g *Grid) EatPowerAt(c Cell) bool {
	if _, ok := g.power[c]; !ok {
		return false
	}
	delete(g.power, c)
	return true
}

// PelletCount returns the number of remaining pellets.
func (g *Grid) PelletCount() int { return len(g.pellets) }

// PowerCount returns the number of remaining power pellets.
func (g *Grid) PowerCount() int { return len(g.power) }

// Cleared reports whether every collectible has been consumed.
func (g *Grid) Cleared() bool {
	return len(g.pellets) == 0 && len(g.power) == 0
}

// Pellets returns the remaining pellet cells (iteration order unspecified).
func (g *Grid) Pellets() map[Cell]struct{} { return g.pellets }

// PowerPellets returns the remaining power pellet cells.
func (g *Grid) PowerPellets() map[Cell]struct{} { return g.power }

// PlayerSpawn returns the player start cell.
func (g *Grid) PlayerSpawn() Cell { return g.playerSpawn }

// GhostSpawn returns the i-th ghost start cell, cycling through the
// defined spawns when there are more ghosts than markers.
func (g *Grid) GhostSpawn(i int) Cell {
	return g.ghostSpawns[i%len(g.ghostSpawns)]
}

// GhostSpawnCount returns the number of distinct ghost spawn markers.
func (g *Grid) GhostSpawnCount() int { return len(g.ghostSpawns) }
