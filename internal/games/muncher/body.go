package muncher

import "math"

// Dir is a grid-axis-aligned unit step. The zero value means standing still.
type Dir struct {
	DX, DY int
}

// Axis directions. Diagonal motion is disallowed.
var (
	DirNone  = Dir{0, 0}
	DirLeft  = Dir{-1, 0}
	DirRight = Dir{1, 0}
	DirUp    = Dir{0, -1}
	DirDown  = Dir{0, 1}
)

// Reverse returns the opposite direction.
func (d Dir) Reverse() Dir {
	return Dir{DX: -d.DX, DY: -d.DY}
}

// IsZero reports whether the direction is the standing-still value.
func (d Dir) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirNone:
		return "none"
	default:
		return "invalid"
	}
}

// centerEps is the tolerance for considering a body centered on a cell.
// Turning is only committed at cell centers.
const centerEps = 0.1

// maxSampleSpan is the largest displacement, in cells, allowed between
// two wall samples during a move. Chosen so that even a fast entity on a
// slow frame cannot tunnel through a one-cell wall.
const maxSampleSpan = 0.25

// Body is the continuous-position kinematic state shared by the player
// and the ghosts. Position is in grid units, speed in cells per second.
type Body struct {
	Col, Row float64
	Dir      Dir
	Speed    float64
}

// roundCell converts a continuous coordinate to its cell index, rounding
// half up. Half-up matters at the tunnel boundary: a wrapped column of
// exactly -0.5 must land on column 0, where half-away-from-zero rounding
// would yield -1 and read as an out-of-bounds wall.
func roundCell(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Cell returns the grid cell the body currently rounds to.
func (b *Body) Cell() Cell {
	return Cell{
		Col: roundCell(b.Col),
		Row: roundCell(b.Row),
	}
}

// Centered reports whether the body is close enough to a cell center
// for a direction change to be committed.
func (b *Body) Centered() bool {
	return math.Abs(b.Col-math.Round(b.Col)) < centerEps &&
		math.Abs(b.Row-math.Round(b.Row)) < centerEps
}

// MoveTo teleports the body to a cell center and clears its direction.
// Used on (re)spawn.
func (b *Body) MoveTo(c Cell) {
	b.Col = float64(c.Col)
	b.Row = float64(c.Row)
	b.Dir = DirNone
}

// RequestTurn commits a new direction if the body is cell-centered and
// the neighbor cell in that direction is walkable. On success the
// position snaps exactly to the cell center, discarding float drift
// accumulated from sub-stepped movement. Invalid requests are silently
// dropped. Returns whether the turn was committed.
func (b *Body) RequestTurn(g *Grid, d Dir) bool {
	if !b.Centered() {
		return false
	}
	cell := b.Cell()
	if !g.IsWalkable(cell.Col+d.DX, cell.Row+d.DY) {
		return false
	}
	b.Dir = d
	b.Col = math.Round(b.Col)
	b.Row = math.Round(b.Row)
	return true
}

// wrapCol folds a continuous column into [-0.5, cols-0.5) so that
// roundCell always lands on an in-range cell. This keeps the horizontal
// tunnel symmetric: crossing either edge re-enters the opposite column
// with no positional snap.
func wrapCol(col, cols float64) float64 {
	if col < -0.5 {
		return col + cols
	}
	if col >= cols-0.5 {
		return col - cols
	}
	return col
}

// Advance moves the body along its current direction for dt seconds.
//
// The candidate segment is sampled at a resolution proportional to its
// Chebyshev length so that no sample is more than about a quarter cell
// from the previous one. Each sampled point is tunnel-wrapped
// horizontally, rounded to a cell, and tested against the walls; any
// wall hit aborts the whole move, leaving the body exactly where it
// was. A clean pass commits the full displacement and wraps the
// committed column. Vertical wraparound is not supported: the layout
// has no vertical tunnel.
func (b *Body) Advance(g *Grid, dt float64) {
	nextCol := b.Col + float64(b.Dir.DX)*b.Speed*dt
	nextRow := b.Row + float64(b.Dir.DY)*b.Speed*dt

	span := math.Max(math.Abs(nextCol-b.Col), math.Abs(nextRow-b.Row))
	steps := int(span / maxSampleSpan)
	if steps < 1 {
		steps = 1
	}

	cols := float64(g.Cols())
	for i := 0; i < steps; i++ {
		t := float64(i+1) / float64(steps)
		sampleCol := wrapCol(b.Col+(nextCol-b.Col)*t, cols)
		sampleRow := b.Row + (nextRow-b.Row)*t

		if g.IsWall(roundCell(sampleCol), roundCell(sampleRow)) {
			return
		}
	}

	b.Col = wrapCol(nextCol, cols)
	b.Row = nextRow
}
