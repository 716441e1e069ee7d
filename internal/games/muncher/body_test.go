package muncher

import (
	"math"
	"testing"
)

const tunnelRow = 14

func walkableCells(g *Grid) []Cell {
	var cells []Cell
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if g.IsWalkable(col, row) {
				cells = append(cells, Cell{Col: col, Row: row})
			}
		}
	}
	return cells
}

func TestAdvanceNeverEndsInWall(t *testing.T) {
	g := NewGrid()

	// From every walkable cell, in every direction, even a fast entity
	// on a long frame must end on a walkable cell.
	for _, cell := range walkableCells(g) {
		for _, d := range []Dir{DirLeft, DirRight, DirUp, DirDown} {
			b := Body{Speed: 12}
			b.MoveTo(cell)
			b.Dir = d

			for i := 0; i < 5; i++ {
				b.Advance(g, 0.4)
				end := b.Cell()
				if g.IsWall(end.Col, end.Row) {
					t.Fatalf("Advance from (%d,%d) dir %s ended inside wall (%d,%d)",
						cell.Col, cell.Row, d, end.Col, end.Row)
				}
			}
		}
	}
}

func TestAdvanceBlockedByWallStaysPut(t *testing.T) {
	g := NewGrid()

	// Player spawn faces a wall one cell up in the default maze? Find
	// any walkable cell with a wall neighbor instead of assuming one.
	for _, cell := range walkableCells(g) {
		for _, d := range []Dir{DirLeft, DirRight, DirUp, DirDown} {
			if g.IsWalkable(cell.Col+d.DX, cell.Row+d.DY) {
				continue
			}
			b := Body{Speed: 8}
			b.MoveTo(cell)
			b.Dir = d
			b.Advance(g, 1.0)

			if b.Col != float64(cell.Col) || b.Row != float64(cell.Row) {
				t.Fatalf("Blocked advance from (%d,%d) dir %s moved to (%.3f,%.3f)",
					cell.Col, cell.Row, d, b.Col, b.Row)
			}
			return
		}
	}
	t.Fatal("No wall-adjacent walkable cell found in maze")
}

func TestTunnelWrapLeft(t *testing.T) {
	g := NewGrid()

	b := Body{Speed: 8}
	b.MoveTo(Cell{Col: 0, Row: tunnelRow})
	b.Dir = DirLeft
	b.Advance(g, 0.1)

	end := b.Cell()
	if end.Col != g.Cols()-1 {
		t.Errorf("Leftward exit should reappear at column %d, got %d", g.Cols()-1, end.Col)
	}
	if end.Row != tunnelRow {
		t.Errorf("Row changed across tunnel: %d", end.Row)
	}
}

func TestTunnelWrapRight(t *testing.T) {
	g := NewGrid()

	b := Body{Speed: 8}
	b.MoveTo(Cell{Col: g.Cols() - 1, Row: tunnelRow})
	b.Dir = DirRight
	b.Advance(g, 0.1)

	end := b.Cell()
	if end.Col != 0 {
		t.Errorf("Rightward exit should reappear at column 0, got %d", end.Col)
	}
	if end.Row != tunnelRow {
		t.Errorf("Row changed across tunnel: %d", end.Row)
	}
}

func TestTunnelCrossingOnHalfCellBoundary(t *testing.T) {
	g := NewGrid()

	// Speed 8 at 32 ticks/sec moves exactly 0.25 cells per tick, so a
	// sample lands exactly on the half-cell boundary at each tunnel
	// mouth. The crossing must wrap and keep progressing, never sticking
	// at the edge.
	b := Body{Speed: 8}
	b.MoveTo(Cell{Col: g.Cols() - 2, Row: tunnelRow})
	b.Dir = DirRight

	for i := 0; i < 40; i++ {
		b.Advance(g, 1.0/32.0)
		end := b.Cell()
		if g.IsWall(end.Col, end.Row) {
			t.Fatalf("Rightward crossing tick %d ended inside wall (%d,%d), col %.3f", i, end.Col, end.Row, b.Col)
		}
	}
	// 40 ticks of 0.25 cells from column 26 wraps to column 8.
	if b.Cell().Col != 8 {
		t.Errorf("Rightward crossing should end at column 8, got %d (col %.3f)", b.Cell().Col, b.Col)
	}

	b = Body{Speed: 8}
	b.MoveTo(Cell{Col: 1, Row: tunnelRow})
	b.Dir = DirLeft

	for i := 0; i < 40; i++ {
		b.Advance(g, 1.0/32.0)
		end := b.Cell()
		if g.IsWall(end.Col, end.Row) {
			t.Fatalf("Leftward crossing tick %d ended inside wall (%d,%d), col %.3f", i, end.Col, end.Row, b.Col)
		}
	}
	// 40 ticks of 0.25 cells from column 1 wraps to column 19.
	if b.Cell().Col != 19 {
		t.Errorf("Leftward crossing should end at column 19, got %d (col %.3f)", b.Cell().Col, b.Col)
	}
}

func TestTunnelTraversalContinues(t *testing.T) {
	g := NewGrid()

	// Cross the tunnel and keep going: the entity should re-enter and
	// make progress on the far side, never sticking at the edge.
	b := Body{Speed: 8}
	b.MoveTo(Cell{Col: g.Cols() - 1, Row: tunnelRow})
	b.Dir = DirRight

	for i := 0; i < 10; i++ {
		b.Advance(g, 1.0/60.0)
	}
	if b.Cell().Col >= g.Cols()-1 {
		t.Errorf("Entity stuck at tunnel edge, col %.3f", b.Col)
	}
}

func TestRequestTurnRequiresCenter(t *testing.T) {
	g := NewGrid()
	spawn := g.PlayerSpawn()

	b := Body{Speed: 8}
	b.MoveTo(spawn)
	b.Col += 0.3 // off-center

	if b.RequestTurn(g, DirLeft) {
		t.Error("Turn should be rejected off-center")
	}
	if b.Dir != DirNone {
		t.Errorf("Rejected turn must not change direction, got %s", b.Dir)
	}
}

func TestRequestTurnRequiresWalkableTarget(t *testing.T) {
	g := NewGrid()

	// Find a walkable cell with a wall on one side and an opening on
	// another.
	for _, cell := range walkableCells(g) {
		var blocked, open Dir
		for _, d := range []Dir{DirLeft, DirRight, DirUp, DirDown} {
			if g.IsWalkable(cell.Col+d.DX, cell.Row+d.DY) {
				open = d
			} else {
				blocked = d
			}
		}
		if blocked.IsZero() || open.IsZero() {
			continue
		}

		b := Body{Speed: 8}
		b.MoveTo(cell)

		if b.RequestTurn(g, blocked) {
			t.Error("Turn into a wall should be rejected")
		}
		if !b.RequestTurn(g, open) {
			t.Error("Turn into an open cell should be accepted")
		}
		if b.Dir != open {
			t.Errorf("Accepted turn should set direction %s, got %s", open, b.Dir)
		}
		return
	}
	t.Fatal("No suitable cell found in maze")
}

func TestRequestTurnSnapsToCenter(t *testing.T) {
	g := NewGrid()

	for _, cell := range walkableCells(g) {
		var open Dir
		for _, d := range []Dir{DirLeft, DirRight, DirUp, DirDown} {
			if g.IsWalkable(cell.Col+d.DX, cell.Row+d.DY) {
				open = d
				break
			}
		}
		if open.IsZero() {
			continue
		}

		b := Body{Speed: 8}
		b.MoveTo(cell)
		b.Col += 0.05 // within tolerance, still centered
		b.Row -= 0.05

		if !b.RequestTurn(g, open) {
			t.Fatal("Near-center turn should be accepted")
		}
		if b.Col != math.Round(b.Col) || b.Row != math.Round(b.Row) {
			t.Errorf("Turn should snap to cell center, got (%.3f,%.3f)", b.Col, b.Row)
		}
		return
	}
	t.Fatal("No suitable cell found in maze")
}
