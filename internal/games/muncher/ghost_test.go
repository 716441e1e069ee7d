package muncher

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-muncher/internal/core"
)

// crossLayout is a plus-shaped junction used to pin direction choices.
var crossLayout = []string{
	"#####",
	"##.##",
	"#...#",
	"##.##",
	"#####",
}

func newTestGhost(c Cell) *Ghost {
	return NewGhost(c, core.ColorBrightRed, 6.0, 0.6, 1.2)
}

func TestFrightenedFleesPlayer(t *testing.T) {
	g := parseLayout(crossLayout)
	rng := rand.New(rand.NewSource(1))

	gh := newTestGhost(Cell{Col: 2, Row: 2})
	gh.Frighten()

	// Player directly above: the ghost should pick the move that
	// maximizes squared distance, which is straight down.
	d, ok := gh.chooseDir(g, rng, Cell{Col: 2, Row: 0})
	if !ok {
		t.Fatal("Junction ghost should always find a direction")
	}
	if d != DirDown {
		t.Errorf("Frightened ghost should flee downward, chose %s", d)
	}
}

func TestRetreatingHeadsHome(t *testing.T) {
	g := parseLayout(crossLayout)
	rng := rand.New(rand.NewSource(1))

	gh := newTestGhost(Cell{Col: 2, Row: 0})
	gh.MoveTo(Cell{Col: 2, Row: 2})
	gh.MarkCaptured()

	d, ok := gh.chooseDir(g, rng, Cell{Col: 2, Row: 4})
	if !ok {
		t.Fatal("Junction ghost should always find a direction")
	}
	if d != DirUp {
		t.Errorf("Retreating ghost should head home upward, chose %s", d)
	}
}

func TestNormalChasesPlayer(t *testing.T) {
	g := parseLayout(crossLayout)

	// With a unique closest option the random tie-break never matters.
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		gh := newTestGhost(Cell{Col: 2, Row: 2})

		d, ok := gh.chooseDir(g, rng, Cell{Col: 4, Row: 2})
		if !ok {
			t.Fatal("Junction ghost should always find a direction")
		}
		if d != DirRight {
			t.Errorf("Seed %d: normal ghost should chase rightward, chose %s", seed, d)
		}
	}
}

func TestNoReversalInCorridor(t *testing.T) {
	g := parseLayout([]string{
		"#####",
		"#...#",
		"#####",
	})
	rng := rand.New(rand.NewSource(1))

	gh := newTestGhost(Cell{Col: 2, Row: 1})
	gh.Dir = DirRight

	// Player behind the ghost: chasing it would mean reversing, which
	// is excluded while a forward option exists.
	d, ok := gh.chooseDir(g, rng, Cell{Col: 1, Row: 1})
	if !ok {
		t.Fatal("Corridor ghost should find a direction")
	}
	if d == DirLeft {
		t.Error("Ghost must not reverse in a through-corridor")
	}
}

func TestReversalAllowedInDeadEnd(t *testing.T) {
	g := parseLayout([]string{
		"#####",
		"#.. #",
		"#####",
	})
	rng := rand.New(rand.NewSource(1))

	gh := newTestGhost(Cell{Col: 3, Row: 1})
	gh.Dir = DirRight

	d, ok := gh.chooseDir(g, rng, Cell{Col: 1, Row: 1})
	if !ok {
		t.Fatal("Dead-end ghost should find a direction")
	}
	if d != DirLeft {
		t.Errorf("Dead-end ghost should reverse out, chose %s", d)
	}
}

func TestFrightenSkipsRetreating(t *testing.T) {
	gh := newTestGhost(Cell{Col: 1, Row: 1})
	gh.MarkCaptured()

	gh.Frighten()
	if gh.State != GhostRetreating {
		t.Errorf("Frighten must not interrupt a retreat, state %s", gh.State)
	}
}

func TestCalmDownLeavesRetreating(t *testing.T) {
	gh := newTestGhost(Cell{Col: 1, Row: 1})
	gh.MarkCaptured()

	gh.CalmDown()
	if gh.State != GhostRetreating {
		t.Errorf("CalmDown must not interrupt a retreat, state %s", gh.State)
	}
}

func TestEffectiveSpeedByState(t *testing.T) {
	gh := newTestGhost(Cell{Col: 1, Row: 1})

	if got := gh.effectiveSpeed(); got != 6.0 {
		t.Errorf("Normal speed should be base 6.0, got %.2f", got)
	}

	gh.Frighten()
	if got := gh.effectiveSpeed(); got != 6.0*0.6 {
		t.Errorf("Frightened speed should be scaled down, got %.2f", got)
	}

	gh.MarkCaptured()
	if got := gh.effectiveSpeed(); got != 6.0*1.2 {
		t.Errorf("Retreating speed should be scaled up, got %.2f", got)
	}

	gh.Respawn()
	if got := gh.effectiveSpeed(); got != 6.0 {
		t.Errorf("Respawned speed should revert to base, got %.2f", got)
	}
}
