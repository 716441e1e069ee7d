package muncher

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-muncher/internal/core"
)

// GhostState is the behavioral state of a pursuer. The three states are
// mutually exclusive; transitions are driven by the round controller
// (power events, captures) and by the ghost reaching home.
type GhostState int

const (
	// GhostNormal pursues the player at base speed.
	GhostNormal GhostState = iota
	// GhostFrightened flees the player at reduced speed and is capturable.
	GhostFrightened
	// GhostRetreating returns to its home cell at increased speed after
	// being captured. Unaffected by power-timer expiry; reverts to
	// Normal only on reaching home.
	GhostRetreating
)

func (s GhostState) String() string {
	switch s {
	case GhostNormal:
		return "normal"
	case GhostFrightened:
		return "frightened"
	case GhostRetreating:
		return "retreating"
	default:
		return "unknown"
	}
}

// Ghost is an autonomous pursuer. Its home cell doubles as the retreat
// target after capture.
type Ghost struct {
	Body
	State GhostState
	Home  Cell
	Color core.Color

	baseSpeed     float64
	frightenedMul float64
	retreatMul    float64
}

// NewGhost creates a ghost at its home cell.
func NewGhost(home Cell, color core.Color, baseSpeed, frightenedMul, retreatMul float64) *Ghost {
	gh := &Ghost{
		Home:          home,
		Color:         color,
		baseSpeed:     baseSpeed,
		frightenedMul: frightenedMul,
		retreatMul:    retreatMul,
	}
	gh.Speed = baseSpeed
	gh.MoveTo(home)
	return gh
}

// Frighten flips the ghost to Frightened unless it is already
// retreating; a retreating ghost keeps heading home.
func (gh *Ghost) Frighten() {
	if gh.State == GhostRetreating {
		return
	}
	gh.State = GhostFrightened
}

// CalmDown clears the frightened state on power expiry. Retreating is
// untouched: it ends only when the ghost reaches home.
func (gh *Ghost) CalmDown() {
	if gh.State == GhostFrightened {
		gh.State = GhostNormal
	}
}

// MarkCaptured transitions a frightened ghost to Retreating.
func (gh *Ghost) MarkCaptured() {
	gh.State = GhostRetreating
}

// Respawn puts the ghost back at home with cleared flags and no direction.
func (gh *Ghost) Respawn() {
	gh.State = GhostNormal
	gh.MoveTo(gh.Home)
}

// effectiveSpeed returns the state-adjusted speed in cells per second.
func (gh *Ghost) effectiveSpeed() float64 {
	switch gh.State {
	case GhostRetreating:
		return gh.baseSpeed * gh.retreatMul
	case GhostFrightened:
		return gh.baseSpeed * gh.frightenedMul
	default:
		return gh.baseSpeed
	}
}

// Update advances the ghost by one tick: adjust speed for the current
// state, pick a direction if at an intersection, then move. playerCell
// is the player's cell as snapshotted at the start of the tick, so all
// ghosts decide against the same consistent target.
func (gh *Ghost) Update(g *Grid, rng *rand.Rand, playerCell Cell, dt float64) {
	gh.Speed = gh.effectiveSpeed()

	if gh.Centered() {
		if d, ok := gh.chooseDir(g, rng, playerCell); ok {
			gh.Dir = d
		}
	}

	gh.Advance(g, dt)
}

// candidateDirs enumerates directions leading to walkable neighbors,
// excluding the reverse of the current direction unless it is the only
// way out (dead end). Enumeration order is fixed so distance ties
// resolve deterministically outside the Normal policy.
func (gh *Ghost) candidateDirs(g *Grid) []Dir {
	cell := gh.Cell()
	var options []Dir
	for _, d := range []Dir{DirLeft, DirRight, DirUp, DirDown} {
		if g.IsWalkable(cell.Col+d.DX, cell.Row+d.DY) {
			options = append(options, d)
		}
	}

	reverse := gh.Dir.Reverse()
	if len(options) > 1 && !gh.Dir.IsZero() {
		filtered := options[:0]
		for _, d := range options {
			if d != reverse {
				filtered = append(filtered, d)
			}
		}
		options = filtered
	}
	return options
}

// chooseDir picks the next direction by the state's policy:
//
//	Retreating: minimize squared distance to home (greedy homing).
//	Frightened: maximize squared distance to the player (flee).
//	Normal:     shuffle, then stable-sort by squared distance to the
//	            player, so equal-distance options are broken randomly.
//
// A fully boxed-in ghost reverses unconditionally. The second return
// is false when no direction change should be committed.
func (gh *Ghost) chooseDir(g *Grid, rng *rand.Rand, playerCell Cell) (Dir, bool) {
	options := gh.candidateDirs(g)
	if len(options) == 0 {
		if gh.Dir.IsZero() {
			return DirNone, false
		}
		return gh.Dir.Reverse(), true
	}

	cell := gh.Cell()
	distSqTo := func(d Dir, target Cell) int {
		dc := cell.Col + d.DX - target.Col
		dr := cell.Row + d.DY - target.Row
		return dc*dc + dr*dr
	}

	switch gh.State {
	case GhostRetreating:
		best := options[0]
		for _, d := range options[1:] {
			if distSqTo(d, gh.Home) < distSqTo(best, gh.Home) {
				best = d
			}
		}
		return best, true

	case GhostFrightened:
		best := options[0]
		for _, d := range options[1:] {
			if distSqTo(d, playerCell) > distSqTo(best, playerCell) {
				best = d
			}
		}
		return best, true

	default:
		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		sort.SliceStable(options, func(i, j int) bool {
			return distSqTo(options[i], playerCell) < distSqTo(options[j], playerCell)
		})
		return options[0], true
	}
}
