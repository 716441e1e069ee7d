package muncher

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-muncher/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testConfig()

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch i {
		case 10:
			input.Set(core.ActionUp)
		case 60:
			input.Set(core.ActionLeft)
		case 120:
			input.Set(core.ActionDown)
		case 200:
			input.Set(core.ActionRight)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Snapshot mismatch after 300 ticks:\n%+v\nvs\n%+v", snap1, snap2)
	}
}

func TestPowerPelletActivation(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Tiny maze: the player sits just shy of a power pellet, one normal
	// ghost nearby.
	g.grid = parseLayout([]string{
		"#####",
		"#..o#",
		"#...#",
		"#####",
	})
	g.player.MoveTo(Cell{Col: 2, Row: 1})
	g.player.Col = 2.4
	g.player.Dir = DirRight
	g.player.NextDir = DirRight
	g.ghosts = []*Ghost{newTestGhost(Cell{Col: 1, Row: 2})}

	g.Step(core.NewInputFrame())

	if g.player.Score != 50 {
		t.Errorf("Power pellet should award exactly 50, got %d", g.player.Score)
	}
	if g.mode != ModePower {
		t.Errorf("Mode should be power, got %s", g.mode)
	}
	if g.powerTimer != 8.0 {
		t.Errorf("Power timer should read the full 8.0s after the activation tick, got %f", g.powerTimer)
	}
	if g.ghosts[0].State != GhostFrightened {
		t.Errorf("Ghost should be frightened, got %s", g.ghosts[0].State)
	}
}

func TestPowerExpiry(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.mode = ModePower
	g.powerTimer = 0.016 // less than one 60fps frame
	for _, gh := range g.ghosts {
		gh.Frighten()
	}

	g.Step(core.NewInputFrame())

	if g.mode != ModePlaying {
		t.Errorf("Mode should revert to playing on expiry, got %s", g.mode)
	}
	for i, gh := range g.ghosts {
		if gh.State != GhostNormal {
			t.Errorf("Ghost %d should calm down on expiry, got %s", i, gh.State)
		}
		if gh.effectiveSpeed() != gh.baseSpeed {
			t.Errorf("Ghost %d speed should revert to base, got %.2f", i, gh.effectiveSpeed())
		}
	}
}

func TestFrightenedCaptureScoresAndRetreats(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.mode = ModePower
	g.powerTimer = 5.0
	g.ghosts[0].MoveTo(g.grid.PlayerSpawn())
	g.ghosts[0].Frighten()

	livesBefore := g.player.Lives
	g.Step(core.NewInputFrame())

	if g.player.Score != 200 {
		t.Errorf("Frightened capture should award exactly 200, got %d", g.player.Score)
	}
	if g.ghosts[0].State != GhostRetreating {
		t.Errorf("Captured ghost should retreat, got %s", g.ghosts[0].State)
	}
	if g.player.Lives != livesBefore {
		t.Errorf("Frightened capture must never cost a life: %d -> %d", livesBefore, g.player.Lives)
	}
}

func TestNormalContactCostsLifeAndSoftResets(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.player.Score = 70
	g.ghosts[0].MoveTo(g.grid.PlayerSpawn())

	g.Step(core.NewInputFrame())

	if g.player.Lives != 2 {
		t.Errorf("Contact with a normal ghost should cost exactly one life, got %d", g.player.Lives)
	}
	if g.player.Score != 70 {
		t.Errorf("Score should survive a lost life, got %d", g.player.Score)
	}
	if g.mode != ModePlaying {
		t.Errorf("Round should resume playing after soft reset, got %s", g.mode)
	}
	if g.player.Cell() != g.grid.PlayerSpawn() {
		t.Error("Player should be back at spawn after losing a life")
	}
	for i, gh := range g.ghosts {
		if gh.Cell() != gh.Home {
			t.Errorf("Ghost %d should be back home after soft reset", i)
		}
		if gh.State != GhostNormal {
			t.Errorf("Ghost %d flags should be cleared after soft reset, got %s", i, gh.State)
		}
	}
}

func TestFinalLifeGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.player.Lives = 1
	g.ghosts[0].MoveTo(g.grid.PlayerSpawn())

	g.Step(core.NewInputFrame())

	if g.player.Lives != 0 {
		t.Fatalf("Expected 0 lives, got %d", g.player.Lives)
	}
	if g.mode != ModeGameOver {
		t.Fatalf("Expected game over, got %s", g.mode)
	}

	// Further ticks must not mutate anything but the tick counter.
	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()

	before.Tick = after.Tick
	if !reflect.DeepEqual(before, after) {
		t.Errorf("Game-over state drifted:\n%+v\nvs\n%+v", before, after)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.player.Lives = 1
	g.ghosts[0].MoveTo(g.grid.PlayerSpawn())
	g.Step(core.NewInputFrame())

	if g.mode != ModeGameOver {
		t.Fatal("Setup should end the game")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.mode != ModePlaying {
		t.Errorf("Restart should resume playing, got %s", g.mode)
	}
	if g.player.Score != 0 || g.player.Lives != 3 {
		t.Errorf("Restart should be a full reset, got score %d lives %d", g.player.Score, g.player.Lives)
	}
}

func TestRoundClearRefillsMaze(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.player.Score = 123
	g.grid.pellets = make(map[Cell]struct{})
	g.grid.power = make(map[Cell]struct{})

	g.Step(core.NewInputFrame())

	if g.round != 2 {
		t.Errorf("Round should advance to 2, got %d", g.round)
	}
	if g.grid.PelletCount() == 0 || g.grid.PowerCount() == 0 {
		t.Error("Cleared maze should refill all collectibles")
	}
	if g.player.Score != 123 {
		t.Errorf("Score should survive a round clear, got %d", g.player.Score)
	}
	if g.player.Lives != 3 {
		t.Errorf("Lives should survive a round clear, got %d", g.player.Lives)
	}
	if g.player.Cell() != g.grid.PlayerSpawn() {
		t.Error("Player should restart at spawn on a new round")
	}
}

func TestPauseToggle(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	if !g.paused {
		t.Fatal("Pause action should pause the game")
	}

	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	after := g.Snapshot()
	before.Tick = after.Tick
	if !reflect.DeepEqual(before, after) {
		t.Error("Paused game should not advance")
	}

	g.Step(input)
	if g.paused {
		t.Error("Second pause action should resume")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:    1,
		ScreenW: 20,
		ScreenH: 10,
	})

	if !g.tooSmall {
		t.Fatal("Game should detect the window is too small")
	}

	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	after := g.Snapshot()
	before.Tick = after.Tick
	if !reflect.DeepEqual(before, after) {
		t.Error("Too-small game should not advance")
	}
}

func TestGameIDAndTitle(t *testing.T) {
	g := New()
	if g.ID() != "muncher" {
		t.Errorf("ID should be 'muncher', got %s", g.ID())
	}
	if g.Title() != "Muncher" {
		t.Errorf("Title should be 'Muncher', got %s", g.Title())
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(80, 40)
	g.Render(screen)

	content := screen.String()
	if len(content) == 0 {
		t.Fatal("Rendered screen should not be empty")
	}
	if !strings.Contains(content, "Muncher") {
		t.Error("HUD should contain the game title")
	}
	if !strings.Contains(content, "·") {
		t.Error("Maze pellets should be drawn")
	}
}
