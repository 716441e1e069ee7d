// Package muncher implements a maze-chase arcade game: steer the muncher
// through a pellet maze while autonomous ghosts pursue it. Eating a power
// pellet flips the chase for a few seconds.
package muncher

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-muncher/internal/config"
	"github.com/vovakirdan/tui-muncher/internal/core"
	"github.com/vovakirdan/tui-muncher/internal/registry"
)

// Mode represents the round mode.
type Mode string

const (
	ModePlaying  Mode = "playing"
	ModePower    Mode = "power"
	ModeGameOver Mode = "game_over"
)

// ghostColors are the identity colors assigned to ghosts in spawn order.
var ghostColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
}

// Game implements the maze-chase game.
type Game struct {
	cfg  config.MuncherConfig
	rng  *rand.Rand
	tick uint64

	grid   *Grid
	player *Player
	ghosts []*Ghost

	mode       Mode
	powerTimer float64
	// Set for the tick that activated power mode so the countdown does
	// not start until the following tick.
	powerFresh bool

	round    int
	tickRate int

	// Screen dimensions and maze placement
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	paused   bool
	tooSmall bool
}

// Package-level config path, settable before Reset (like the other games).
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new maze-chase game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("muncher", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "muncher"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Muncher"
}

// Reset initializes/restarts the game from scratch: fresh maze, score
// zero, full lives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadMuncher(configPath)
	if err != nil {
		loaded = config.DefaultMuncherConfig()
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.round = 1
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.hudHeight = 2

	g.grid = NewGrid()

	requiredW := g.grid.Cols() + 2
	requiredH := g.grid.Rows() + g.hudHeight + 1
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	g.mapOffsetX = (g.screenW - g.grid.Cols()) / 2
	g.mapOffsetY = g.hudHeight

	g.player = NewPlayer(
		g.grid.PlayerSpawn(),
		g.cfg.Speeds.Player,
		g.cfg.Rules.Lives,
		g.cfg.Scoring.Pellet,
		g.cfg.Scoring.PowerPellet,
	)

	g.ghosts = make([]*Ghost, 0, g.cfg.Rules.GhostCount)
	for i := 0; i < g.cfg.Rules.GhostCount; i++ {
		g.ghosts = append(g.ghosts, NewGhost(
			g.grid.GhostSpawn(i),
			ghostColors[i%len(ghostColors)],
			g.cfg.Speeds.Ghost,
			g.cfg.Speeds.FrightenedScale,
			g.cfg.Speeds.RetreatScale,
		))
	}

	g.mode = ModePlaying
	g.powerTimer = 0
	g.powerFresh = false
}

// softReset repositions the player and all ghosts at their spawns after
// a life is lost. Score, lives, and the remaining pellets carry over.
func (g *Game) softReset() {
	g.player.MoveTo(g.grid.PlayerSpawn())
	g.player.NextDir = DirNone
	for _, gh := range g.ghosts {
		gh.Respawn()
	}
	g.mode = ModePlaying
	g.powerTimer = 0
	g.powerFresh = false
}

// nextRound refills the maze after the last collectible is eaten.
// Score and lives carry over; everything spatial restarts.
func (g *Game) nextRound() {
	g.round++
	g.grid = NewGrid()
	g.softReset()
}

// dt returns the fixed simulation timestep in seconds.
func (g *Game) dt() float64 {
	return 1.0 / float64(g.tickRate)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.mode == ModeGameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.mode == ModeGameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dt := g.dt()
	g.powerFresh = false

	// Player intent and movement
	g.processInput(input)
	if g.player.Update(g.grid, dt) {
		g.enterPowerMode()
	}

	// All ghosts chase the same player cell, sampled once after the
	// player's move.
	playerCell := g.player.Cell()
	for _, gh := range g.ghosts {
		gh.Update(g.grid, g.rng, playerCell, dt)
	}

	g.resolveContacts()

	// A retreating ghost that made it home rejoins the chase.
	for _, gh := range g.ghosts {
		if gh.State == GhostRetreating && gh.Cell() == gh.Home {
			gh.Respawn()
		}
	}

	if g.mode != ModeGameOver && g.grid.Cleared() {
		g.nextRound()
	}

	g.updatePowerTimer(dt)

	return core.StepResult{State: g.State()}
}

// processInput records directional intent; last pressed wins.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.player.SetIntent(DirUp)
	case input.Has(core.ActionDown):
		g.player.SetIntent(DirDown)
	case input.Has(core.ActionLeft):
		g.player.SetIntent(DirLeft)
	case input.Has(core.ActionRight):
		g.player.SetIntent(DirRight)
	}
}

// enterPowerMode starts (or restarts) the power window. Every
// non-retreating ghost turns frightened; a second power pellet during an
// active window just refills the timer.
func (g *Game) enterPowerMode() {
	g.mode = ModePower
	g.powerTimer = g.cfg.Rules.PowerDuration
	g.powerFresh = true
	for _, gh := range g.ghosts {
		gh.Frighten()
	}
}

// exitPowerMode ends the power window on timer expiry. Frightened ghosts
// calm down; retreating ghosts keep heading home.
func (g *Game) exitPowerMode() {
	g.mode = ModePlaying
	g.powerTimer = 0
	for _, gh := range g.ghosts {
		gh.CalmDown()
	}
}

// resolveContacts handles player/ghost cell overlaps after all movement
// this tick. A frightened ghost is captured for points; a normal ghost
// costs a life. Retreating ghosts are intangible.
func (g *Game) resolveContacts() {
	playerCell := g.player.Cell()
	for _, gh := range g.ghosts {
		if gh.Cell() != playerCell {
			continue
		}
		switch gh.State {
		case GhostFrightened:
			g.player.Score += g.cfg.Scoring.Ghost
			gh.MarkCaptured()
		case GhostNormal:
			g.loseLife()
			return
		}
	}
}

// loseLife decrements lives and either ends the game or soft-resets the
// round positions.
func (g *Game) loseLife() {
	g.player.Lives--
	if g.player.Lives <= 0 {
		g.mode = ModeGameOver
		g.powerTimer = 0
		return
	}
	g.softReset()
}

// updatePowerTimer counts the power window down. The activation tick is
// skipped so a freshly eaten power pellet is worth its full duration.
func (g *Game) updatePowerTimer(dt float64) {
	if g.mode != ModePower || g.powerFresh {
		return
	}
	g.powerTimer -= dt
	if g.powerTimer <= 0 {
		g.exitPowerMode()
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)
	g.renderGhosts(dst)
	g.renderPlayer(dst)

	switch {
	case g.mode == ModeGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", g.player.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Muncher — Score: %d  Lives: %d  Round: %d", g.player.Score, g.player.Lives, g.round)
	if g.mode == ModePower {
		hud += fmt.Sprintf("  POWER %.1fs", g.powerTimer)
	}

	for x := 0; x < dst.Width() && x < len(hud); x++ {
		dst.Set(x, 0, rune(hud[x]))
	}
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderMaze draws walls and remaining collectibles.
func (g *Game) renderMaze(dst *core.Screen) {
	for row := 0; row < g.grid.Rows(); row++ {
		for col := 0; col < g.grid.Cols(); col++ {
			if g.grid.IsWall(col, row) {
				g.put(dst, col, row, '█', core.ColorBlue)
			}
		}
	}
	for cell := range g.grid.Pellets() {
		g.put(dst, cell.Col, cell.Row, '·', core.ColorWhite)
	}
	for cell := range g.grid.PowerPellets() {
		g.put(dst, cell.Col, cell.Row, '●', core.ColorBrightWhite)
	}
}

// renderPlayer draws the muncher.
func (g *Game) renderPlayer(dst *core.Screen) {
	cell := g.player.Cell()
	g.put(dst, cell.Col, cell.Row, 'C', core.ColorBrightYellow)
}

// renderGhosts draws the ghosts, colored by state: identity color when
// chasing, blue while frightened, gray while retreating home.
func (g *Game) renderGhosts(dst *core.Screen) {
	for _, gh := range g.ghosts {
		color := gh.Color
		ch := 'M'
		switch gh.State {
		case GhostFrightened:
			color = core.ColorBrightBlue
			ch = 'W'
		case GhostRetreating:
			color = core.ColorGray
			ch = '"'
		}
		cell := gh.Cell()
		g.put(dst, cell.Col, cell.Row, ch, color)
	}
}

// put draws one maze-space cell onto the screen, applying the maze offset.
func (g *Game) put(dst *core.Screen, col, row int, ch rune, color core.Color) {
	x := g.mapOffsetX + col
	y := g.mapOffsetY + row
	if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
		dst.SetColored(x, y, ch, color)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.player.Score,
		Round:    g.round,
		GameOver: g.mode == ModeGameOver,
		Paused:   g.paused,
	}
}
