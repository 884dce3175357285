package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/bouncing-balls-go/internal/sim"
)

// arrowKeys maps Ebitengine keys to the keys the world understands
var arrowKeys = []struct {
	key  ebiten.Key
	name sim.Key
}{
	{ebiten.KeyArrowUp, sim.KeyArrowUp},
	{ebiten.KeyArrowDown, sim.KeyArrowDown},
}

// Game hosts a sim.World in an Ebitengine window
type Game struct {
	world   *sim.World
	canvas  screenCanvas
	ShowHUD bool

	PrevMX, PrevMY int  // Last polled cursor position
	cursorSeen     bool // PrevMX/PrevMY hold a real reading
}

// NewGame wraps world for ebiten.RunGame
func NewGame(world *sim.World, showHUD bool) *Game {
	return &Game{world: world, ShowHUD: showHUD}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	// Input first, so handlers run between ticks
	g.handleInput()

	g.world.Step()
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.world.Render(&g.canvas)

	if g.ShowHUD {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("gravity %.1f (up/down)  balls %d  TPS %.0f",
			g.world.Gravity, len(g.world.Balls), ebiten.ActualTPS()))
	}
}

// Layout makes the world follow the window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return int(g.world.Width), int(g.world.Height)
	}
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.world.Width || h != g.world.Height {
		g.world.Resize(w, h)
	}
	return outsideWidth, outsideHeight
}

// handleInput turns polled mouse and keyboard state into world events
func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.world.PointerDown(x, y)
	}
	if !g.cursorSeen || mx != g.PrevMX || my != g.PrevMY {
		g.world.PointerMove(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.world.PointerUp()
	}
	g.PrevMX, g.PrevMY = mx, my
	g.cursorSeen = true

	for _, k := range arrowKeys {
		if sim.KeyRepeats(inpututil.KeyPressDuration(k.key)) {
			g.world.KeyDown(k.name)
		}
	}
}

// screenCanvas draws onto the current ebiten frame
type screenCanvas struct {
	dst *ebiten.Image
}

func (c *screenCanvas) Clear() {
	c.dst.Clear()
}

func (c *screenCanvas) FillCircle(x, y, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), clr, true)
}
