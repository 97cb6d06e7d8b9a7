package duel

import (
	"fmt"

	"github.com/vovakirdan/snake-duel/internal/core"
)

// CellWidth is the number of screen columns used for one grid cell, so
// that cells look roughly square in a terminal.
const CellWidth = 2

// hudRows is the number of rows above the board: status line plus separator.
const hudRows = 2

// Glyphs for board objects. Each is CellWidth runes wide.
const (
	glyphHead   = "██"
	glyphBody   = "▓▓"
	glyphFood   = "()"
	glyphRock   = "##"
	glyphPortal = "<>"
)

// BoardSize returns the screen size needed to draw grid with its frame and HUD.
func BoardSize(grid core.Grid) (w, h int) {
	return grid.Width*CellWidth + 2, grid.Height + 2 + hudRows
}

// Render draws the current board into dst: HUD, frame, portals, rocks,
// food and both snakes. Snake 2 is drawn after snake 1, so a shared cell
// shows snake 2.
func (s *State) Render(dst *core.Screen) {
	s.Snapshot().Render(dst)
}

// Render draws the snapshot into dst.
func (snap Snapshot) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" P1 len %d   P2 len %d   tick %d", snap.Len(core.Player1), snap.Len(core.Player2), snap.Tick)
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}

	boardW, boardH := BoardSize(snap.Grid)
	boardH -= hudRows
	originX := core.Clamp((dst.Width()-boardW)/2, 0, dst.Width())
	originY := hudRows

	frame := core.ColorWhite
	if snap.Grid.Wrap {
		frame = core.ColorGray
	}
	dst.DrawBox(core.NewRect(originX, originY, boardW, boardH), frame)

	cell := func(p core.Point, glyph string, c core.Color) {
		dst.DrawTextColored(originX+1+p.X*CellWidth, originY+1+p.Y, glyph, c)
	}

	if snap.Portals != nil {
		cell(snap.Portals.A, glyphPortal, core.ColorCyan)
		cell(snap.Portals.B, glyphPortal, core.ColorCyan)
	}
	for _, r := range snap.Rocks {
		cell(r, glyphRock, core.ColorGray)
	}
	cell(snap.Food, glyphFood, core.ColorRed)

	drawSnake := func(body []core.Point, head, rest core.Color) {
		for i := len(body) - 1; i >= 0; i-- {
			if i == 0 {
				cell(body[i], glyphHead, head)
			} else {
				cell(body[i], glyphBody, rest)
			}
		}
	}
	drawSnake(snap.Snake1, core.ColorBrightGreen, core.ColorGreen)
	drawSnake(snap.Snake2, core.ColorBrightBlue, core.ColorBlue)
}
