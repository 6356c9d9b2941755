// Package ui holds the screen layout and palette shared by the frontends,
// and the tcell terminal frontend.
package ui

import (
	"image/color"

	"retro-snake/game/types"
)

const Title = "Retro Snake"

var (
	Green     = color.RGBA{R: 173, G: 204, B: 96, A: 255}
	DarkGreen = color.RGBA{R: 43, G: 51, B: 24, A: 255}
	FoodRed   = color.RGBA{R: 230, G: 41, B: 55, A: 255}
)

// Layout places the grid on screen. Sizes are in pixels for the window
// frontend and in character cells for the terminal one.
type Layout struct {
	CellSize  int32
	CellCount int32
	Offset    int32
}

// ScreenSize is the window edge length: the grid plus the offset on both sides.
func (l Layout) ScreenSize() int32 {
	return 2*l.Offset + l.CellSize*l.CellCount
}

// CellOrigin returns the top-left screen position of a grid cell.
func (l Layout) CellOrigin(p types.Point) (x, y int32) {
	return l.Offset + int32(p.X)*l.CellSize, l.Offset + int32(p.Y)*l.CellSize
}
