package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"retro-snake/game"
	"retro-snake/game/clock"
	"retro-snake/game/types"
)

// Terminal columns per grid cell, so cells look square.
const terminalCellWidth = 2

// Terminal is the tcell frontend.
type Terminal struct {
	screen    tcell.Screen
	cellCount int
	events    chan tcell.Event
	done      chan struct{}
	frame     *time.Ticker
	clock     *clock.Monotonic
	closed    bool

	ink  tcell.Style
	food tcell.Style
}

// NewTerminal takes over the terminal. Close must be called to restore it.
func NewTerminal(cellCount int, fps int) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	return newTerminal(s, cellCount, fps)
}

func newTerminal(s tcell.Screen, cellCount int, fps int) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}

	bg := tcell.StyleDefault.
		Background(rgb(Green)).
		Foreground(rgb(DarkGreen))
	s.SetStyle(bg)
	s.HideCursor()
	s.Clear()

	t := &Terminal{
		screen:    s,
		cellCount: cellCount,
		events:    make(chan tcell.Event, 32),
		done:      make(chan struct{}),
		frame:     time.NewTicker(time.Second / time.Duration(fps)),
		clock:     clock.NewMonotonic(),
		ink:       bg,
		food:      bg.Foreground(rgb(FoodRed)),
	}
	go t.pollEvents()
	return t, nil
}

// pollEvents forwards tcell events to the game loop until Close.
func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) Close() {
	close(t.done)
	t.frame.Stop()
	t.screen.Fini()
}

func (t *Terminal) Clock() clock.Source {
	return t.clock
}

func (t *Terminal) ShouldClose() bool {
	return t.closed
}

// PressedDirections drains pending key events. Quit keys are remembered
// for ShouldClose.
func (t *Terminal) PressedDirections() []types.Direction {
	seen := make(map[types.Direction]bool)
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if dir, quit := terminalKey(ev); quit {
					t.closed = true
				} else if dir != types.NONE {
					seen[dir] = true
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			var pressed []types.Direction
			for _, dir := range types.Directions {
				if seen[dir] {
					pressed = append(pressed, dir)
				}
			}
			return pressed
		}
	}
}

func terminalKey(ev *tcell.EventKey) (types.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.UP, false
	case tcell.KeyDown:
		return types.DOWN, false
	case tcell.KeyLeft:
		return types.LEFT, false
	case tcell.KeyRight:
		return types.RIGHT, false
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.NONE, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return types.UP, false
		case 's', 'j':
			return types.DOWN, false
		case 'a', 'h':
			return types.LEFT, false
		case 'd', 'l':
			return types.RIGHT, false
		case 'q':
			return types.NONE, true
		}
	}
	return types.NONE, false
}

// Draw renders one frame and waits for the next frame slot.
func (t *Terminal) Draw(g *game.Game) {
	t.screen.Clear()

	// Grid starts at column 2, row 2 leaving room for the border and title.
	left, top := 2, 2
	width := t.cellCount * terminalCellWidth

	t.drawText(left, 0, Title)
	t.drawBorder(left-1, top-1, width+2, t.cellCount+2)

	t.drawCell(left, top, g.Food.Position, '●', t.food)
	for _, p := range g.Snake.Body() {
		t.drawCell(left, top, p, '█', t.ink)
	}

	status := fmt.Sprintf("Score: %d  Best: %d  Games: %d",
		g.Score, g.Stats.GetMaxScore(), g.Stats.GetGamesPlayed())
	t.drawText(left, top+t.cellCount+1, status)
	t.drawText(left, top+t.cellCount+2, RunStatus(g))
	if !g.Running {
		t.drawText(left, top+t.cellCount+3, "Press an arrow key, q to quit")
	}

	t.screen.Show()
	<-t.frame.C
}

func (t *Terminal) drawCell(left, top int, p types.Point, r rune, style tcell.Style) {
	x := left + p.X*terminalCellWidth
	for i := 0; i < terminalCellWidth; i++ {
		t.screen.SetContent(x+i, top+p.Y, r, nil, style)
	}
}

func (t *Terminal) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, t.ink)
	}
}

func (t *Terminal) drawBorder(x, y, w, h int) {
	for i := 1; i < w-1; i++ {
		t.screen.SetContent(x+i, y, tcell.RuneHLine, nil, t.ink)
		t.screen.SetContent(x+i, y+h-1, tcell.RuneHLine, nil, t.ink)
	}
	for j := 1; j < h-1; j++ {
		t.screen.SetContent(x, y+j, tcell.RuneVLine, nil, t.ink)
		t.screen.SetContent(x+w-1, y+j, tcell.RuneVLine, nil, t.ink)
	}
	t.screen.SetContent(x, y, tcell.RuneULCorner, nil, t.ink)
	t.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, t.ink)
	t.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, t.ink)
	t.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, t.ink)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
