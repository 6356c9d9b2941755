package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"retro-snake/game"
	"retro-snake/game/types"
)

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func TestTerminalKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		dir  types.Direction
		quit bool
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), types.UP, false},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), types.DOWN, false},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), types.LEFT, false},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), types.RIGHT, false},
		{"wasd", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), types.LEFT, false},
		{"vim", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), types.UP, false},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), types.NONE, true},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), types.NONE, true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), types.NONE, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, quit := terminalKey(tt.ev)
			if dir != tt.dir || quit != tt.quit {
				t.Errorf("terminalKey = (%v, %v), want (%v, %v)", dir, quit, tt.dir, tt.quit)
			}
		})
	}
}

func newSimulatedTerminal(t *testing.T, cellCount int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := newTerminal(sim, cellCount, 1000)
	if err != nil {
		t.Fatalf("newTerminal: %v", err)
	}
	sim.SetSize(80, 40)
	t.Cleanup(term.Close)
	return term, sim
}

func TestTerminalDraw(t *testing.T) {
	term, sim := newSimulatedTerminal(t, 10)
	g := game.NewGame(10, zeroRand{})
	g.Food.Position = types.Point{X: 1, Y: 1}

	term.Draw(g)

	// Grid origin is column 2, row 2; each cell is two columns wide.
	if r, _, _, _ := sim.GetContent(2+1*terminalCellWidth, 2+1); r != '●' {
		t.Errorf("food cell shows %q, want '●'", r)
	}
	head := g.Snake.Head()
	if r, _, _, _ := sim.GetContent(2+head.X*terminalCellWidth, 2+head.Y); r != '█' {
		t.Errorf("head cell shows %q, want '█'", r)
	}
	if r, _, _, _ := sim.GetContent(1, 1); r != tcell.RuneULCorner {
		t.Errorf("border corner shows %q", r)
	}
}

func TestTerminalInput(t *testing.T) {
	term, sim := newSimulatedTerminal(t, 10)

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)

	var got []types.Direction
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < 2 && time.Now().Before(deadline) {
		got = append(got, term.PressedDirections()...)
		time.Sleep(5 * time.Millisecond)
	}

	if len(got) != 2 {
		t.Fatalf("got %v, want two directions", got)
	}
	if term.ShouldClose() {
		t.Error("arrow keys should not close the terminal")
	}

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	deadline = time.Now().Add(2 * time.Second)
	for !term.ShouldClose() && time.Now().Before(deadline) {
		term.PressedDirections()
		time.Sleep(5 * time.Millisecond)
	}
	if !term.ShouldClose() {
		t.Error("q should close the terminal")
	}
}

func TestTerminalDrawShowsGameOverCause(t *testing.T) {
	term, sim := newSimulatedTerminal(t, 10)
	g := game.NewGame(10, zeroRand{})
	g.GameOver(types.WallCollision)

	term.Draw(g)

	// Cause line sits below the status line, under the bottom border.
	want := RunStatus(g)
	row := 2 + 10 + 2
	for i, r := range want {
		if got, _, _, _ := sim.GetContent(2+i, row); got != r {
			t.Fatalf("row %d col %d shows %q, want %q", row, 2+i, got, r)
		}
	}
}
