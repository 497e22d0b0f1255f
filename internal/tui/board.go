// Package tui renders an interactive tic-tac-toe board in the terminal
// using tview, playing the human against the built-in opponent.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/bitboardgames/tictacgo/internal/config"
	"github.com/bitboardgames/tictacgo/internal/engine"
)

// BoardUI draws the board inside a tview Box and routes key events to
// the engine. The human plays engine.First; every accepted move is
// answered immediately by engine.ChooseMove.
type BoardUI struct {
	Box   *tview.Box
	hint  *tview.TextView
	app   *tview.Application
	marks engine.Marks
	board engine.Board
	sel   int
}

func NewBoard(app *tview.Application, cfg *config.Config, hint *tview.TextView) *BoardUI {
	ui := &BoardUI{
		Box:   tview.NewBox(),
		hint:  hint,
		app:   app,
		marks: cfg.Marks(),
		sel:   4,
	}
	ui.board = engine.NewBoardWith(0, 0, ui.marks)
	ui.Box.SetBorder(true).SetTitle(" tictacgo ")
	ui.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		for i := 0; i < engine.Length; i++ {
			cx := x + 2 + (i%3)*4
			cy := y + 1 + (i/3)*2
			style := tcell.StyleDefault
			if i == ui.sel && !ui.over() {
				style = style.Reverse(true)
			}
			screen.SetContent(cx, cy, ui.board.Mark(i), nil, style)
		}
		return x, y, width, height
	})
	ui.refreshHint()
	return ui
}

// HandleInput is installed as the application's input capture.
func (ui *BoardUI) HandleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		ui.moveSelection(-1, 0)
	case tcell.KeyRight:
		ui.moveSelection(1, 0)
	case tcell.KeyUp:
		ui.moveSelection(0, -1)
	case tcell.KeyDown:
		ui.moveSelection(0, 1)
	case tcell.KeyEnter:
		ui.play()
	case tcell.KeyEscape:
		ui.app.Stop()
	case tcell.KeyRune:
		switch r := event.Rune(); r {
		case 'h':
			ui.moveSelection(-1, 0)
		case 'l':
			ui.moveSelection(1, 0)
		case 'k':
			ui.moveSelection(0, -1)
		case 'j':
			ui.moveSelection(0, 1)
		case 'r':
			ui.Reset()
		case 'q':
			ui.app.Stop()
		default:
			// The numeric menu from the text version: keys 0-8 play
			// the square directly.
			if r >= '0' && r <= '8' {
				ui.sel = int(r - '0')
				ui.play()
			}
		}
	default:
		return event
	}
	return nil
}

func (ui *BoardUI) moveSelection(dx, dy int) {
	if ui.over() {
		return
	}
	col := ui.sel%3 + dx
	row := ui.sel/3 + dy
	if col < 0 || col > 2 || row < 0 || row > 2 {
		return
	}
	ui.sel = row*3 + col
}

func (ui *BoardUI) play() {
	if ui.over() {
		return
	}
	tr := ui.board.Move(engine.First, ui.sel)
	if tr.Status != engine.Accepted {
		ui.hint.SetText("Square taken")
		return
	}
	ui.board = tr.Board
	if !ui.over() {
		if reply := engine.ChooseMove(ui.board); reply != engine.NoMove {
			ui.board = ui.board.Move(engine.Second, reply).Board
		}
	}
	ui.refreshHint()
}

// Reset starts a fresh game.
func (ui *BoardUI) Reset() {
	ui.board = engine.NewBoardWith(0, 0, ui.marks)
	ui.sel = 4
	ui.refreshHint()
}

func (ui *BoardUI) over() bool {
	return ui.board.IsFull() || ui.board.HasWin(engine.First) || ui.board.HasWin(engine.Second)
}

func (ui *BoardUI) refreshHint() {
	var status string
	switch {
	case ui.board.HasWin(engine.First):
		status = "You win!"
	case ui.board.HasWin(engine.Second):
		status = "You lose!"
	case ui.board.IsFull():
		status = "Tie!"
	default:
		status = "Your move"
	}
	ui.hint.SetText(status + "  (arrows/0-8 move, enter play, r reset, q quit)")
}
