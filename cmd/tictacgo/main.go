// tictacgo is a terminal application to play tic-tac-toe against an
// optimal computer opponent.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"unicode/utf8"

	"github.com/rivo/tview"

	"github.com/bitboardgames/tictacgo/internal/config"
	"github.com/bitboardgames/tictacgo/internal/tui"
)

var (
	flagFirst  = flag.String("first", "", "Glyph for the human player")
	flagSecond = flag.String("second", "", "Glyph for the computer player")
	flagEmpty  = flag.String("empty", "", "Glyph for empty squares")
)

func main() {
	flag.Parse()

	cfg, err := config.Init()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlag(&cfg.Symbols.First, *flagFirst)
	applyFlag(&cfg.Symbols.Second, *flagSecond)
	applyFlag(&cfg.Symbols.Empty, *flagEmpty)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := tview.NewApplication()
	hint := tview.NewTextView()
	board := tui.NewBoard(app, cfg, hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(board.Box, 7, 0, true).
		AddItem(hint, 2, 0, false)
	app.SetInputCapture(board.HandleInput)

	if err := app.SetRoot(flex, true).Run(); err != nil {
		log.Fatal(err)
	}
}

func applyFlag(dst *rune, value string) {
	if value == "" {
		return
	}
	r, _ := utf8.DecodeRuneInString(value)
	*dst = r
}
