package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/textshade/img2ascii/internal/ascii"
)

// runPreview shows the converted art in a scrollable text view. Arrow keys
// and page up/down scroll; q, Escape, or Ctrl-C close the preview.
func runPreview(path string, art *ascii.Art) error {
	app := tview.NewApplication()

	header := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(fmt.Sprintf("%s - %dx%d glyphs (q to quit)", path, art.Width, art.Height))

	text := tview.NewTextView().
		SetWrap(false).
		SetScrollable(true).
		SetText(art.String())

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(text, 0, 1, true)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyCtrlC, event.Key() == tcell.KeyEscape:
			app.Stop()
		case event.Key() == tcell.KeyRune && event.Rune() == 'q':
			app.Stop()
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
