package commands

import (
	"errors"
	"fmt"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	foodColor    = termbox.ColorRed
	gameOverFg   = termbox.ColorRed

	// cellWidth is the number of terminal columns per grid cell, terminal
	// cells are roughly twice as tall as they are wide.
	cellWidth = 2
	left      = 2
	top       = 2
)

// terminalSurface draws frames with termbox. It maps grid cells to terminal
// cells the way a pixel surface would multiply by the block size.
type terminalSurface struct{}

func (terminalSurface) Render(frame *board.Frame) error {
	if frame == nil {
		return errors.New("received nil frame")
	}
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	var (
		width  = int(frame.Width) * cellWidth
		bottom = top + int(frame.Height) + 1
	)

	renderTitle(frame)
	renderBoard(width, bottom)
	renderSnake(frame)
	renderFood(frame.Food)

	if frame.Status == string(rules.GameStatusGameOver) {
		renderGameOver(frame, width, bottom)
	}

	return termbox.Flush()
}

// screenPos is the terminal position of the left column of a grid cell.
func screenPos(p *board.Point) (int, int) {
	return left + int(p.X)*cellWidth, top + int(p.Y) + 1
}

func renderTitle(frame *board.Frame) {
	tbprint(left, top-1, defaultColor, defaultColor, fmt.Sprintf("Score: %d", frame.Score))
}

func renderSnake(frame *board.Frame) {
	for _, b := range frame.Body {
		if !b.Inside(frame.Width, frame.Height) {
			continue
		}
		x, y := screenPos(b)
		fill(x, y, cellWidth, 1, termbox.Cell{Ch: ' ', Fg: snakeColor, Bg: snakeColor})
	}
}

func renderFood(food *board.Point) {
	if food == nil {
		return
	}
	x, y := screenPos(food)
	fill(x, y, cellWidth, 1, termbox.Cell{Ch: ' ', Fg: foodColor, Bg: foodColor})
}

func renderGameOver(frame *board.Frame, width, bottom int) {
	msg := "Game Over!"
	if frame.Death != nil && frame.Death.Cause == rules.DeathCauseBoardFull {
		msg = "Board cleared!"
	}
	tbprint(left+width/2-runewidth.StringWidth(msg)/2, top+int(frame.Height)/2, gameOverFg, bgColor, msg)
	if frame.Death != nil {
		tbprint(left, bottom+1, defaultColor, defaultColor, frame.Death.Cause)
	}
}

func renderBoard(width, bottom int) {
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
