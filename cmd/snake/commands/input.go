package commands

import (
	"github.com/battlesnakeio/arcade/board"
	termbox "github.com/nsf/termbox-go"
)

var keyDirections = map[termbox.Key]board.Direction{
	termbox.KeyArrowUp:    board.DirectionUp,
	termbox.KeyArrowDown:  board.DirectionDown,
	termbox.KeyArrowLeft:  board.DirectionLeft,
	termbox.KeyArrowRight: board.DirectionRight,
}

var runeDirections = map[rune]board.Direction{
	'w': board.DirectionUp,
	's': board.DirectionDown,
	'a': board.DirectionLeft,
	'd': board.DirectionRight,
	'W': board.DirectionUp,
	'S': board.DirectionDown,
	'A': board.DirectionLeft,
	'D': board.DirectionRight,
}

// keyDirection maps a key press to a heading.
func keyDirection(ev termbox.Event) (board.Direction, bool) {
	if ev.Type != termbox.EventKey {
		return "", false
	}
	if ev.Ch != 0 {
		d, ok := runeDirections[ev.Ch]
		return d, ok
	}
	d, ok := keyDirections[ev.Key]
	return d, ok
}

func isQuit(ev termbox.Event) bool {
	if ev.Type != termbox.EventKey {
		return false
	}
	return ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q'
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}

// forwardKeys turns key presses into directions, one per press, until a quit
// key is seen or the terminal is interrupted. quit is called once on exit.
func forwardKeys(events <-chan termbox.Event, directions chan<- board.Direction, quit func()) {
	defer quit()
	for ev := range events {
		if ev.Type == termbox.EventInterrupt || isQuit(ev) {
			return
		}
		if d, ok := keyDirection(ev); ok {
			directions <- d
		}
	}
}
