package engine

import "github.com/battlesnakeio/arcade/board"

// Surface receives a frame after every tick. The engine never reads anything
// back from it.
type Surface interface {
	Render(frame *board.Frame) error
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func(frame *board.Frame) error

// Render calls f(frame).
func (f SurfaceFunc) Render(frame *board.Frame) error { return f(frame) }

// Surfaces fans a frame out to every surface in order. All surfaces are
// rendered even when one fails, the first error is returned.
func Surfaces(surfaces ...Surface) Surface {
	return multiSurface(surfaces)
}

type multiSurface []Surface

func (ms multiSurface) Render(frame *board.Frame) error {
	var first error
	for _, s := range ms {
		if s == nil {
			continue
		}
		if err := s.Render(frame); err != nil && first == nil {
			first = err
		}
	}
	return first
}
