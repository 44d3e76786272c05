package board

// Snake is an ordered list of cells, head first.
type Snake struct {
	Body []*Point
}

// Move the snake 1 space in the specified direction, move does not remove the end point of the snake, that will be done
// after the snake has eaten
func (s *Snake) Move(direction Direction) {
	h := s.Head()
	if h == nil {
		return
	}
	s.Body = append([]*Point{h.Add(direction)}, s.Body...)
}

// Shrink drops the last point of the body.
func (s *Snake) Shrink() {
	if len(s.Body) == 0 {
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Head returns the first point in the body
func (s *Snake) Head() *Point {
	if len(s.Body) == 0 {
		return nil
	}
	return s.Body[0]
}

// Tail returns the last point in the body
func (s *Snake) Tail() *Point {
	if len(s.Body) == 0 {
		return nil
	}
	return s.Body[len(s.Body)-1]
}

// Occupies reports whether any body point matches p.
func (s *Snake) Occupies(p *Point) bool {
	for _, b := range s.Body {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// Points returns a deep copy of the body.
func (s *Snake) Points() []*Point {
	points := make([]*Point, 0, len(s.Body))
	for _, b := range s.Body {
		points = append(points, b.Clone())
	}
	return points
}
