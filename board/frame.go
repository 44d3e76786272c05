package board

// Death records why and when a round ended.
type Death struct {
	Turn  int64
	Cause string
}

// Frame is the read-only snapshot pushed to surfaces after every tick. It
// shares no memory with the engine that produced it.
type Frame struct {
	RoundID   string
	Turn      int64
	Width     int32
	Height    int32
	Body      []*Point
	Food      *Point
	Score     int
	Direction Direction
	Status    string
	Death     *Death
}

// Head returns the first point in the body
func (f *Frame) Head() *Point {
	if len(f.Body) == 0 {
		return nil
	}
	return f.Body[0]
}
