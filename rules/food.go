package rules

import (
	"math/rand"

	"github.com/battlesnakeio/arcade/board"
)

// foodAttemptsPerCell bounds random sampling before falling back to a scan of
// every free cell.
const foodAttemptsPerCell = 4

// PlaceFood picks a cell not covered by the snake, uniformly at random. It
// returns nil when the snake covers the whole board.
func PlaceFood(rng *rand.Rand, width, height int32, snake *board.Snake) *board.Point {
	if int64(len(snake.Body)) < int64(width)*int64(height) {
		attempts := foodAttemptsPerCell * int(width) * int(height)
		for i := 0; i < attempts; i++ {
			p := &board.Point{
				X: rng.Int31n(width),
				Y: rng.Int31n(height),
			}
			if !snake.Occupies(p) {
				return p
			}
		}
	}
	return getUnoccupiedPoint(rng, width, height, snake)
}

func getUnoccupiedPoint(rng *rand.Rand, width, height int32, snake *board.Snake) *board.Point {
	openPoints := getUnoccupiedPoints(width, height, snake)

	if len(openPoints) == 0 {
		return nil
	}

	randIndex := rng.Intn(len(openPoints))

	return openPoints[randIndex]
}

func getUnoccupiedPoints(width, height int32, snake *board.Snake) []*board.Point {
	occupied := make(map[board.Point]struct{}, len(snake.Body))
	for _, b := range snake.Body {
		occupied[*b] = struct{}{}
	}

	free := int(width*height) - len(occupied)
	if free < 0 {
		free = 0
	}
	candidatePoints := make([]*board.Point, 0, free)

	for x := int32(0); x < width; x++ {
		for y := int32(0); y < height; y++ {
			p := board.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				candidatePoints = append(candidatePoints, &p)
			}
		}
	}

	return candidatePoints
}
