package pendulum

// Point is a 2D position in simulation units. The origin is arm A's pivot;
// y grows upward, so a hanging bob sits at negative y.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}
