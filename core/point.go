package core

// Point is a cell coordinate on the playfield grid
type Point struct {
	X, Y int
}

// Add returns the point offset by one cell in direction d
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DirectionTo returns the cardinal direction of a unit step from p to q
// ok is false when q is not one orthogonal step away from p
func (p Point) DirectionTo(q Point) (d Direction, ok bool) {
	switch {
	case q.X == p.X && q.Y == p.Y-1:
		return DirUp, true
	case q.X == p.X && q.Y == p.Y+1:
		return DirDown, true
	case q.Y == p.Y && q.X == p.X-1:
		return DirLeft, true
	case q.Y == p.Y && q.X == p.X+1:
		return DirRight, true
	}
	return DirDown, false
}
