package geom

import "math"

// Vector2 is a point or displacement in maze units.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Norm returns the Euclidean length.
func (v Vector2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vector2) Dist(o Vector2) float64 {
	return v.Sub(o).Norm()
}

// Equal compares both components exactly.
func (v Vector2) Equal(o Vector2) bool {
	return v.X == o.X && v.Y == o.Y
}

// ApproxEqual reports whether v and o are within eps of each other.
func (v Vector2) ApproxEqual(o Vector2, eps float64) bool {
	return v.Dist(o) <= eps
}
