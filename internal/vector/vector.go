package vector

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidVector is returned when a vector cannot be parsed
var ErrInvalidVector = errors.New("invalid vector")

// Vector is an immutable 2D vector
type Vector struct {
	X float64
	Y float64
}

// New returns the vector (x, y)
func New(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum of v and o
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies both components by k
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Magnitude returns the Euclidean length of v
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Bool reports whether v is not the zero vector
func (v Vector) Bool() bool {
	return v.Magnitude() != 0
}

// Equal reports whether both components match
func (v Vector) Equal(o Vector) bool {
	return v.X == o.X && v.Y == o.Y
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%s, %s)", formatFloat(v.X), formatFloat(v.Y))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Parse reads a vector written as "x,y"
func Parse(s string) (Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Vector{}, fmt.Errorf("%w: %q (want x,y)", ErrInvalidVector, s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Vector{}, fmt.Errorf("%w: x: %v", ErrInvalidVector, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Vector{}, fmt.Errorf("%w: y: %v", ErrInvalidVector, err)
	}

	return Vector{X: x, Y: y}, nil
}
