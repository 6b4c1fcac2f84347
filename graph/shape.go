package graph

import (
	"fmt"
	"strings"
)

// Shape identifies a built-in oscillator waveform.
type Shape int

const (
	// ShapeSine is a pure sinusoid.
	ShapeSine Shape = iota
	// ShapeSquare alternates between -1 and +1 with 50% duty cycle.
	ShapeSquare
	// ShapeSawtooth rises linearly from -1 to +1 once per period.
	ShapeSawtooth
	// ShapeTriangle rises and falls linearly, symmetric about zero.
	ShapeTriangle

	shapeCount // sentinel for validation
)

var shapeNames = [shapeCount]string{
	"sine", "square", "sawtooth", "triangle",
}

// String returns the name of the shape.
func (s Shape) String() string {
	if s >= 0 && s < shapeCount {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	return s >= 0 && s < shapeCount
}

// ParseShape resolves a shape by name, case-insensitively.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown oscillator shape %q", name)
}
