package models

import (
	"fmt"
	"strconv"

	"github.com/karai17/crml/pkg/vector2"
	"github.com/karai17/crml/pkg/vector3"
)

// parseVector3 parses the first three fields as x y z.
func parseVector3(fields []string, what string) (vector3.Vector, error) {
	if len(fields) < 3 {
		return vector3.Vector{}, fmt.Errorf("%s needs x y z", what)
	}
	var c [3]float64
	for i := range c {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return vector3.Vector{}, fmt.Errorf("invalid %s %c: %w", what, "xyz"[i], err)
		}
		c[i] = f
	}
	return vector3.New(c[0], c[1], c[2]), nil
}

// parseVector2 parses the first two fields as u v.
func parseVector2(fields []string, what string) (vector2.Vector, error) {
	if len(fields) < 2 {
		return vector2.Vector{}, fmt.Errorf("%s needs u v", what)
	}
	u, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return vector2.Vector{}, fmt.Errorf("invalid %s u: %w", what, err)
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return vector2.Vector{}, fmt.Errorf("invalid %s v: %w", what, err)
	}
	return vector2.New(u, v), nil
}
