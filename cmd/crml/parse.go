package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/karai17/crml/pkg/vector2"
	"github.com/karai17/crml/pkg/vector3"
)

// parseComponents splits "x,y[,z]" into exactly n floats. Surrounding
// brackets or parentheses are ignored.
func parseComponents(s string, n int) ([]float64, error) {
	body := strings.TrimSpace(s)
	body = strings.TrimPrefix(strings.TrimPrefix(body, "["), "(")
	body = strings.TrimSuffix(strings.TrimSuffix(body, "]"), ")")

	parts := strings.Split(body, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("vector %q: want %d components, got %d", s, n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", s, err)
		}
		out[i] = f
	}
	return out, nil
}

func parseVector2(s string) (vector2.Vector, error) {
	c, err := parseComponents(s, 2)
	if err != nil {
		return vector2.Vector{}, err
	}
	return vector2.New(c[0], c[1]), nil
}

func parseVector3(s string) (vector3.Vector, error) {
	c, err := parseComponents(s, 3)
	if err != nil {
		return vector3.Vector{}, err
	}
	return vector3.New(c[0], c[1], c[2]), nil
}

func parseScalar(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("scalar %q: %w", s, err)
	}
	return f, nil
}

// isScalar reports whether s is a plain number rather than a vector.
func isScalar(s string) bool {
	return !strings.ContainsAny(s, ",[(")
}

// format renders an operation result: vectors through their String method,
// numbers in the shortest exact form.
func format(r any) string {
	switch r := r.(type) {
	case float64:
		return strconv.FormatFloat(r, 'g', -1, 64)
	case fmt.Stringer:
		return r.String()
	default:
		return fmt.Sprint(r)
	}
}
