package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVectorCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"v2", "add", "1,2", "3,4"}, "[ 4.000, 6.000 ]"},
		{[]string{"v2", "add", "1,2", "0.5"}, "[ 1.500, 2.500 ]"},
		{[]string{"v2", "sub", "-1,2", "3,4"}, "[ -4.000, -2.000 ]"},
		{[]string{"v2", "mul", "1,2", "-2"}, "[ -2.000, -4.000 ]"},
		{[]string{"v2", "div", "1,2", "2,4"}, "[ 0.500, 0.500 ]"},
		{[]string{"v2", "dot", "1,2", "2,1"}, "4"},
		{[]string{"v2", "cross", "1,2", "2,1"}, "-3"},
		{[]string{"v2", "len", "3,4"}, "5"},
		{[]string{"v2", "len2", "3,4"}, "25"},
		{[]string{"v2", "normalize", "0,0"}, "[ 0.000, 0.000 ]"},
		{[]string{"v2", "dist", "0,0", "3,4"}, "5"},
		{[]string{"v2", "perp", "1,2"}, "[ -2.000, 1.000 ]"},
		{[]string{"v2", "lerp", "1,0", "0,1", "0.5"}, "[ 0.500, 0.500 ]"},
		{[]string{"v2", "trim", "3,4", "1"}, "[ 0.600, 0.800 ]"},
		{[]string{"v2", "rotate", "1,0", "3.141592653589793"}, "[ -1.000, 0.000 ]"},
		{[]string{"v2", "angle-to", "0,1", "0,0"}, "1.5707963267948966"},
		{[]string{"v3", "add", "[1, 2, 3]", "(3,2,1)"}, "[ 4.000, 4.000, 4.000 ]"},
		{[]string{"v3", "cross", "1,2,3", "3,2,1"}, "[ -4.000, 8.000, -4.000 ]"},
		{[]string{"v3", "len", "1,2,2"}, "3"},
		{[]string{"v3", "rotate", "1,0,0", "1.5707963267948966", "0,0,10"}, "[ 0.000, 1.000, 0.000 ]"},
		{[]string{"v3", "div", "1,2,3", "0"}, "[ +Inf, +Inf, +Inf ]"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestVectorCommandErrors(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr string
	}{
		{[]string{"v2", "frobnicate", "1,2"}, `unknown v2 operation "frobnicate"`},
		{[]string{"v2", "add", "1,2"}, "v2 add takes <a> <b|scalar>, got 1 arguments"},
		{[]string{"v2", "len", "1,2,3"}, "want 2 components, got 3"},
		{[]string{"v3", "dot", "1,2,x", "1,2,3"}, `vector "1,2,x"`},
		{[]string{"v3", "rotate", "1,0,0", "pi", "0,0,1"}, `scalar "pi"`},
		{[]string{"v3", "angle-to", "1,0,0", "0,1,0"}, `unknown v3 operation "angle-to"`},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseComponents(t *testing.T) {
	c, err := parseComponents(" [ 1.5, -2, 3e2 ] ", 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2, 300}, c)

	_, err = parseComponents("1,2", 3)
	assert.Error(t, err)

	assert.True(t, isScalar("-2.5"))
	assert.False(t, isScalar("1,2"))
	assert.False(t, isScalar("[1]"))
}

func TestPolarCommand(t *testing.T) {
	out, err := execute(t, "polar", "3,0")
	require.NoError(t, err)
	assert.Equal(t, "radius: 3\nangle:  6.283185307179586\n", out)

	out, err = execute(t, "polar", "--from", "2,3.141592653589793")
	require.NoError(t, err)
	assert.Equal(t, "[ -2.000, 0.000 ]\n", out)

	_, err = execute(t, "polar")
	assert.Error(t, err)
	_, err = execute(t, "polar", "--from", "1,0", "1,0")
	assert.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.obj")
	obj := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\nf 1 2 3\n"
	require.NoError(t, os.WriteFile(path, []byte(obj), 0o600))

	out, err := execute(t, "info", "--clean", path)
	require.NoError(t, err)
	assert.Contains(t, out, "File:       square.obj\n")
	assert.Contains(t, out, "Format:     OBJ\n")
	assert.Contains(t, out, "Triangles:  2\n")
	assert.Contains(t, out, "Removed:    1 faces\n")
	assert.Contains(t, out, "Bounds Max: [ 1.000, 1.000, 0.000 ]\n")
	assert.Contains(t, out, "Centroid:   [ 0.500, 0.500, 0.000 ]\n")
	assert.Contains(t, out, "Area:       1.000\n")

	_, err = execute(t, "info", filepath.Join(t.TempDir(), "missing.stl"))
	assert.Error(t, err)
}

func TestSpringCommand(t *testing.T) {
	out, err := execute(t, "spring", "0,0,0", "1,2,3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Less(t, len(lines), 600, "critically damped spring should settle")

	last := strings.SplitN(strings.TrimSpace(lines[len(lines)-1]), " ", 2)
	require.Len(t, last, 2)
	pos, err := parseVector3(last[1])
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pos.X, 2e-3)
	assert.InDelta(t, 2.0, pos.Y, 2e-3)
	assert.InDelta(t, 3.0, pos.Z, 2e-3)

	out, err = execute(t, "spring", "--frames", "3", "0,0,0", "1,2,3")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
}

func TestThrowCommand(t *testing.T) {
	out, err := execute(t, "throw", "0,1,0", "1,5,0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 10)
	assert.Less(t, len(lines), 600)
	assert.Contains(t, lines[len(lines)-1], "[ ")
}
