package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-rows", "4", "-cols", "5", "-seed", "9", "-solve"}, &out))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "rectangular maze, seed 9\n"))
	assert.Contains(t, text, "+---+---+---+---+---+")
	assert.Contains(t, text, "solution:")
}

func TestRunYAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-kind", "gap-barrier", "-rings", "4", "-policy", "weave", "-seed", "77", "-format", "yaml"}, &out))

	var doc document
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, maze.KindGapBarrier, doc.Config.Kind)
	assert.Equal(t, maze.GapWeave, doc.Config.GapPolicy)
	assert.Zero(t, doc.Config.Rows)
	assert.Len(t, doc.Maze.Gaps, 5)

	m, err := maze.New(doc.Config)
	require.NoError(t, err)
	assert.Equal(t, m.Snapshot().Entry, doc.Maze.Entry)
}

func TestRunJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.json")
	require.NoError(t, run([]string{"-kind", "radial", "-rings", "3", "-seed", "5", "-format", "json", "-solve", "-out", path}, &bytes.Buffer{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, int64(5), doc.Config.Seed)
	assert.Equal(t, 3, doc.Maze.Rings)
	require.NotEmpty(t, doc.Solution)
	assert.True(t, doc.Solution[len(doc.Solution)-1].IsCenter())
}

func TestRunErrors(t *testing.T) {
	assert.ErrorIs(t, run([]string{"-kind", "radial", "-rings", "0"}, &bytes.Buffer{}), maze.ErrInvalidRings)
	assert.Error(t, run([]string{"-format", "xml"}, &bytes.Buffer{}))
	assert.Error(t, run([]string{"-no-such-flag"}, &bytes.Buffer{}))
}
