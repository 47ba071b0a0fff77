package maze

import (
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRectangular(t *testing.T) {
	t.Run("rejects degenerate dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{1, 8}, {8, 1}, {0, 0}, {-4, 4}} {
			_, err := NewRectangular(dims[0], dims[1], 1)
			assert.ErrorIs(t, err, ErrInvalidDimensions, "%v", dims)
		}
	})

	t.Run("entry and exit sit on the middle row and open outwards", func(t *testing.T) {
		m, err := NewRectangular(8, 8, 2024)
		require.NoError(t, err)

		assert.Equal(t, game.CellPosition{Row: 4, Col: 0}, m.Entry())
		assert.Equal(t, game.CellPosition{Row: 4, Col: 7}, m.Goal())

		entry, _ := m.CellAt(m.Entry())
		exit, _ := m.CellAt(m.Goal())
		assert.False(t, entry.WestWall)
		assert.False(t, exit.EastWall)
	})

	t.Run("outer boundary stays closed elsewhere", func(t *testing.T) {
		m, err := NewRectangular(9, 7, 5)
		require.NoError(t, err)

		for col := 0; col < m.Width(); col++ {
			top, _ := m.CellAt(game.CellPosition{Row: 0, Col: col})
			bottom, _ := m.CellAt(game.CellPosition{Row: m.Height() - 1, Col: col})
			assert.True(t, top.NorthWall)
			assert.True(t, bottom.SouthWall)
		}
		for row := 0; row < m.Height(); row++ {
			west, _ := m.CellAt(game.CellPosition{Row: row, Col: 0})
			east, _ := m.CellAt(game.CellPosition{Row: row, Col: m.Width() - 1})
			assert.Equal(t, row != m.Entry().Row, west.WestWall)
			assert.Equal(t, row != m.Goal().Row, east.EastWall)
		}
	})
}

func TestRectangularIsPerfect(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {8, 8}, {12, 12}, {16, 16}, {5, 11}, {20, 3}} {
		for seed := int64(1); seed <= 10; seed++ {
			m, err := NewRectangular(dims[0], dims[1], seed)
			require.NoError(t, err)
			assertPerfect(t, m)
		}
	}
}

func TestRectangularEightByEight(t *testing.T) {
	const seed = 8008

	m, err := NewRectangular(8, 8, seed)
	require.NoError(t, err)
	assert.Equal(t, 63, OpenAdjacencies(m))

	path := Solve(m)
	require.NotNil(t, path)
	assert.Equal(t, game.CellPosition{Row: 4, Col: 0}, path[0])
	assert.Equal(t, game.CellPosition{Row: 4, Col: 7}, path[len(path)-1])
	assert.GreaterOrEqual(t, len(path), 8, "needs at least one cell per column")

	again, err := NewRectangular(8, 8, seed)
	require.NoError(t, err)
	assert.Equal(t, path, Solve(again))
}

func TestRectangularWallsAreShared(t *testing.T) {
	m, err := NewRectangular(10, 10, 77)
	require.NoError(t, err)

	for _, pos := range m.Cells() {
		c, _ := m.CellAt(pos)
		if east, ok := m.CellAt(game.CellPosition{Row: pos.Row, Col: pos.Col + 1}); ok {
			assert.Equal(t, c.EastWall, east.WestWall, "%v", pos)
		}
		if south, ok := m.CellAt(game.CellPosition{Row: pos.Row + 1, Col: pos.Col}); ok {
			assert.Equal(t, c.SouthWall, south.NorthWall, "%v", pos)
		}
	}
}

func TestRectangularPointToCell(t *testing.T) {
	m, err := NewRectangular(4, 3, 1)
	require.NoError(t, err)

	assert.Equal(t, game.CellPosition{Row: 0, Col: 0}, m.PointToCell(0.1, 0.9))
	assert.Equal(t, game.CellPosition{Row: 2, Col: 3}, m.PointToCell(3.99, 2.5))
	assert.Equal(t, game.OutOfBounds, m.PointToCell(-0.1, 1))
	assert.Equal(t, game.OutOfBounds, m.PointToCell(4, 1))
	assert.Equal(t, game.OutOfBounds, m.PointToCell(1, 3))

	center := m.CellCenter(game.CellPosition{Row: 2, Col: 1})
	assert.Equal(t, game.Point{X: 1.5, Y: 2.5}, center)
}

func TestRectangularString(t *testing.T) {
	m, err := NewRectangular(5, 4, 9)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
	require.Len(t, lines, 1+2*4)
	assert.Equal(t, "+---+---+---+---+---+", lines[0])
	assert.Contains(t, lines[1+2*2], " S ")
	assert.Contains(t, lines[1+2*2], " E ")
	for _, l := range lines {
		assert.Len(t, l, 1+4*5)
	}
}

func TestRectangularSnapshot(t *testing.T) {
	m, err := NewRectangular(3, 3, 4)
	require.NoError(t, err)

	s := m.Snapshot()
	assert.Equal(t, KindRectangular, s.Kind)
	assert.Equal(t, 3, s.Rows)
	assert.Equal(t, 3, s.Cols)
	require.Len(t, s.Cells, 9)

	var entries, exits int
	for _, c := range s.Cells {
		if c.IsEntry {
			entries++
			assert.NotContains(t, c.Walls, West)
		}
		if c.IsExit {
			exits++
			assert.NotContains(t, c.Walls, East)
		}
	}
	assert.Equal(t, 1, entries)
	assert.Equal(t, 1, exits)
}
