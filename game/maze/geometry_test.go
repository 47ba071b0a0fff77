package maze

import (
	"math"
	"testing"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/stretchr/testify/assert"
)

func TestCellCount(t *testing.T) {
	assert.Equal(t, 12, CellCount(0))
	assert.Equal(t, 18, CellCount(1))
	assert.Equal(t, 36, CellCount(4))
}

func TestCellAngles(t *testing.T) {
	for ring := 0; ring < 6; ring++ {
		for c := 0; c < CellCount(ring); c++ {
			assert.Equal(t, c, AngleToCell(ring, CellToAngle(ring, c)))
			assert.Equal(t, c, AngleToCell(ring, CellToAngle(ring, c)+tau), "one turn later")
			assert.Equal(t, c, AngleToCell(ring, CellToAngle(ring, c)-tau), "one turn earlier")
		}
	}
	assert.Equal(t, 0, AngleToCell(0, 0))
	assert.Equal(t, 11, AngleToCell(0, -1e-9))
	assert.Equal(t, 11, AngleToCell(0, tau-1e-12))
}

func TestArcHelpers(t *testing.T) {
	t.Run("angleBetween wraps past zero", func(t *testing.T) {
		assert.True(t, angleBetween(0.1, tau-0.2, 0.3))
		assert.True(t, angleBetween(tau-0.1, tau-0.2, 0.3))
		assert.False(t, angleBetween(math.Pi, tau-0.2, 0.3))
		assert.True(t, angleBetween(0.3, 0.1, 0.3), "bounds included")
		assert.False(t, angleStrictlyBetween(0.3, 0.1, 0.3), "bounds excluded")
	})

	t.Run("midpoint of the shorter arc", func(t *testing.T) {
		assert.InDelta(t, 1.0, arcMidpoint(0.5, 1.5), 1e-12)
		assert.InDelta(t, 0.0, angularDistance(0, arcMidpoint(tau-0.25, 0.25)), 1e-12)
		assert.InDelta(t, 0.0, angularDistance(0, arcMidpoint(0.25, tau-0.25)), 1e-12)
	})

	t.Run("shorterArc orders endpoints", func(t *testing.T) {
		a, b := shorterArc(tau-0.1, 0.1)
		assert.Equal(t, tau-0.1, a)
		assert.Equal(t, 0.1, b)

		a, b = shorterArc(0.1, tau-0.1)
		assert.Equal(t, tau-0.1, a)
		assert.Equal(t, 0.1, b)
	})
}

func TestPolarLayout(t *testing.T) {
	l := NewPolarLayout(4)

	assert.InDelta(t, 0.2, l.RingWidth(), 1e-12)
	radii := l.Radii()
	assert.Len(t, radii, 5)
	assert.InDelta(t, defaultInnerRadius, radii[0], 1e-12)
	assert.InDelta(t, defaultOuterRadius, radii[4], 1e-12)

	t.Run("cell centers map back to their cell", func(t *testing.T) {
		for _, pos := range radialCells(4) {
			p := l.CellCenter(pos).ToPoint()
			assert.Equal(t, pos, l.PointToGrid(p.X, p.Y))
		}
	})

	t.Run("sentinels", func(t *testing.T) {
		assert.Equal(t, game.Center, l.PointToGrid(0, 0))
		assert.Equal(t, game.Center, l.PointToGrid(0.1, 0.1))
		assert.Equal(t, game.OutOfBounds, l.PointToGrid(1.2, 0))
		assert.Equal(t, game.RingCell(3, 0), l.PointToGrid(1, 0), "the outer wall belongs to the last ring")
		assert.Equal(t, Polar{}, l.CellCenter(game.Center))
	})

	t.Run("scaling keeps cells", func(t *testing.T) {
		s := l.Scaled(300)
		assert.InDelta(t, 60.0, s.InnerRadius, 1e-9)
		p := s.CellCenter(game.RingCell(2, 5)).ToPoint()
		assert.Equal(t, game.RingCell(2, 5), s.PointToGrid(p.X, p.Y))
	})
}
