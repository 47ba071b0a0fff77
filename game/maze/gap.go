package maze

import (
	"fmt"
	"math"
	"strings"

	"github.com/beka-birhanu/vinom-maze/game"
)

// GapPolicy selects how the gap/barrier generator spaces gaps from one ring boundary to the next.
type GapPolicy string

const (
	// GapOpposite puts each inner gap roughly opposite the previous one, wobbling
	// up to π/4 either way. Gaps have a fixed linear width, so they open wider
	// toward the center.
	GapOpposite GapPolicy = "opposite"
	// GapWeave turns each inner gap at least 2π/3 and at most 5π/3 from the
	// previous one. Gaps are a whole number of cells wide.
	GapWeave GapPolicy = "weave"
)

const (
	oppositeWobble   = math.Pi / 2 // total spread, centred on the opposite angle
	weaveMinOffset   = 2 * math.Pi / 3
	weaveSpread      = math.Pi
	weaveWideRings   = 4 // up to this many rings, weave gaps are three cells wide
	maxLayoutRetries = 64
)

type gapParams struct {
	policy    GapPolicy
	gapCells  int // weave only
	nextAngle func(prev float64, r Rand) float64
}

func (p GapPolicy) params(rings int) (gapParams, error) {
	switch p {
	case GapOpposite, "":
		return gapParams{
			policy: GapOpposite,
			nextAngle: func(prev float64, r Rand) float64 {
				return normalizeAngle(prev + math.Pi + (r.Float64()-0.5)*oppositeWobble)
			},
		}, nil
	case GapWeave:
		cells := 2
		if rings <= weaveWideRings {
			cells = 3
		}
		return gapParams{
			policy:   GapWeave,
			gapCells: cells,
			nextAngle: func(prev float64, r Rand) float64 {
				return normalizeAngle(prev + weaveMinOffset + r.Float64()*weaveSpread)
			},
		}, nil
	default:
		return gapParams{}, fmt.Errorf("%w: %q", ErrUnknownGapPolicy, p)
	}
}

// Gap is an open arc in a ring boundary.
type Gap struct {
	Angle  float64 // middle of the opening
	Width  float64 // angular width
	Radius float64 // radius of the boundary it sits in
}

// contains reports whether angle falls strictly inside the opening.
func (g Gap) contains(angle float64) bool {
	return angleStrictlyBetween(angle, g.Angle-g.Width/2, g.Angle+g.Width/2)
}

// GapMaze is a radial maze described by angles rather than by cell walls:
// every ring boundary has one gap and every ring one radial barrier.
//
// Gaps[0] opens the innermost boundary onto the center and Gaps[rings] is the
// entrance in the outer wall. Barrier i sits in ring i, half way along the
// shorter arc between the ring's two gaps, so the path has to go the long
// way round.
type GapMaze struct {
	rings    int
	seed     int64
	params   gapParams
	layout   PolarLayout
	gaps     []Gap
	barriers []float64
	entry    game.CellPosition
}

var _ game.Maze = (*GapMaze)(nil)

// NewGapBarrier lays out a gap/barrier maze. Layouts in which the entry cannot
// reach the center are discarded and redrawn from the same random sequence, so
// the result stays reproducible from seed.
func NewGapBarrier(rings int, policy GapPolicy, seed int64) (*GapMaze, error) {
	if rings <= 0 || rings > maxRings {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRings, rings)
	}
	params, err := policy.params(rings)
	if err != nil {
		return nil, err
	}

	m := &GapMaze{
		rings:    rings,
		seed:     seed,
		params:   params,
		layout:   NewPolarLayout(rings),
		gaps:     make([]Gap, rings+1),
		barriers: make([]float64, rings),
	}

	rng := NewLCG(seed)
	for attempt := 0; attempt < maxLayoutRetries; attempt++ {
		m.layoutGaps(rng)
		if Solve(m) != nil {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %d rings, seed %d", ErrUnsolvable, rings, seed)
}

// layoutGaps places the gaps from the outside in, then the barriers.
func (m *GapMaze) layoutGaps(r Rand) {
	radii := m.layout.Radii()

	angle := r.Float64() * tau
	m.gaps[m.rings] = Gap{Angle: angle, Width: m.gapWidth(m.rings, radii[m.rings]), Radius: radii[m.rings]}
	for i := m.rings - 1; i >= 0; i-- {
		angle = m.params.nextAngle(angle, r)
		m.gaps[i] = Gap{Angle: angle, Width: m.gapWidth(i, radii[i]), Radius: radii[i]}
	}

	for i := range m.barriers {
		m.barriers[i] = arcMidpoint(m.gaps[i].Angle, m.gaps[i+1].Angle)
	}

	m.entry = game.RingCell(m.rings-1, AngleToCell(m.rings-1, m.gaps[m.rings].Angle))
}

// gapWidth returns the angular width of the gap in boundary i.
func (m *GapMaze) gapWidth(boundary int, radius float64) float64 {
	if m.params.policy == GapWeave {
		ring := min(boundary, m.rings-1)
		return float64(m.params.gapCells) * tau / float64(CellCount(ring))
	}
	return m.layout.RingWidth() / radius
}

// Kind implements game.Maze.
func (m *GapMaze) Kind() string { return KindGapBarrier }

// Seed implements game.Maze.
func (m *GapMaze) Seed() int64 { return m.seed }

// Rings returns the number of rings.
func (m *GapMaze) Rings() int { return m.rings }

// Policy returns the gap spacing policy in use.
func (m *GapMaze) Policy() GapPolicy { return m.params.policy }

// Gaps returns the gaps from the innermost boundary outwards.
func (m *GapMaze) Gaps() []Gap {
	return append([]Gap(nil), m.gaps...)
}

// Barriers returns the barrier angle of every ring, innermost first.
func (m *GapMaze) Barriers() []float64 {
	return append([]float64(nil), m.barriers...)
}

// Entry implements game.Maze.
func (m *GapMaze) Entry() game.CellPosition { return m.entry }

// Goal implements game.Maze.
func (m *GapMaze) Goal() game.CellPosition { return game.Center }

// IsGoal implements game.Maze.
func (m *GapMaze) IsGoal(pos game.CellPosition) bool { return pos.IsCenter() }

// IsValidMove decides a move from the angles involved:
//   - into the center, the cell's angle must be inside the innermost gap;
//   - across a ring boundary, the angle half way between both cells must be inside that boundary's gap;
//   - along a ring, the shorter arc between both cells must not touch the ring's barrier.
func (m *GapMaze) IsValidMove(from, to game.CellPosition) bool {
	if !inRadialBounds(m.rings, from) || from == to {
		return false
	}

	fromAngle := CellToAngle(from.Ring(), from.Cell())
	if to.IsCenter() {
		return from.Ring() == 0 && m.gaps[0].contains(fromAngle)
	}
	if !inRadialBounds(m.rings, to) {
		return false
	}

	toAngle := CellToAngle(to.Ring(), to.Cell())
	switch to.Ring() - from.Ring() {
	case 0:
		start, end := shorterArc(fromAngle, toAngle)
		return !angleBetween(m.barriers[from.Ring()], start, end)
	case 1, -1:
		boundary := max(from.Ring(), to.Ring())
		return m.gaps[boundary].contains(arcMidpoint(fromAngle, toAngle))
	default:
		return false
	}
}

// Neighbors lists the adjacent cells of the same ring, the cells of the
// neighbouring rings whose arcs overlap pos, and the center for ring 0.
func (m *GapMaze) Neighbors(pos game.CellPosition) []game.CellPosition {
	if !inRadialBounds(m.rings, pos) {
		return nil
	}

	ring, cell := pos.Ring(), pos.Cell()
	n := CellCount(ring)
	result := []game.CellPosition{
		game.RingCell(ring, (cell+1)%n),
		game.RingCell(ring, (cell+n-1)%n),
	}
	if ring == 0 {
		result = append(result, game.Center)
	} else {
		result = append(result, overlapping(ring, cell, ring-1)...)
	}
	if ring+1 < m.rings {
		result = append(result, overlapping(ring, cell, ring+1)...)
	}
	return result
}

// overlapping returns the cells of ring other whose arcs overlap cell of ring.
func overlapping(ring, cell, other int) []game.CellPosition {
	n, o := CellCount(ring), CellCount(other)
	first := cell * o / n
	last := ((cell+1)*o+n-1)/n - 1
	result := make([]game.CellPosition, 0, last-first+1)
	for c := first; c <= last; c++ {
		result = append(result, game.RingCell(other, c%o))
	}
	return result
}

// Cells implements game.Maze.
func (m *GapMaze) Cells() []game.CellPosition {
	return radialCells(m.rings)
}

// Polar returns the angle and radius of a cell's middle in the normalized layout.
func (m *GapMaze) Polar(pos game.CellPosition) Polar {
	return m.layout.CellCenter(pos)
}

// CellCenter implements game.Maze.
func (m *GapMaze) CellCenter(pos game.CellPosition) game.Point {
	return m.layout.CellCenter(pos).ToPoint()
}

// PointToCell implements game.Maze.
func (m *GapMaze) PointToCell(x, y float64) game.CellPosition {
	return m.layout.PointToGrid(x, y)
}

// Snapshot implements game.Maze. Cells carry an East wall where the barrier
// blocks the step to the clockwise neighbour; ring-0 cells that open onto the
// center are flagged as exits.
func (m *GapMaze) Snapshot() game.Snapshot {
	var cells []game.CellSnapshot
	for _, pos := range m.Cells() {
		n := CellCount(pos.Ring())
		walls := []string{}
		if !m.IsValidMove(pos, game.RingCell(pos.Ring(), (pos.Cell()+1)%n)) {
			walls = append(walls, East)
		}
		cells = append(cells, game.CellSnapshot{
			Pos:     pos,
			Walls:   walls,
			IsEntry: pos == m.entry,
			IsExit:  m.IsValidMove(pos, game.Center),
		})
	}

	gaps := make([]game.GapSnapshot, 0, len(m.gaps))
	for _, g := range m.gaps {
		gaps = append(gaps, game.GapSnapshot{Angle: g.Angle, Width: g.Width, Radius: g.Radius})
	}

	return game.Snapshot{
		Kind:     KindGapBarrier,
		Seed:     m.seed,
		Rings:    m.rings,
		Cells:    cells,
		Gaps:     gaps,
		Barriers: m.Barriers(),
		Entry:    m.entry,
		Goal:     game.Center,
	}
}

// String lists the gaps and barriers in degrees, from the outside in.
func (m *GapMaze) String() string {
	var output strings.Builder
	for i := m.rings; i >= 0; i-- {
		g := m.gaps[i]
		fmt.Fprintf(&output, "boundary %2d: gap at %6.1f° width %5.1f°\n", i, degrees(g.Angle), degrees(g.Width))
		if i > 0 {
			fmt.Fprintf(&output, "ring     %2d: barrier at %6.1f°\n", i-1, degrees(m.barriers[i-1]))
		}
	}
	return output.String()
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
