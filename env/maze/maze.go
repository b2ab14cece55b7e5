// Package maze implements a grid maze environment: the agent starts at
// a fixed cell and must reach a fixed goal cell, moving one of four
// compass directions per step; walls block movement into a cell (the
// agent stays put and still pays the per-step cost).
package maze

import (
	"fmt"
	"strings"

	"rlcore/env"
	"rlcore/space"

	"golang.org/x/exp/rand"
)

// Action indices, in the fixed order StateSpace/ActionSpace enumerate.
const (
	North = 0
	South = 1
	West  = 2
	East  = 3
)

// Pos is a (row, col) grid cell, with row 0 at the top.
type Pos struct {
	Row, Col int
}

// Maze is a rectangular grid with fixed start and goal cells and an
// arbitrary set of blocked (wall) cells.
type Maze struct {
	Rows, Cols int
	Start      Pos
	Goal       Pos
	Walls      map[Pos]bool
	StepReward float64
	GoalReward float64

	states  space.FiniteSpace[Pos]
	actions space.Finite
	current Pos
}

// New returns a Maze. walls lists the blocked cells.
func New(rows, cols int, start, goal Pos, walls []Pos, stepReward, goalReward float64, seed uint64) *Maze {
	wallSet := make(map[Pos]bool, len(walls))
	for _, w := range walls {
		wallSet[w] = true
	}
	return &Maze{
		Rows: rows, Cols: cols,
		Start: start, Goal: goal,
		Walls:      wallSet,
		StepReward: stepReward,
		GoalReward: goalReward,
		states:     newCellSpace(rows, cols, seed),
		actions:    space.NewFinite(4, seed+1),
		current:    start,
	}
}

func (m *Maze) StateSpace() space.Space[Pos]  { return m.states }
func (m *Maze) ActionSpace() space.Space[int] { return m.actions }

// Actions returns the four-direction action space, enumerable for
// trainers that need to loop over every action.
func (m *Maze) Actions() space.FiniteSpace[int] { return m.actions }

func (m *Maze) Reset() env.Observation[Pos] {
	m.current = m.Start
	return env.Observation[Pos]{State: m.current, Reward: 0, Done: false}
}

func (m *Maze) Step(action int) env.Observation[Pos] {
	next := m.move(m.current, action)
	if m.Walls[next] {
		next = m.current
	}
	m.current = next

	if next == m.Goal {
		return env.Observation[Pos]{State: next, Reward: m.GoalReward, Done: true}
	}
	return env.Observation[Pos]{State: next, Reward: m.StepReward, Done: false}
}

func (m *Maze) move(p Pos, action int) Pos {
	next := p
	switch action {
	case North:
		next.Row--
	case South:
		next.Row++
	case West:
		next.Col--
	case East:
		next.Col++
	}
	if next.Row < 0 || next.Row >= m.Rows || next.Col < 0 || next.Col >= m.Cols {
		return p
	}
	return next
}

// Render prints an ASCII picture of the maze with the agent's current
// cell marked 'A', the goal 'G', and walls '#'.
func (m *Maze) Render() {
	var b strings.Builder
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			p := Pos{Row: r, Col: c}
			switch {
			case p == m.current:
				b.WriteByte('A')
			case p == m.Goal:
				b.WriteByte('G')
			case m.Walls[p]:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}

// cellSpace enumerates every (row, col) cell of an r x c grid in
// row-major order.
type cellSpace struct {
	rows, cols int
	cells      []Pos
	rand       *rand.Rand
}

func newCellSpace(rows, cols int, seed uint64) *cellSpace {
	cells := make([]Pos, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, Pos{Row: r, Col: c})
		}
	}
	return &cellSpace{rows: rows, cols: cols, cells: cells, rand: rand.New(rand.NewSource(seed))}
}

func (c *cellSpace) Sample() Pos {
	return c.cells[c.rand.Intn(len(c.cells))]
}

func (c *cellSpace) Enumerate() []Pos { return c.cells }
func (c *cellSpace) Size() int        { return len(c.cells) }

func (c *cellSpace) Index(e Pos) int {
	for i, p := range c.cells {
		if p == e {
			return i
		}
	}
	return space.NotFound
}
