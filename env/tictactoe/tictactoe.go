// Package tictactoe implements tic-tac-toe played against a uniformly
// random opponent: the agent is always X and moves first; after every
// agent move the opponent (O) replies with a uniformly random legal
// move before control returns to the agent.
package tictactoe

import (
	"fmt"
	"strings"

	"rlcore/env"
	"rlcore/space"

	"golang.org/x/exp/rand"
)

// Cell values.
const (
	Empty = 0
	X     = 1
	O     = 2
)

// Board is the flattened 3x3 grid, row-major, used directly as the
// learning state: a 9-element array of cell values.
type Board [9]int

// TicTacToe plays the agent (X) against a uniformly random opponent (O).
type TicTacToe struct {
	WinReward, LossReward, DrawReward, StepReward, IllegalReward float64

	board  Board
	states *boardSpace
	rand   *rand.Rand
}

// New returns a new TicTacToe environment seeded with seed. illegalReward
// is returned, with the episode ending immediately, when the agent plays
// into an already-occupied cell; it is tracked separately from
// lossReward so the two outcomes can carry different penalties.
func New(winReward, lossReward, drawReward, stepReward, illegalReward float64, seed uint64) *TicTacToe {
	return &TicTacToe{
		WinReward: winReward, LossReward: lossReward,
		DrawReward: drawReward, StepReward: stepReward,
		IllegalReward: illegalReward,
		states:        &boardSpace{},
		rand:          rand.New(rand.NewSource(seed)),
	}
}

func (t *TicTacToe) StateSpace() space.Space[Board]  { return t.states }
func (t *TicTacToe) ActionSpace() space.Space[int]   { return actionSpace{} }

func (t *TicTacToe) Reset() env.Observation[Board] {
	t.board = Board{}
	return env.Observation[Board]{State: t.board, Reward: 0, Done: false}
}

// Step plays action (a cell index 0..8) as X. If that move does not end
// the game, the opponent immediately replies with a uniformly random
// legal move, and the resulting board (after both moves) is returned.
func (t *TicTacToe) Step(action int) env.Observation[Board] {
	if t.board[action] != Empty {
		// Illegal move ends the game immediately.
		return env.Observation[Board]{State: t.board, Reward: t.IllegalReward, Done: true}
	}
	t.board[action] = X

	if winner(t.board) == X {
		return env.Observation[Board]{State: t.board, Reward: t.WinReward, Done: true}
	}
	if isFull(t.board) {
		return env.Observation[Board]{State: t.board, Reward: t.DrawReward, Done: true}
	}

	legal := legalMoves(t.board)
	reply := legal[t.rand.Intn(len(legal))]
	t.board[reply] = O

	if winner(t.board) == O {
		return env.Observation[Board]{State: t.board, Reward: t.LossReward, Done: true}
	}
	if isFull(t.board) {
		return env.Observation[Board]{State: t.board, Reward: t.DrawReward, Done: true}
	}
	return env.Observation[Board]{State: t.board, Reward: t.StepReward, Done: false}
}

func (t *TicTacToe) Render() {
	var b strings.Builder
	symbol := func(v int) byte {
		switch v {
		case X:
			return 'X'
		case O:
			return 'O'
		default:
			return '.'
		}
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			b.WriteByte(symbol(t.board[r*3+c]))
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}

func legalMoves(b Board) []int {
	var moves []int
	for i, v := range b {
		if v == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

func isFull(b Board) bool {
	for _, v := range b {
		if v == Empty {
			return false
		}
	}
	return true
}

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func winner(b Board) int {
	for _, l := range lines {
		if b[l[0]] != Empty && b[l[0]] == b[l[1]] && b[l[1]] == b[l[2]] {
			return b[l[0]]
		}
	}
	return Empty
}

// boardSpace is a non-finite Space[Board]: the reachable board set is
// large and its enumeration order is not part of the contract, so it has
// no Enumerate, and its Sample panics (seeded reset-state sampling is
// not meaningful for a stateful board game).
type boardSpace struct{}

func (boardSpace) Sample() Board {
	panic("tictactoe: board space is not independently sampleable")
}

// actionSpace is the finite set of the nine cell indices; Step treats a
// move into an occupied cell as an immediate illegal-move loss rather
// than rejecting it, so every index is always "enumerable" regardless
// of board occupancy.
type actionSpace struct{}

func (actionSpace) Sample() int { return 0 }

func (actionSpace) Enumerate() []int {
	return []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
}

func (actionSpace) Size() int { return 9 }

func (actionSpace) Index(e int) int {
	if e < 0 || e > 8 {
		return space.NotFound
	}
	return e
}
