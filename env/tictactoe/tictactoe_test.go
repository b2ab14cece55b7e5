package tictactoe

import "testing"

func TestWinnerDetectsRow(t *testing.T) {
	b := Board{X, X, X, 0, 0, 0, 0, 0, 0}
	if got := winner(b); got != X {
		t.Fatalf("winner = %d, want X", got)
	}
}

func TestWinnerNoneOnEmptyBoard(t *testing.T) {
	if got := winner(Board{}); got != Empty {
		t.Fatalf("winner = %d, want Empty", got)
	}
}

func TestStepPlaysLegalMoveAndOpponentReplies(t *testing.T) {
	g := New(1, -1, 0, 0, -0.5, 1)
	g.Reset()

	obs := g.Step(4) // center
	if obs.State[4] != X {
		t.Fatalf("expected cell 4 to be X after the agent's move, board = %v", obs.State)
	}
	occupied := 0
	for _, v := range obs.State {
		if v != Empty {
			occupied++
		}
	}
	if occupied != 2 {
		t.Fatalf("expected 2 occupied cells after agent+opponent move, got %d", occupied)
	}
}

func TestStepIllegalMoveForfeits(t *testing.T) {
	g := New(1, -1, 0, 0, -0.5, 1)
	g.Reset()
	g.Step(0)
	obs := g.Step(0) // re-occupying the same cell is illegal
	if !obs.Done || obs.Reward != -0.5 {
		t.Fatalf("illegal move = %+v, want an immediate loss with the illegal-move reward", obs)
	}
}
