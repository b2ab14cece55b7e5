package maze

import "testing"

func TestMazeWallsBlockMovement(t *testing.T) {
	m := New(3, 3, Pos{0, 0}, Pos{2, 2}, []Pos{{0, 1}}, -1, 10, 1)
	m.Reset()

	// Moving east from (0,0) hits the wall at (0,1) and stays put.
	obs := m.Step(East)
	if obs.State != (Pos{0, 0}) {
		t.Fatalf("Step(East) into a wall = %+v, want to stay at (0,0)", obs.State)
	}
}

func TestMazeReachingGoalEndsEpisode(t *testing.T) {
	m := New(1, 2, Pos{0, 0}, Pos{0, 1}, nil, -1, 10, 1)
	m.Reset()

	obs := m.Step(East)
	if obs.State != (Pos{0, 1}) || !obs.Done || obs.Reward != 10 {
		t.Fatalf("Step(East) into goal = %+v, want state (0,1), done true, reward 10", obs)
	}
}

func TestMazeStateSpaceEnumeratesEveryCell(t *testing.T) {
	m := New(2, 3, Pos{0, 0}, Pos{1, 2}, nil, -1, 10, 1)
	cells := m.states.Enumerate()
	if len(cells) != 6 {
		t.Fatalf("Enumerate() returned %d cells, want 6", len(cells))
	}
}
