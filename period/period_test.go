package period

import "testing"

func TestEpisodesDec(t *testing.T) {
	p := Episodes(3)
	if got := p.Dec(false); got != p {
		t.Errorf("Episodes(3).Dec(false) = %v, want unchanged %v", got, p)
	}
	if got := p.Dec(true); got.n != 2 {
		t.Errorf("Episodes(3).Dec(true).n = %d, want 2", got.n)
	}
}

func TestTimestepsAlwaysDecrements(t *testing.T) {
	p := Timesteps(3)
	if got := p.Dec(false); got.n != 2 {
		t.Errorf("Timesteps(3).Dec(false).n = %d, want 2", got.n)
	}
	if got := p.Dec(true); got.n != 2 {
		t.Errorf("Timesteps(3).Dec(true).n = %d, want 2", got.n)
	}
}

func TestIsNone(t *testing.T) {
	if !Episodes(0).IsNone() {
		t.Error("Episodes(0).IsNone() should be true")
	}
	if Episodes(1).IsNone() {
		t.Error("Episodes(1).IsNone() should be false")
	}
	if !Timesteps(0).IsNone() {
		t.Error("Timesteps(0).IsNone() should be true")
	}
}

func TestOrIsNoneIffEitherIsNone(t *testing.T) {
	cases := []struct {
		a, b TimePeriod
		want bool
	}{
		{Episodes(0), Episodes(5), true},
		{Episodes(5), Episodes(0), true},
		{Episodes(5), Episodes(5), false},
		{Timesteps(0), Episodes(5), true},
	}
	for _, c := range cases {
		if got := Or(c.a, c.b).IsNone(); got != c.want {
			t.Errorf("Or(%v, %v).IsNone() = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
