package rules

import "testing"

func TestDecide(t *testing.T) {
	cases := []struct {
		name      string
		neighbors int
		alive     bool
		want      Action
	}{
		{"alive underpopulated 0", 0, true, Kill},
		{"alive underpopulated 1", 1, true, Kill},
		{"alive survives 2", 2, true, None},
		{"alive survives 3", 3, true, None},
		{"alive overpopulated 4", 4, true, Kill},
		{"alive overpopulated 8", 8, true, Kill},
		{"dead stays 0", 0, false, None},
		{"dead stays 2", 2, false, None},
		{"dead spawns 3", 3, false, Spawn},
		{"dead stays 4", 4, false, None},
		{"dead stays 8", 8, false, None},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decide(tc.neighbors, tc.alive); got != tc.want {
				t.Fatalf("Decide(%d, %v) = %v, expected %v", tc.neighbors, tc.alive, got, tc.want)
			}
		})
	}
}

func TestDecideMatchesClassicRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			want := (alive && n == 2) || n == 3
			if got := Decide(n, alive).Apply(alive); got != want {
				t.Fatalf("neighbors=%d alive=%v: next=%v, expected %v", n, alive, got, want)
			}
		}
	}
}

func TestActionApply(t *testing.T) {
	if !Spawn.Apply(false) || !Spawn.Apply(true) {
		t.Fatal("Spawn must leave the cell alive")
	}
	if Kill.Apply(true) || Kill.Apply(false) {
		t.Fatal("Kill must leave the cell dead")
	}
	if !None.Apply(true) || None.Apply(false) {
		t.Fatal("None must keep the current state")
	}
}
