package indent

import "testing"

func TestMostUsed(t *testing.T) {
	t.Parallel()

	usages := map[int]*usage{}
	if got := mostUsed(usages); got != 0 {
		t.Fatalf("empty tally: got %d want 0", got)
	}

	steps := []struct {
		width int
		used  int
		want  int
	}{
		{width: 1, used: 1, want: 1},
		{width: 2, used: 2, want: 2},
		{width: 3, used: 1, want: 2},
		{width: 4, used: 1, want: 2},
		{width: 5, used: 4, want: 5},
		{width: 1, used: 10, want: 1},
	}
	for _, s := range steps {
		usages[s.width] = &usage{used: s.used, weight: s.used}
		if got := mostUsed(usages); got != s.want {
			t.Fatalf("after setting width %d to %d: got %d want %d", s.width, s.used, got, s.want)
		}
	}
}

func TestMostUsedBreaksTiesOnWeight(t *testing.T) {
	t.Parallel()

	usages := map[int]*usage{
		2: {used: 3, weight: 3},
		4: {used: 3, weight: 5},
		8: {used: 1, weight: 9},
	}
	if got := mostUsed(usages); got != 4 {
		t.Fatalf("got %d want 4", got)
	}
}

func TestMostUsedExactTiePicksSmallestWidth(t *testing.T) {
	t.Parallel()

	usages := map[int]*usage{
		8: {used: 2, weight: 2},
		3: {used: 2, weight: 2},
		6: {used: 2, weight: 2},
	}
	for i := 0; i < 20; i++ {
		if got := mostUsed(usages); got != 3 {
			t.Fatalf("got %d want 3", got)
		}
	}
}

func TestUsageBumpKeepsWeightInStep(t *testing.T) {
	t.Parallel()

	var u usage
	for i := 0; i < 5; i++ {
		u.bump()
	}
	if u.used != 5 || u.weight != 5 {
		t.Fatalf("unexpected usage after bumps: %+v", u)
	}
}
