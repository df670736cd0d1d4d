package rules

import "testing"

func TestApplySurvivalRules(t *testing.T) {
	want := map[int]bool{
		0: false,
		1: false,
		2: true,
		3: true,
		4: false,
		5: false,
		6: false,
		7: false,
		8: false,
	}
	for neighbors, alive := range want {
		if got := ApplySurvivalRules(neighbors); got != alive {
			t.Errorf("ApplySurvivalRules(%d) = %v, want %v", neighbors, got, alive)
		}
	}
}
