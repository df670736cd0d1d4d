package rules

const (
	minNeighbors = 2
	maxNeighbors = 3
)

/*
ApplySurvivalRules determines whether a cell is alive in the next generation.

A cell is alive next generation when it has 2 or 3 living neighbors and dead
otherwise. The current state of the cell is not consulted, so a dead cell with
2 living neighbors is born as well.
*/
func ApplySurvivalRules(neighbors int) bool {
	return neighbors >= minNeighbors && neighbors <= maxNeighbors
}
