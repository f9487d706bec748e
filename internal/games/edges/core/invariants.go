package core

import "fmt"

// CheckInvariants verifies shared-edge symmetry and the completion cache for
// every cell. Returns the first violation found in scan order.
func CheckInvariants(g *Grid) error {
	for _, c := range g.Cells() {
		want := true
		for _, d := range AllDirections {
			if !c.IsEdgeOccupied(d) {
				want = false
			}
			n, ok := g.Neighbor(c.Index(), d)
			if !ok {
				continue
			}
			if c.IsEdgeOccupied(d) != n.IsEdgeOccupied(d.Opposite()) {
				return &InvariantError{
					Code: CodeAsymmetricEdge,
					Cell: c.Index(),
					Message: fmt.Sprintf("%s=%v but neighbour %s %s=%v",
						d, c.IsEdgeOccupied(d), n.Index(), d.Opposite(), n.IsEdgeOccupied(d.Opposite())),
				}
			}
		}
		if c.IsCompleted() != want {
			return &InvariantError{
				Code:    CodeStaleComplete,
				Cell:    c.Index(),
				Message: fmt.Sprintf("completed=%v with occupancy %s", c.IsCompleted(), c.OccupiedSet()),
			}
		}
	}
	return nil
}

// mustHold panics with the invariant error, if any.
func mustHold(g *Grid) {
	if err := CheckInvariants(g); err != nil {
		panic(fmt.Sprintf("core: invariant violated: %v", err))
	}
}
