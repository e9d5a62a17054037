package milestone

import "tatvaops/internal/domain"

// Reorder extracts the milestone at fromIndex and reinserts it at toIndex,
// shifting the ones in between. Positions are reassigned to match the new
// order; Number identity is never touched. The input slice is not mutated.
func Reorder(ms []domain.Milestone, fromIndex, toIndex int) ([]domain.Milestone, error) {
	n := len(ms)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return nil, ErrInvalidMove
	}

	out := make([]domain.Milestone, 0, n)
	out = append(out, ms...)

	moved := out[fromIndex]
	out = append(out[:fromIndex], out[fromIndex+1:]...)

	rest := make([]domain.Milestone, 0, n)
	rest = append(rest, out[:toIndex]...)
	rest = append(rest, moved)
	rest = append(rest, out[toIndex:]...)

	for i := range rest {
		rest[i].Position = i + 1
	}
	return rest, nil
}
