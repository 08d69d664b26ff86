// File: step.go
// Role: ReduceHistoryStep (C6) -- immutable record of one reduction
// step's identifier bookkeeping, sufficient to invert it exactly.
// AI-HINT (file):
//   - IsReduceByParallelEdge is *defined* as ResultE1ID == ResultE2ID;
//     do not add a separate kind flag, callers rely on this equality.

package history

// Step is an immutable record of one cubic-graph reduction: the
// identifiers of everything that was removed and everything that was
// created, enough to reconstruct the pre-reduction graph exactly.
//
// For a unique-edge step, ResultE1ID and ResultE2ID are two distinct
// edges produced by gluing, and (V1E1ID, V1E2ID) / (V2E1ID, V2E2ID) are
// the edges that were glued at V1/V2 respectively.
//
// For a parallel-edge step, ResultE1ID == ResultE2ID (a single
// resulting edge); V1E2ID == V2E2ID and both equal the identifier of
// the second, redundant parallel edge that was also removed; V1E1ID and
// V2E1ID are the two other (non-parallel) edges glued into the result.
type Step struct {
	V1ID, V2ID int
	EID        int
	V1E1ID     int
	V1E2ID     int
	V2E1ID     int
	V2E2ID     int
	ResultE1ID int
	ResultE2ID int
}

// IsReduceByParallelEdge reports whether this step records a
// parallel-edge reduction, which collapses to a single result edge
// (ResultE1ID == ResultE2ID) rather than two distinct ones.
func (s Step) IsReduceByParallelEdge() bool {
	return s.ResultE1ID == s.ResultE2ID
}
