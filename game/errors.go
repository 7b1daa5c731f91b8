package game

import "fmt"

// IllegalActionError is returned by Result when the action is not a member of
// Actions(state). It is propagated immediately, never silently corrected.
type IllegalActionError struct {
	Action Action
	State  State
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %v at state %v", e.Action, e.State)
}

// TerminalStateError is returned when a search or an agent is asked to act at
// a state with no legal actions.
type TerminalStateError struct {
	State State
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("search requested on terminal state %v", e.State)
}

// InvalidDistributionError is returned when a chance distribution is empty or
// its probabilities do not sum to 1 within ProbTolerance.
type InvalidDistributionError struct {
	Reason string
	Sum    float64
}

func (e *InvalidDistributionError) Error() string {
	return fmt.Sprintf("invalid chance distribution: %s (sum=%g)", e.Reason, e.Sum)
}

// BudgetExceededError is returned when an exhaustive search hits a configured
// depth cap without a heuristic to estimate the cut subtree. The search never
// truncates silently: either a heuristic supplies an estimate or the search
// fails with this error and returns no action.
type BudgetExceededError struct {
	MaxDepth int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("search budget exceeded: depth cap %d reached without a heuristic", e.MaxDepth)
}
