package engine

import "fmt"

// DomainError reports an evidence scalar outside the closed interval [0, 1].
// It is raised at input construction time, before any scoring runs.
type DomainError struct {
	Field string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s must be in range [0.0, 1.0], got %v", e.Field, e.Value)
}

// ContractError reports an internal invariant violation: the evaluation layer
// received a score outside the range the scoring layer guarantees. It is never
// clamped or retried.
type ContractError struct {
	Field string
	Value float64
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation: %s out of range, got %v", e.Field, e.Value)
}
