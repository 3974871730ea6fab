package probability

import "errors"

var (
	ErrInvalidCases       = errors.New("favorable cases must be between 0 and the total, and the total must be positive")
	ErrInvalidProbability = errors.New("probability must be between 0 and 1")
	ErrZeroCondition      = errors.New("conditioning probability must not be zero")
	ErrIntersectionTooBig = errors.New("P(A∩B) cannot exceed P(A) or P(B)")
	ErrMismatchedLengths  = errors.New("priors and likelihoods must have the same length")
	ErrNoHypotheses       = errors.New("at least one hypothesis is required")
	ErrPriorsSum          = errors.New("priors must sum to 1")
	ErrZeroEvidence       = errors.New("marginal probability of the evidence must not be zero")
	ErrRaggedTable        = errors.New("contingency table rows must have the same number of columns")
	ErrNegativeCount      = errors.New("counts must not be negative")
	ErrEmptyTable         = errors.New("contingency table is empty")
	ErrNoTrials           = errors.New("number of trials must be positive")
	ErrUnknownDependency  = errors.New("unknown dependency type")
)
