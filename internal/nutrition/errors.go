package nutrition

import "errors"

var (
	// ErrValidation wraps rejected input; nothing is mutated when it is
	// returned.
	ErrValidation = errors.New("validation failed")

	ErrDuplicateGoalKey = errors.New("a nutrient with this name already exists")
	ErrBuiltinGoal      = errors.New("builtin goals cannot be deleted")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrFoodNotFound     = errors.New("food not found")
	ErrSeedFood         = errors.New("seed foods cannot be modified")
)
