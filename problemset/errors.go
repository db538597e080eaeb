package problemset

import "errors"

// ErrBadCount indicates a requested problem count below 1.
var ErrBadCount = errors.New("problemset: count must be ≥ 1")

// ErrTooManyDuplicates indicates that WithUnique ran out of re-rolls for a problem.
var ErrTooManyDuplicates = errors.New("problemset: too many duplicate problems")
