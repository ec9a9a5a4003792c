package utils

import "errors"

// MatchError returns the first target that err wraps.
func MatchError(err error, targets ...error) (error, bool) {
	for _, target := range targets {
		if errors.Is(err, target) {
			return target, true
		}
	}

	return nil, false
}
