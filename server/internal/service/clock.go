package service

import (
	"fmt"
	"time"
)

// now truncates to microseconds, the precision postgres stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// pageOffset returns the offset of the page that contains element from.
func pageOffset(from, size int) (int, error) {
	if from < 0 {
		return 0, fmt.Errorf("%w: from must not be negative", ErrValidation)
	}
	if size <= 0 {
		return 0, fmt.Errorf("%w: size must be positive", ErrValidation)
	}
	return from / size * size, nil
}
