package nav

import (
	"errors"
	"fmt"
)

// ErrUnknownTab is matched by every *UnknownTabError via errors.Is.
var ErrUnknownTab = errors.New("unknown tab")

// UnknownTabError reports a selection outside the configured tab set.
type UnknownTabError struct {
	ID string
}

func (e *UnknownTabError) Error() string {
	return fmt.Sprintf("unknown tab %q", e.ID)
}

func (e *UnknownTabError) Is(target error) bool {
	return target == ErrUnknownTab
}
