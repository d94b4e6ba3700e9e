package activityform

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/bulletin/internal/services/activity"
)

// LoadError wraps a failed reference data fetch.
type LoadError struct {
	What string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load %s: %v", e.What, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// cancelled reports errors caused by the screen closing or a load being
// superseded. Those are never shown to the user.
func cancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// describeSaveError turns a save failure into a notification message.
func describeSaveError(err error) string {
	var verr *activity.ValidationError
	switch {
	case errors.As(err, &verr):
		return fmt.Sprintf("Invalid %s: %s", verr.Field, verr.Reason)
	case errors.Is(err, activity.ErrActivityNotFound):
		return "This activity no longer exists"
	case errors.Is(err, context.DeadlineExceeded):
		return "Saving timed out, try again"
	default:
		return "Could not save activity: " + err.Error()
	}
}
