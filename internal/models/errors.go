package models

import "errors"

// Domain errors returned by services and repositories. Handlers translate
// these to HTTP statuses; anything else is treated as an internal error.
var (
	ErrValidation            = errors.New("validation fails")
	ErrMeetingNotFound       = errors.New("this meeting does not exist")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrForbidden             = errors.New("permission denied")
	ErrPastDate              = errors.New("past dates are not permitted")
	ErrCancellationWindow    = errors.New("cancellation is only allowed up to 2 hours before the meeting starts")
	ErrSelfSubscription      = errors.New("cannot subscribe to a meeting hosted by yourself")
	ErrDuplicateSubscription = errors.New("already subscribed to this meeting")
	ErrTimeConflict          = errors.New("already subscribed to another meeting at the same time")
)
