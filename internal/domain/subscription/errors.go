package subscription

import "errors"

var (
	ErrSubscriptionNotFound      = errors.New("subscription not found")
	ErrSubscriptionAlreadyExists = errors.New("subscription already exists")
	ErrSubscriptionExpired       = errors.New("subscription expired")
	ErrInvalidSubscriptionWindow = errors.New("subscription end must be after its start")
)
