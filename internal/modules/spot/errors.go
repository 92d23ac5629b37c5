package spot

import "errors"

var (
	ErrSpotNotFound = errors.New("spot not found")
	ErrNotOwner     = errors.New("spot must belong to the current user")
)
