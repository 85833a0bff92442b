package contact

import "errors"

var (
	ErrStoreUnavailable = errors.New("contact store unavailable")
)
