package newsletter

import "errors"

var (
	// ErrNotConfigured means no usable mail transport could be resolved:
	// neither the admin override nor the environment fallback carries a
	// complete credential set.
	ErrNotConfigured = errors.New("newsletter: no usable email transport configured")
)
