package audience

import "errors"

var ErrInvalidEmail = errors.New("audience: invalid email address")
