package content

import "errors"

var ErrUnknownKind = errors.New("content: unknown page kind")
