package pages

import "errors"

var (
	ErrPageNotFound   = errors.New("pages: page not found")
	ErrInvalidPayload = errors.New("pages: payload is not valid JSON")
)
