package engine

import "errors"

var (
	ErrNoBasePrice    = errors.New("product has no size set and no price")
	ErrUnknownSize    = errors.New("size does not belong to product")
	ErrSessionFrozen  = errors.New("customization already confirmed")
	ErrUnknownCommand = errors.New("unknown command")
)
