package chainmap

import "errors"

var (
	ErrInvalidCapacity   = errors.New("chainmap: capacity must be positive")
	ErrInvalidLoadFactor = errors.New("chainmap: load factor must be in (0, 1]")
	ErrNilHashFunc       = errors.New("chainmap: hash function is nil")
	ErrNilLogger         = errors.New("chainmap: logger is nil")
)
