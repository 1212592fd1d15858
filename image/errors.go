package image

import (
	"errors"
)

var (
	ErrUnsupportedFormat = errors.New("invalid or unsupported image format")
	ErrEmptyImage        = errors.New("image has no pixels")
	ErrUnknownEngine     = errors.New("unknown resize engine")
	ErrUnknownFilter     = errors.New("unknown resample filter")
)
