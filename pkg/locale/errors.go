package locale

import "errors"

var (
	ErrInvalidConfig = errors.New("locale: invalid configuration")
)
