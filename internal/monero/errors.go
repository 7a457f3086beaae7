package monero

import "errors"

var ErrInvalidKey = errors.New("invalid key")
