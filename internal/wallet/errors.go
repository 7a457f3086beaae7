package wallet

import "errors"

var (
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrInvalidMnemonic      = errors.New("invalid mnemonic")
	ErrInvalidPrivateKey    = errors.New("invalid private spend key")
	ErrInvalidWatchOnlyKeys = errors.New("invalid keys for watch-only wallet")
)
