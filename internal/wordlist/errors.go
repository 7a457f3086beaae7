package wordlist

import "errors"

var ErrUnknownLanguage = errors.New("unknown mnemonic language")
