package mnemonic

import "errors"

var (
	ErrInvalidWordCount = errors.New("unsupported mnemonic word count")
	ErrUnknownWord      = errors.New("word not in any supported dictionary")
	ErrChecksum         = errors.New("mnemonic checksum mismatch")
	ErrInvalidPhrase    = errors.New("phrase does not decode to a valid seed")
	ErrInvalidSeed      = errors.New("invalid seed length")
)
