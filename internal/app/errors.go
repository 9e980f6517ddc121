package app

import "errors"

var (
	// ErrReadKeyFile is returned when the encrypted key file cannot be read
	// or is empty.
	ErrReadKeyFile = errors.New("cannot read key file")

	// ErrNoPassword is returned when KEY_PASSWORD is unset and no terminal
	// is available to prompt for it.
	ErrNoPassword = errors.New("no key password available")

	// ErrPasswordMismatch is returned when a confirmed prompt receives two
	// different passwords.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
