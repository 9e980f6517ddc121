package app

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/node-reporter/internal/crypto"
	"golang.org/x/term"
)

// PasswordSource returns the password that unlocks the key file.
type PasswordSource func() (string, error)

// StaticPassword returns a PasswordSource that always yields password.
func StaticPassword(password string) PasswordSource {
	return func() (string, error) {
		return password, nil
	}
}

// TerminalPassword prompts on stderr and reads a password from stdin with
// echo disabled. It fails with [ErrNoPassword] when stdin is not a terminal.
func TerminalPassword(prompt string) PasswordSource {
	return func() (string, error) {
		return readTerminalPassword(os.Stdin, os.Stderr, prompt, false)
	}
}

// ConfirmedTerminalPassword is TerminalPassword with a second confirmation
// prompt. Used when a new key file is written.
func ConfirmedTerminalPassword(prompt string) PasswordSource {
	return func() (string, error) {
		return readTerminalPassword(os.Stdin, os.Stderr, prompt, true)
	}
}

func readTerminalPassword(in *os.File, out io.Writer, prompt string, confirm bool) (string, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%w: stdin is not a terminal (set KEY_PASSWORD)", ErrNoPassword)
	}

	fmt.Fprint(out, prompt)
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	defer crypto.Wipe(first)

	if !confirm {
		return string(first), nil
	}

	fmt.Fprint(out, "Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("reading password confirmation: %w", err)
	}
	defer crypto.Wipe(second)

	if string(first) != string(second) {
		return "", ErrPasswordMismatch
	}
	return string(first), nil
}
