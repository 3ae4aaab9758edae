// Package terminal prompts for the admin password used by the login command.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// PasswordEnvVar, when set, is used instead of prompting.
const PasswordEnvVar = "TAMILWORDS_ADMIN_PASSWORD"

// ErrNonInteractive means stdin is not a terminal and PasswordEnvVar is empty.
var ErrNonInteractive = errors.New("admin password required: set " + PasswordEnvVar + " or run from a terminal")

// Adapter implements domain.PasswordReader.
type Adapter struct {
	stdin  io.Reader
	stderr io.Writer
	getenv func(string) string
}

func NewAdapter(stdin io.Reader, stderr io.Writer) *Adapter {
	return &Adapter{stdin: stdin, stderr: stderr, getenv: os.Getenv}
}

// ReadPassword returns PasswordEnvVar if set, otherwise prompts on stderr and
// reads a line from stdin with echo off. Cancelling ctx abandons the prompt.
func (a *Adapter) ReadPassword(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if fromEnv := a.getenv(PasswordEnvVar); fromEnv != "" {
		return fromEnv, nil
	}

	fd, ok := a.terminalFD()
	if !ok {
		return "", ErrNonInteractive
	}

	type reply struct {
		secret []byte
		err    error
	}
	done := make(chan reply, 1)

	_, _ = fmt.Fprint(a.stderr, prompt)
	go func() {
		secret, err := term.ReadPassword(fd)
		done <- reply{secret, err}
	}()

	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(a.stderr)
		return "", ctx.Err()
	case r := <-done:
		_, _ = fmt.Fprintln(a.stderr)
		if r.err != nil {
			return "", fmt.Errorf("failed to read password: %w", r.err)
		}
		return string(r.secret), nil
	}
}

// IsInteractive reports whether stdin is a terminal.
func (a *Adapter) IsInteractive() bool {
	_, ok := a.terminalFD()
	return ok
}

func (a *Adapter) terminalFD() (int, bool) {
	file, ok := a.stdin.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(file.Fd())
	return fd, term.IsTerminal(fd)
}
