// Package secrets reads values from docker-style secret files so that
// credentials need not be written into config files.
package secrets

import (
	"bytes"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// Dir is the directory secret files are read from.
var Dir = "/run/secrets"

// Prefix is the the prefix of a string to indicate it should
// be substituted with the secret value. For example:
//
//	"!secret foo" -> /run/secrets/foo
const Prefix = "!secret "

// maxSize is the largest secret that will be read; longer files are truncated.
const maxSize = 512

// CutPrefix is equivalent to [strings.CutPrefix](s, [Prefix])
func CutPrefix(s string) (secret string, ok bool) {
	return strings.CutPrefix(s, Prefix)
}

// Read returns the value of the secret file <Dir>/<secret> with
// surrounding whitespace removed.
func Read(secret string) (string, error) {
	var buf [maxSize]byte
	name := filepath.Join(Dir, filepath.Base(secret))
	fd, err := unix.Open(name, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return "", &pathError{name, err}
	}
	defer unix.Close(fd)
	n, err := unix.Read(fd, buf[:])
	if err != nil {
		return "", &pathError{name, err}
	}
	return string(bytes.TrimSpace(buf[:n])), nil
}

// MustRead returns the value of the secret file <Dir>/<secret>.
// If there is an error reading the file then MustRead returns fallback.
func MustRead(secret, fallback string) string {
	s, err := Read(secret)
	if err != nil {
		return fallback
	}
	return s
}

type pathError struct {
	path string
	err  error
}

func (e *pathError) Error() string { return "secret " + e.path + ": " + e.err.Error() }
func (e *pathError) Unwrap() error { return e.err }
