package backend

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors forming the backend failure taxonomy. Adapters wrap
// library errors with one of these so the pipeline (and its callers)
// can branch with errors.Is instead of parsing library-specific types.
var (
	// ErrUnavailable means the backing library is not installed or
	// not compiled in. Recoverable: the pipeline tries the next
	// backend in the chain.
	ErrUnavailable = errors.New("extraction backend is not available")

	// ErrUnreadable means the document is corrupt, empty, or not a
	// PDF. Recoverable unless this was the last backend.
	ErrUnreadable = errors.New("document cannot be read")

	// ErrEncrypted means the document is password protected. The
	// message deliberately contains both "password" and
	// "authenticate" so callers can branch on either substring.
	ErrEncrypted = errors.New("document is password protected: cannot authenticate without credentials")
)

// encryptionMarkers are substrings that identify password/encryption
// failures across the underlying libraries.
var encryptionMarkers = []string{
	"password",
	"encrypt",
	"authenticate",
	"authentication",
	"protected",
	"decryption",
}

// unreadableMarkers identify corrupt-or-empty document failures.
var unreadableMarkers = []string{
	"no such file",
	"not a pdf",
	"invalid pdf",
	"malformed",
	"corrupt",
	"unexpected eof",
	"eof",
	"empty",
	"cannot open",
	"couldn't open",
	"file is damaged",
}

// Classify normalizes a heterogeneous library error into the package
// taxonomy. The original error text is preserved inside the wrap.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrUnreadable) || errors.Is(err, ErrEncrypted) {
		return err
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range encryptionMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w (%v)", ErrEncrypted, err)
		}
	}
	for _, marker := range unreadableMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrUnreadable, err)
}
